package catalog

import (
	"fmt"

	"festiva/internal/shared/apperrors"

	"github.com/shopspring/decimal"
)

// EffectivelyIncluded reports whether the component contributes to sums.
// Excluded components stay in the collection so they can be restored.
func (c *Component) EffectivelyIncluded() bool {
	return c.Included
}

// EffectivePrice returns the selected venue option's price when one is
// active, otherwise the component's own price.
func (c *Component) EffectivePrice() decimal.Decimal {
	if c.SelectedOptionID != "" {
		for _, opt := range c.VenueOptions {
			if opt.ID == c.SelectedOptionID {
				return opt.Price
			}
		}
	}
	return c.Price
}

// SelectOption activates one of the component's venue options.
// At most one option is active at a time; an empty id clears the selection.
func (c *Component) SelectOption(optionID string) error {
	if optionID == "" {
		c.SelectedOptionID = ""
		return nil
	}
	for _, opt := range c.VenueOptions {
		if opt.ID == optionID {
			c.SelectedOptionID = optionID
			return nil
		}
	}
	return apperrors.NewValidation(apperrors.CodeVenueOptionNotFound, "option_id",
		fmt.Sprintf("component %s has no venue option %s", c.ID, optionID))
}

// Partition splits components into venue-locked inclusions and adjustable
// catalog items, each filtered to effectively-included entries. Venue-locked
// items must never enter proration, so this split is the input contract for
// every later pricing stage.
func Partition(components []Component) (venueLocked, catalogItems []Component) {
	for _, c := range components {
		if !c.EffectivelyIncluded() {
			continue
		}
		if c.Source == SourceVenueLocked {
			venueLocked = append(venueLocked, c)
		} else {
			catalogItems = append(catalogItems, c)
		}
	}
	return venueLocked, catalogItems
}

// InclusionComponents materializes the venue's inclusions as locked,
// non-removable components. They are informational for display; their value
// is already folded into the venue's price.
func (v *Venue) InclusionComponents() []Component {
	components := make([]Component, 0, len(v.Inclusions))
	for i, incl := range v.Inclusions {
		components = append(components, Component{
			ID:        fmt.Sprintf("%s-incl-%d", v.ID, i+1),
			Name:      incl.Name,
			Price:     incl.Price,
			Category:  CategoryVenue,
			Source:    SourceVenueLocked,
			Included:  true,
			Removable: false,
		})
	}
	return components
}
