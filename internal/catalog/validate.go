package catalog

import (
	"fmt"

	"festiva/internal/shared/apperrors"
)

// ValidatePackage checks a package record's shape at ingestion.
// Provenance is not validated, only shape; a missing nominal price is legal.
func ValidatePackage(p *Package) error {
	if p == nil {
		return apperrors.NewInputShape("package", "record is missing")
	}
	if p.ID == "" {
		return apperrors.NewInputShape("package.id", "must not be empty")
	}
	if p.Title == "" {
		return apperrors.NewInputShape("package.title", "must not be empty")
	}
	if p.NominalPrice != nil && p.NominalPrice.IsNegative() {
		return apperrors.NewInputShape("package.nominal_price", "must not be negative")
	}
	if p.GuestCapacity < 0 {
		return apperrors.NewInputShape("package.guest_capacity", "must not be negative")
	}
	seen := make(map[string]bool, len(p.Components))
	for i := range p.Components {
		c := &p.Components[i]
		if err := validateComponent(c, fmt.Sprintf("package.components[%d]", i)); err != nil {
			return err
		}
		if seen[c.ID] {
			return apperrors.NewInputShape(fmt.Sprintf("package.components[%d].id", i),
				fmt.Sprintf("duplicate component id %s", c.ID))
		}
		seen[c.ID] = true
	}
	return nil
}

func validateComponent(c *Component, field string) error {
	if c.ID == "" {
		return apperrors.NewInputShape(field+".id", "must not be empty")
	}
	if c.Name == "" {
		return apperrors.NewInputShape(field+".name", "must not be empty")
	}
	if c.Price.IsNegative() {
		return apperrors.NewInputShape(field+".price", "must not be negative")
	}
	if c.Category == "" {
		c.Category = CategoryOther
	} else if !c.Category.IsValid() {
		return apperrors.NewInputShape(field+".category",
			fmt.Sprintf("unknown category %q", c.Category))
	}
	if !c.Source.IsValid() {
		return apperrors.NewInputShape(field+".source",
			fmt.Sprintf("unknown source %q", c.Source))
	}
	for i, sub := range c.SubComponents {
		if sub.Quantity < 0 {
			return apperrors.NewInputShape(fmt.Sprintf("%s.sub_components[%d].quantity", field, i),
				"must not be negative")
		}
		if sub.UnitPrice.IsNegative() {
			return apperrors.NewInputShape(fmt.Sprintf("%s.sub_components[%d].unit_price", field, i),
				"must not be negative")
		}
	}
	optIDs := make(map[string]bool, len(c.VenueOptions))
	for i, opt := range c.VenueOptions {
		if opt.ID == "" {
			return apperrors.NewInputShape(fmt.Sprintf("%s.venue_options[%d].id", field, i),
				"must not be empty")
		}
		if opt.Price.IsNegative() {
			return apperrors.NewInputShape(fmt.Sprintf("%s.venue_options[%d].price", field, i),
				"must not be negative")
		}
		if optIDs[opt.ID] {
			return apperrors.NewInputShape(fmt.Sprintf("%s.venue_options[%d].id", field, i),
				fmt.Sprintf("duplicate option id %s", opt.ID))
		}
		optIDs[opt.ID] = true
	}
	return nil
}

// ValidateVenue checks a venue record's shape at ingestion
func ValidateVenue(v *Venue) error {
	if v == nil {
		return apperrors.NewInputShape("venue", "record is missing")
	}
	if v.ID == "" {
		return apperrors.NewInputShape("venue.id", "must not be empty")
	}
	if v.Title == "" {
		return apperrors.NewInputShape("venue.title", "must not be empty")
	}
	if v.Price.IsNegative() {
		return apperrors.NewInputShape("venue.price", "must not be negative")
	}
	for i, incl := range v.Inclusions {
		if incl.Name == "" {
			return apperrors.NewInputShape(fmt.Sprintf("venue.inclusions[%d].name", i),
				"must not be empty")
		}
		if incl.Price.IsNegative() {
			return apperrors.NewInputShape(fmt.Sprintf("venue.inclusions[%d].price", i),
				"must not be negative")
		}
	}
	return nil
}

// ValidateCustomInclusion checks a user-entered custom inclusion
func ValidateCustomInclusion(c *CustomInclusion) error {
	if c.Name == "" {
		return apperrors.NewInputShape("custom_inclusion.name", "must not be empty")
	}
	if c.Price.IsNegative() {
		return apperrors.NewInputShape("custom_inclusion.price", "must not be negative")
	}
	if c.Category == "" {
		c.Category = CategoryOther
	} else if !c.Category.IsValid() {
		return apperrors.NewInputShape("custom_inclusion.category",
			fmt.Sprintf("unknown category %q", c.Category))
	}
	return nil
}

// ValidateSupplierService checks a booked supplier service entry
func ValidateSupplierService(s *SupplierService) error {
	if s.Name == "" {
		return apperrors.NewInputShape("supplier_service.name", "must not be empty")
	}
	if s.Price.IsNegative() {
		return apperrors.NewInputShape("supplier_service.price", "must not be negative")
	}
	if s.Category == "" {
		s.Category = CategoryServices
	} else if !s.Category.IsValid() {
		return apperrors.NewInputShape("supplier_service.category",
			fmt.Sprintf("unknown category %q", s.Category))
	}
	return nil
}
