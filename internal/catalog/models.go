package catalog

import (
	"github.com/shopspring/decimal"
)

// Category classifies a priced line item for breakdown and display
type Category string

const (
	CategoryCoordination  Category = "coordination"
	CategoryVenue         Category = "venue"
	CategoryVenueFee      Category = "venue_fee"
	CategoryAttire        Category = "attire"
	CategoryDecor         Category = "decor"
	CategoryMedia         Category = "media"
	CategoryExtras        Category = "extras"
	CategoryHotel         Category = "hotel"
	CategoryFood          Category = "food"
	CategoryServices      Category = "services"
	CategoryPhotography   Category = "photography"
	CategoryBeauty        Category = "beauty"
	CategoryCatering      Category = "catering"
	CategoryDecoration    Category = "decoration"
	CategoryEntertainment Category = "entertainment"
	CategoryEquipment     Category = "equipment"
	CategoryOther         Category = "other"
)

// categoryOrder fixes the display order used to break subtotal ties
var categoryOrder = []Category{
	CategoryCoordination,
	CategoryVenue,
	CategoryVenueFee,
	CategoryAttire,
	CategoryDecor,
	CategoryMedia,
	CategoryExtras,
	CategoryHotel,
	CategoryFood,
	CategoryServices,
	CategoryPhotography,
	CategoryBeauty,
	CategoryCatering,
	CategoryDecoration,
	CategoryEntertainment,
	CategoryEquipment,
	CategoryOther,
}

// IsValid checks if the category is part of the known enumeration
func (c Category) IsValid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Rank returns the category's position in the display order.
// Unknown categories sort last.
func (c Category) Rank() int {
	for i, known := range categoryOrder {
		if c == known {
			return i
		}
	}
	return len(categoryOrder)
}

// Source tags where a priced item came from
type Source string

const (
	SourceCatalog     Source = "catalog"      // package-native component, adjustable
	SourceVenueLocked Source = "venue_locked" // supplied by the venue, never removable
	SourceCustom      Source = "custom"       // user-added custom inclusion
	SourceSupplier    Source = "supplier"     // booked supplier service
)

// IsValid checks if the source tag is known
func (s Source) IsValid() bool {
	switch s {
	case SourceCatalog, SourceVenueLocked, SourceCustom, SourceSupplier:
		return true
	}
	return false
}

// String returns the string representation of Source
func (s Source) String() string {
	return string(s)
}

// SubComponent is a display-only breakdown row under a component.
// Its contribution is informational and never authoritative over the
// parent component's price.
type SubComponent struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Included  bool            `json:"included"`
}

// VenueChoice is one of a component's mutually exclusive venue options.
// Selecting a choice replaces the component's effective price.
type VenueChoice struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	MaxGuests int             `json:"max_guests"`
}

// Component is a normalized priced line item regardless of origin
type Component struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Category         Category        `json:"category"`
	Source           Source          `json:"source"`
	Included         bool            `json:"included"`
	Removable        bool            `json:"removable"`
	SubComponents    []SubComponent  `json:"sub_components,omitempty"`
	VenueOptions     []VenueChoice   `json:"venue_options,omitempty"`
	SelectedOptionID string          `json:"selected_option_id,omitempty"`
}

// Package is a catalog bundle of priced components sold as a unit.
// NominalPrice is the contracted price and may legitimately differ from
// the sum of component prices; nil means no contracted price was set.
type Package struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	NominalPrice  *decimal.Decimal `json:"nominal_price,omitempty"`
	GuestCapacity int              `json:"guest_capacity"`
	Components    []Component      `json:"components"`
}

// VenueInclusion is a priced item supplied by a venue at face value
type VenueInclusion struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Venue is a bookable venue with its fee and locked inclusions
type Venue struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Price      decimal.Decimal  `json:"price"`
	Inclusions []VenueInclusion `json:"inclusions,omitempty"`
}

// CustomInclusion is a user-added item outside the package catalog.
// Its price is authoritative as entered and is never prorated.
type CustomInclusion struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
}

// SupplierService is a booked external supplier service.
// Like custom inclusions it contributes at face value.
type SupplierService struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplier_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Category   Category        `json:"category"`
}
