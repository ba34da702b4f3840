package pricing

import (
	"festiva/internal/catalog"

	"github.com/shopspring/decimal"
)

// BudgetInput carries the current booking state the total is derived from
type BudgetInput struct {
	NominalPrice     *decimal.Decimal
	CatalogItems     []catalog.Component // effectively included, non-venue-locked
	Venue            *catalog.Venue
	CustomInclusions []catalog.CustomInclusion
	SupplierServices []catalog.SupplierService
}

// Budget is the single authoritative total every other stage references
type Budget struct {
	PackagePrice  decimal.Decimal `json:"package_price"`
	VenueCost     decimal.Decimal `json:"venue_cost"`
	CustomTotal   decimal.Decimal `json:"custom_total"`
	SupplierTotal decimal.Decimal `json:"supplier_total"`
	Total         decimal.Decimal `json:"total"`
}

// ComposeBudget derives the total budget from current state. The package
// price is the contracted price when present, otherwise the raw sum of
// effective catalog prices; proration only redistributes within that
// amount and never changes it. Venue inclusions are informational, their
// value is already folded into the venue's price.
func ComposeBudget(in BudgetInput) Budget {
	var b Budget

	if in.NominalPrice != nil {
		b.PackagePrice = *in.NominalPrice
	} else {
		for _, c := range in.CatalogItems {
			b.PackagePrice = b.PackagePrice.Add(c.EffectivePrice())
		}
	}

	if in.Venue != nil {
		b.VenueCost = in.Venue.Price
	}

	for _, custom := range in.CustomInclusions {
		b.CustomTotal = b.CustomTotal.Add(custom.Price)
	}
	for _, supplier := range in.SupplierServices {
		b.SupplierTotal = b.SupplierTotal.Add(supplier.Price)
	}

	b.Total = b.PackagePrice.Add(b.VenueCost).Add(b.CustomTotal).Add(b.SupplierTotal)
	return b
}
