package pricing

import (
	"festiva/internal/catalog"

	"github.com/shopspring/decimal"
)

// AdjustedComponent pairs a catalog item with its prorated price
type AdjustedComponent struct {
	Component     catalog.Component `json:"component"`
	AdjustedPrice decimal.Decimal   `json:"adjusted_price"`
}

// ProrationResult is the outcome of rescaling catalog items to a
// contracted package price
type ProrationResult struct {
	Adjusted []AdjustedComponent `json:"adjusted"`
	Ratio    decimal.Decimal     `json:"ratio"`
	NaiveSum decimal.Decimal     `json:"naive_sum"`
	// Degenerate marks the zero-item-sum-with-contracted-price case,
	// handled by passthrough rather than as an error
	Degenerate bool `json:"degenerate"`
}

// Prorate rescales the given catalog items so their prices sum to the
// contracted nominal price while preserving each item's relative share.
// Items must already be filtered to effectively-included, non-venue-locked
// entries. A nil nominal price or a zero item sum leaves prices untouched:
// the contracted price then stays informational instead of forcing an
// allocation.
func Prorate(nominal *decimal.Decimal, items []catalog.Component) ProrationResult {
	result := ProrationResult{
		Ratio:    decimal.NewFromInt(1),
		Adjusted: make([]AdjustedComponent, 0, len(items)),
	}

	for _, c := range items {
		result.NaiveSum = result.NaiveSum.Add(c.EffectivePrice())
	}

	passthrough := nominal == nil || result.NaiveSum.IsZero() || nominal.Equal(result.NaiveSum)
	if nominal != nil && result.NaiveSum.IsZero() && !nominal.IsZero() {
		result.Degenerate = true
	}
	if !passthrough {
		result.Ratio = nominal.Div(result.NaiveSum)
	}

	for _, c := range items {
		price := c.EffectivePrice()
		if !passthrough {
			price = price.Mul(result.Ratio)
		}
		result.Adjusted = append(result.Adjusted, AdjustedComponent{
			Component:     c,
			AdjustedPrice: price,
		})
	}

	return result
}

// AdjustedSum returns the sum of all adjusted prices
func (r ProrationResult) AdjustedSum() decimal.Decimal {
	var sum decimal.Decimal
	for _, a := range r.Adjusted {
		sum = sum.Add(a.AdjustedPrice)
	}
	return sum
}
