package pricing

import (
	"sort"

	"festiva/internal/catalog"

	"github.com/shopspring/decimal"
)

// CategoryBreakdown is one per-category row of the budget breakdown
type CategoryBreakdown struct {
	Category   catalog.Category `json:"category"`
	Total      decimal.Decimal  `json:"total"`
	Percentage float64          `json:"percentage"`
	Items      int              `json:"items"`
}

// AggregateCategories groups adjusted items by category and computes each
// category's subtotal and share of the total budget. Categories without
// effectively-included items are omitted. Rows come back sorted by
// descending subtotal, ties broken by category display order.
func AggregateCategories(adjusted []AdjustedComponent, totalBudget decimal.Decimal) []CategoryBreakdown {
	byCategory := make(map[catalog.Category]*CategoryBreakdown)
	for _, a := range adjusted {
		cat := a.Component.Category
		row, ok := byCategory[cat]
		if !ok {
			row = &CategoryBreakdown{Category: cat}
			byCategory[cat] = row
		}
		row.Total = row.Total.Add(a.AdjustedPrice)
		row.Items++
	}

	rows := make([]CategoryBreakdown, 0, len(byCategory))
	hundred := decimal.NewFromInt(100)
	for _, row := range byCategory {
		if !totalBudget.IsZero() {
			row.Percentage = row.Total.Div(totalBudget).Mul(hundred).InexactFloat64()
		}
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Category.Rank() < rows[j].Category.Rank()
	})

	return rows
}
