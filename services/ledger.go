package services

import "math"

// LaborTaxRate is the IVA surcharge applied to the labor category base.
const LaborTaxRate = 0.19

// CategoryTotals holds the derived amounts for a single category.
// Subtotal is always Base + Tax.
type CategoryTotals struct {
	Base     float64 `json:"base"`
	Tax      float64 `json:"tax"`
	Subtotal float64 `json:"subtotal"`
}

// Ledger is the derived projection of a quote: per-category totals
// keyed by category key, plus the grand total. It is recomputed from
// scratch whenever the quote changes and never mutated in place.
type Ledger struct {
	Categories map[string]CategoryTotals `json:"categories"`
	Total      float64                   `json:"total"`
}

// LineTotal returns the monetary total of one item: unit price times
// quantity, both parsed from their raw text. Unparseable input
// contributes 0 instead of failing.
func LineTotal(item LineItem) float64 {
	return ParseAmount(item.UnitPrice) * ParseQuantity(item.Quantity)
}

// ComputeLedger aggregates the category line items into a fresh
// ledger. The labor category is taxed at LaborTaxRate, rounded to the
// nearest whole peso; every other category carries zero tax. The
// computation is pure: identical input yields an identical ledger.
func ComputeLedger(categories []Category) Ledger {
	ledger := Ledger{Categories: make(map[string]CategoryTotals, len(categories))}

	for _, cat := range categories {
		var base float64
		for _, item := range cat.Items {
			base += LineTotal(item)
		}

		totals := CategoryTotals{Base: base}
		if cat.Key == LaborCategoryKey {
			totals.Tax = math.Round(base * LaborTaxRate)
		}
		totals.Subtotal = totals.Base + totals.Tax

		ledger.Categories[cat.Key] = totals
		ledger.Total += totals.Subtotal
	}

	return ledger
}
