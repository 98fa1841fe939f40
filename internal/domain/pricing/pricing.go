// Package pricing provides the pure calculation functions of the budget
// engine: margin-based price derivation, line recomputation and totals.
package pricing

import "gestao_facil/internal/domain/entities"

// FinalPrice derives a sale price from a cost basis and a margin percent.
func FinalPrice(cost, marginPercent float64) float64 {
	return cost * (1 + marginPercent/100)
}

// RecomputeLine re-derives every computed field of a line from its stored
// UnitCost, MarginPercent and Quantity. Margin edits never touch UnitCost;
// the unit price is always rebuilt from the stored cost.
func RecomputeLine(l entities.BudgetLine) entities.BudgetLine {
	qty := float64(l.Quantity)
	l.UnitPrice = FinalPrice(l.UnitCost, l.MarginPercent)
	l.TotalCost = l.UnitCost * qty
	l.TotalPrice = l.UnitPrice * qty
	l.Profit = l.TotalPrice - l.TotalCost
	return l
}

// Summary holds the aggregate totals of a line collection. It is used both
// for per-group subtotals and for the whole-budget totals.
type Summary struct {
	TotalPrice    float64 `json:"total_price"`
	TotalCost     float64 `json:"total_cost"`
	TotalProfit   float64 `json:"total_profit"`
	MarginPercent float64 `json:"margin_percent"`
}

// Summarize computes the totals over a set of lines. MarginPercent is
// profit over cost; it is 0 when the total cost is 0.
func Summarize(lines []entities.BudgetLine) Summary {
	var s Summary
	for _, l := range lines {
		s.TotalPrice += l.TotalPrice
		s.TotalCost += l.TotalCost
	}
	s.TotalProfit = s.TotalPrice - s.TotalCost
	if s.TotalCost > 0 {
		s.MarginPercent = (s.TotalProfit / s.TotalCost) * 100
	}
	return s
}
