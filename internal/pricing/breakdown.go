package pricing

import (
	"github.com/shopspring/decimal"
)

// Line kinds used in PriceBreakdown.
const (
	LineKindBase           = "base"
	LineKindPaper          = "paper"
	LineKindAddOn          = "add_on"
	LineKindTurnaround     = "turnaround"
	LineKindBrokerDiscount = "broker_discount"
)

// BreakdownLine is one itemized charge. Amounts are rounded to the cent for
// presentation and reconciled so the lines sum to Total exactly.
type BreakdownLine struct {
	Kind   string          `json:"kind"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PriceBreakdown is the itemized result of one calculation. It is stored
// verbatim on order items and shown on receipts; downstream consumers never
// re-derive pricing from it.
type PriceBreakdown struct {
	Lines     []BreakdownLine `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LinesSum returns the sum of the itemized lines.
func (b *PriceBreakdown) LinesSum() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range b.Lines {
		sum = sum.Add(line.Amount)
	}
	return sum
}

// reconcileLines adjusts the largest-magnitude line so rounded lines sum to
// the rounded total exactly.
func reconcileLines(lines []BreakdownLine, total decimal.Decimal) {
	if len(lines) == 0 {
		return
	}
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	diff := total.Sub(sum)
	if diff.IsZero() {
		return
	}
	largest := 0
	for i := 1; i < len(lines); i++ {
		if lines[i].Amount.Abs().GreaterThan(lines[largest].Amount.Abs()) {
			largest = i
		}
	}
	lines[largest].Amount = lines[largest].Amount.Add(diff)
}
