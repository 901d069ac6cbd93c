package output

import (
	"fmt"

	"github.com/propgo/roadmap-engine/internal/domain"
)

// Highlights lists the notable events of a projection in timeline order.
// Extracted from the console formatters for testability.
func Highlights(p *domain.Projection) []string {
	var out []string
	for _, e := range p.Timeline {
		if !e.IsPurchase() {
			continue
		}
		line := fmt.Sprintf("%d: buy %s for %s (deposit %s)", e.AbsoluteYear, e.PropertyTitle,
			FormatCurrency(e.Cost), FormatCurrency(e.DepositRequired))
		if c := e.Consolidation; c != nil {
			line += fmt.Sprintf(" after selling %d properties to free %s", len(c.PropertiesSold), FormatCurrency(c.EquityFreed))
			if !c.TargetsMet {
				line += " (LVR/cashflow targets not reached)"
			}
		}
		if !e.BorrowingCapacityTest.Pass {
			line += fmt.Sprintf("; exceeds borrowing capacity by %s", FormatCurrency(e.BorrowingCapacityTest.Surplus.Neg()))
		}
		out = append(out, line)
	}
	for _, e := range p.Unresolved {
		out = append(out, fmt.Sprintf("challenging: %s #%d is not affordable within the timeline", e.PropertyTitle, e.Instance+1))
	}
	return out
}
