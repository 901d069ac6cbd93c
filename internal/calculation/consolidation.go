package calculation

import (
	"sort"

	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

type rankedPurchase struct {
	purchase domain.Purchase
	cashflow decimal.Decimal
	equity   decimal.Decimal
	score    decimal.Decimal
}

// rankForSale scores owned purchases by weighted cashflow and equity, worst
// first. Rent is counted at 100% here, unlike the shaded lender view.
func (s *Simulation) rankForSale(year int, owned domain.PurchaseHistory) []rankedPurchase {
	ranked := make([]rankedPurchase, 0, len(owned))
	for _, p := range owned {
		cashflow := s.PropertyCashflow(p, year, one)
		equity := s.PropertyValue(p, year).Sub(p.LoanAmount)
		ranked = append(ranked, rankedPurchase{
			purchase: p,
			cashflow: cashflow,
			equity:   equity,
			score:    cashflow.Mul(s.rules.CashflowWeight).Add(equity.Mul(s.rules.EquityWeight)),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score.LessThan(ranked[j].score) })
	return ranked
}

// Consolidate sells the weakest purchases one at a time until the portfolio
// LVR is within target and aggregate cashflow is non-negative. If the targets
// are never reached every ranked purchase is sold and TargetsMet is false.
// The failure streak is reset and a consolidation is consumed either way.
func (s *Simulation) Consolidate(year int, history domain.PurchaseHistory) (domain.ConsolidationDetails, domain.PurchaseHistory) {
	owned := history.OwnedBy(year)
	remaining := history.Sorted()

	details := domain.ConsolidationDetails{Year: year}
	for _, c := range s.rankForSale(year, owned) {
		remaining = remaining.Without(c.purchase.Key())
		details.PropertiesSold = append(details.PropertiesSold, c.purchase)
		details.EquityFreed = details.EquityFreed.Add(c.equity)
		details.DebtReduced = details.DebtReduced.Add(c.purchase.LoanAmount)

		details.NewLVR = s.portfolioLVR(year, remaining.OwnedBy(year))
		details.NetCashflow = s.portfolioCashflow(year, remaining.OwnedBy(year))
		if details.NewLVR.LessThanOrEqual(s.rules.ConsolidationTargetLVR) &&
			!details.NetCashflow.IsNegative() {
			details.TargetsMet = true
			break
		}
	}

	s.state.FailureStreak = 0
	s.state.Remaining--
	s.state.Used++
	s.state.LastYear = year

	s.projector.Logger.Infof("consolidation in year %d sold %d properties, freed %s (targets met: %t)",
		year, len(details.PropertiesSold), details.EquityFreed.StringFixed(0), details.TargetsMet)
	return details, remaining.Sorted()
}
