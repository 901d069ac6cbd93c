package calculation

import (
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// AvailableFunds computes the cash available for a deposit in year.
// Cashflow accrues only from purchases owned strictly before each year;
// deposits are consumed by purchases on or before year.
func (s *Simulation) AvailableFunds(year int, history domain.PurchaseHistory, additionalEquity decimal.Decimal) domain.FundsBreakdown {
	profile := s.req.Profile

	savings := decimal.Zero
	cashflow := decimal.Zero
	for yr := 1; yr <= year; yr++ {
		savings = savings.Add(profile.AnnualSavings)

		var owned domain.PurchaseHistory
		for _, p := range history {
			if p.Year < yr {
				owned = append(owned, p)
			}
		}
		rate := RecognitionRate(len(owned))
		for _, p := range owned {
			cashflow = cashflow.Add(s.PropertyCashflow(p, yr, rate))
		}
	}

	depositsUsed := decimal.Zero
	for _, p := range history {
		if p.Year <= year {
			depositsUsed = depositsUsed.Add(p.DepositRequired)
		}
	}

	release := s.equityRelease(year, history)

	fb := domain.FundsBreakdown{
		BaseDeposit:          s.baseDeposit(),
		CumulativeSavings:    savings,
		CashflowReinvestment: cashflow,
		EquityRelease:        release,
		AdditionalEquity:     additionalEquity,
		DepositsUsed:         depositsUsed,
	}
	fb.Total = fb.BaseDepositRemaining().
		Add(fb.CumulativeSavings).
		Add(fb.CashflowReinvestment).
		Add(fb.EquityRelease).
		Add(fb.AdditionalEquity)
	return fb
}

// baseDeposit is the available deposit, falling back to the profile's pool
func (s *Simulation) baseDeposit() decimal.Decimal {
	if s.req.AvailableDeposit.IsPositive() {
		return s.req.AvailableDeposit
	}
	return s.req.Profile.DepositPool
}

// equityRelease draws against portfolio equity every EquityReleaseInterval
// years after the first purchase, and is zero otherwise.
func (s *Simulation) equityRelease(year int, history domain.PurchaseHistory) decimal.Decimal {
	if len(history) == 0 || s.rules.EquityReleaseInterval <= 0 {
		return decimal.Zero
	}
	since := year - history.FirstYear()
	if since <= 0 || since%s.rules.EquityReleaseInterval != 0 {
		return decimal.Zero
	}

	st := s.PortfolioState(year, history.OwnedBy(year))
	releasable := st.Value.Mul(s.rules.EquityReleaseLVR).Sub(st.Debt).Mul(s.req.Profile.EquityReleaseFactor)
	if releasable.IsNegative() {
		return decimal.Zero
	}
	return releasable
}
