package calculation

import (
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// AffordabilityResult is the outcome of checking one candidate year
type AffordabilityResult struct {
	CanAfford      bool
	Deposit        domain.TestResult
	Serviceability domain.ServiceabilityResult
	Funds          domain.FundsBreakdown // Funds the final evaluation used
	History        domain.PurchaseHistory
	Consolidation  *domain.ConsolidationDetails // Set when a consolidation ran during the check
	Evaluations    int                          // Test rounds run, more than one after a consolidation
}

// DepositTest checks that funds less the buffer cover the deposit
func (s *Simulation) DepositTest(funds domain.FundsBreakdown, pt domain.PropertyType) domain.TestResult {
	surplus := funds.Total.Sub(s.rules.DepositBuffer).Sub(pt.DepositRequired)
	return domain.TestResult{Pass: !surplus.IsNegative(), Surplus: surplus}
}

// ServiceabilityTest compares portfolio interest with recognised rent in year.
// A portfolio with no interest passes trivially; interest without rent fails.
func (s *Simulation) ServiceabilityTest(year int, history domain.PurchaseHistory) domain.ServiceabilityResult {
	_, recognised, interest := s.rentalTotals(year, history.OwnedBy(year))

	var dsr decimal.Decimal
	switch {
	case interest.IsZero():
		dsr = decimal.Zero
	case !recognised.IsPositive():
		dsr = s.rules.NoRentDSR
	default:
		dsr = interest.Div(recognised).Mul(hundred)
	}

	surplus := recognised.Mul(percent(s.rules.MaxDSR)).Sub(interest)
	return domain.ServiceabilityResult{
		TestResult: domain.TestResult{Pass: dsr.LessThanOrEqual(s.rules.MaxDSR), Surplus: surplus},
		DSR:        dsr,
	}
}

// CheckAffordability runs the deposit and serviceability tests for buying pt
// in year. Repeated serviceability failures may trigger a consolidation,
// after which the check is repeated against the reduced portfolio. Each
// consolidation resets the failure streak and removes at least one property,
// so the loop runs at most len(history)+1 times.
func (s *Simulation) CheckAffordability(year int, history domain.PurchaseHistory, pt domain.PropertyType, funds domain.FundsBreakdown) AffordabilityResult {
	var executed *domain.ConsolidationDetails

	for depth := 0; ; depth++ {
		res := AffordabilityResult{
			Deposit:        s.DepositTest(funds, pt),
			Serviceability: s.ServiceabilityTest(year, history),
			Funds:          funds,
			History:        history,
			Consolidation:  executed,
			Evaluations:    depth + 1,
		}
		if s.projector.Debug {
			s.projector.Logger.Debugf("year %d %s round %d: funds=%s deposit=%t dsr=%s streak=%d",
				year, pt.ID, res.Evaluations, funds.Total.StringFixed(0), res.Deposit.Pass, res.Serviceability.DSR.StringFixed(1), s.state.FailureStreak)
		}

		if !res.Deposit.Pass {
			return res
		}
		if res.Serviceability.Pass {
			s.state.FailureStreak = 0
			res.CanAfford = true
			return res
		}

		s.state.FailureStreak++
		if depth > len(history) ||
			s.state.FailureStreak < s.rules.ConsolidationFailureStreak ||
			!s.state.Eligible(year, s.rules) {
			return res
		}

		details, remaining := s.Consolidate(year, history)
		executed = &details
		history = remaining
		funds = s.AvailableFunds(year, history, details.EquityFreed)
	}
}
