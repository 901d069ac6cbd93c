package calculation

import (
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsolidationState tracks the consolidation strategy for a single run.
// It lives on the Simulation and is never shared between runs.
type ConsolidationState struct {
	FailureStreak int // Consecutive serviceability failures
	Remaining     int
	Used          int
	LastYear      int // Relative year of the last consolidation, 0 = never
}

// Eligible reports whether a consolidation may run in year
func (cs *ConsolidationState) Eligible(year int, rules Rules) bool {
	if cs.Remaining <= 0 || cs.Used >= rules.MaxConsolidations {
		return false
	}
	return cs.LastYear == 0 || year-cs.LastYear >= rules.ConsolidationMinGap
}

// Simulation is one projection run over a fixed request
type Simulation struct {
	projector *Projector
	rules     Rules
	req       *domain.ProjectionRequest
	state     ConsolidationState
	warned    map[string]bool
}

// NewSimulation prepares a run. The profile's consolidation counters seed the
// local state; the request itself is never modified.
func (p *Projector) NewSimulation(req *domain.ProjectionRequest) *Simulation {
	return &Simulation{
		projector: p,
		rules:     p.Rules,
		req:       req,
		state: ConsolidationState{
			Remaining: req.Profile.ConsolidationsRemaining,
			LastYear:  req.Profile.LastConsolidationYear,
		},
		warned: make(map[string]bool),
	}
}

// State returns a copy of the consolidation state
func (s *Simulation) State() ConsolidationState {
	return s.state
}

func (s *Simulation) assumption(title string) (domain.PropertyAssumption, bool) {
	a, ok := s.req.PropertyDataMap[title]
	if !ok && !s.warned[title] {
		s.warned[title] = true
		s.projector.Logger.Warnf("no property data for %q, growth and rent treated as zero", title)
	}
	return a, ok
}

// PropertyValue derives the value of a purchase in year from its cost and growth
func (s *Simulation) PropertyValue(p domain.Purchase, year int) decimal.Decimal {
	a, _ := s.assumption(p.Title)
	return p.Cost.Mul(growthFactor(a.Growth, year-p.Year))
}

// RentalIncome is the gross annual rent of a purchase in year
func (s *Simulation) RentalIncome(p domain.Purchase, year int) decimal.Decimal {
	a, ok := s.assumption(p.Title)
	if !ok {
		return decimal.Zero
	}
	return s.PropertyValue(p, year).Mul(percent(a.Yield))
}

// LoanInterest is the annual interest on a purchase's loan
func (s *Simulation) LoanInterest(p domain.Purchase) decimal.Decimal {
	return p.LoanAmount.Mul(percent(s.req.GlobalFactors.InterestRate))
}

// PropertyCashflow is rent × recognition − interest − expenses for one purchase
func (s *Simulation) PropertyCashflow(p domain.Purchase, year int, recognition decimal.Decimal) decimal.Decimal {
	rent := s.RentalIncome(p, year)
	return rent.Mul(recognition).Sub(s.LoanInterest(p)).Sub(rent.Mul(s.rules.ExpenseRatio))
}

// existingValue grows the client's pre-roadmap portfolio to year
func (s *Simulation) existingValue(year int) decimal.Decimal {
	return s.req.Profile.PortfolioValue.Mul(growthFactor(s.req.GlobalFactors.GrowthRate, year-1))
}

// PortfolioState values the existing portfolio plus owned purchases in year
func (s *Simulation) PortfolioState(year int, owned domain.PurchaseHistory) domain.PortfolioState {
	value := s.existingValue(year)
	debt := s.req.Profile.CurrentDebt
	for _, p := range owned {
		value = value.Add(s.PropertyValue(p, year))
		debt = debt.Add(p.LoanAmount)
	}
	return domain.PortfolioState{
		Properties: len(owned),
		Value:      value,
		Equity:     value.Sub(debt),
		Debt:       debt,
	}
}

// portfolioLVR is debt over value in percent, 0 for an empty portfolio
func (s *Simulation) portfolioLVR(year int, owned domain.PurchaseHistory) decimal.Decimal {
	st := s.PortfolioState(year, owned)
	if !st.Value.IsPositive() {
		return decimal.Zero
	}
	return st.Debt.Div(st.Value).Mul(hundred)
}

// portfolioCashflow sums shaded cashflow across owned purchases
func (s *Simulation) portfolioCashflow(year int, owned domain.PurchaseHistory) decimal.Decimal {
	rate := RecognitionRate(len(owned))
	total := decimal.Zero
	for _, p := range owned {
		total = total.Add(s.PropertyCashflow(p, year, rate))
	}
	return total
}

// rentalTotals aggregates gross rent, recognised rent and interest
func (s *Simulation) rentalTotals(year int, owned domain.PurchaseHistory) (gross, recognised, interest decimal.Decimal) {
	for _, p := range owned {
		gross = gross.Add(s.RentalIncome(p, year))
		interest = interest.Add(s.LoanInterest(p))
	}
	recognised = gross.Mul(RecognitionRate(len(owned)))
	return gross, recognised, interest
}
