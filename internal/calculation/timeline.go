package calculation

import (
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

type instance struct {
	pt    domain.PropertyType
	index int
}

// ledgerEntry remembers every purchase, including those later sold, so hold
// years can show what was actually owned at the time.
type ledgerEntry struct {
	purchase domain.Purchase
	soldYear int // 0 while still owned
}

// instances expands selections in order, skipping unknown catalog ids.
// Indexes count per property id, so an id listed in several entries still
// yields unique purchase keys.
func (s *Simulation) instances() []instance {
	var out []instance
	counts := make(map[string]int)
	for _, sel := range s.req.Selections {
		pt, ok := s.req.FindPropertyType(sel.PropertyID)
		if !ok {
			s.projector.Logger.Warnf("unknown property type %q skipped", sel.PropertyID)
			continue
		}
		for i := 0; i < sel.Quantity; i++ {
			out = append(out, instance{pt: pt, index: counts[pt.ID]})
			counts[pt.ID]++
		}
	}
	return out
}

// Run simulates every selected instance and backfills hold years
func (s *Simulation) Run() *domain.Projection {
	years := s.req.Profile.TimelineYears
	purchases := make(map[int]domain.TimelineEntry)
	var unresolved []domain.TimelineEntry
	var ledger []ledgerEntry
	var history domain.PurchaseHistory

	for _, inst := range s.instances() {
		res := s.FindNextPurchaseYear(inst.pt, history)
		if !res.Found {
			unresolved = append(unresolved, s.challengingEntry(inst, res))
			s.projector.Logger.Infof("%s #%d not affordable within %d years", inst.pt.ID, inst.index+1, years)
			continue
		}

		before := s.PortfolioState(res.Year, history.OwnedBy(res.Year))
		if res.Check.Consolidation != nil {
			s.projector.Logger.Debugf("%s #%d bought after consolidation, %d affordability evaluations in year %d",
				inst.pt.ID, inst.index+1, res.Check.Evaluations, res.Year)
			for _, sold := range res.Check.Consolidation.PropertiesSold {
				for i := range ledger {
					if ledger[i].soldYear == 0 && ledger[i].purchase.Key() == sold.Key() {
						ledger[i].soldYear = res.Year
					}
				}
			}
		}

		purchase := domain.Purchase{
			PropertyID:      inst.pt.ID,
			Instance:        inst.index,
			Title:           inst.pt.Title,
			Year:            res.Year,
			Cost:            inst.pt.Cost,
			DepositRequired: inst.pt.DepositRequired,
			LoanAmount:      inst.pt.LoanAmount(),
		}
		history = res.History.With(purchase)
		ledger = append(ledger, ledgerEntry{purchase: purchase})

		purchases[res.Year] = s.purchaseEntry(purchase, res, before, history)
	}

	timeline := make([]domain.TimelineEntry, 0, years)
	for year := 1; year <= years; year++ {
		if entry, ok := purchases[year]; ok {
			timeline = append(timeline, entry)
			continue
		}
		timeline = append(timeline, s.holdEntry(year, ownedAt(ledger, year)))
	}

	projection := &domain.Projection{
		Timeline:   timeline,
		Unresolved: unresolved,
		History:    history,
	}
	projection.Summary = s.summarize(projection)
	return projection
}

func ownedAt(ledger []ledgerEntry, year int) domain.PurchaseHistory {
	var out domain.PurchaseHistory
	for _, le := range ledger {
		if le.purchase.Year <= year && (le.soldYear == 0 || le.soldYear > year) {
			out = append(out, le.purchase)
		}
	}
	return out
}

func (s *Simulation) purchaseEntry(p domain.Purchase, res SearchResult, before domain.PortfolioState, history domain.PurchaseHistory) domain.TimelineEntry {
	owned := history.OwnedBy(p.Year)
	after := s.PortfolioState(p.Year, owned)

	rate := RecognitionRate(len(owned))
	rent := s.RentalIncome(p, p.Year)
	interest := s.LoanInterest(p)
	expenses := rent.Mul(s.rules.ExpenseRatio)

	status := domain.StatusFeasible
	if res.Check.Consolidation != nil {
		status = domain.StatusConsolidation
	}

	headroom := s.req.Profile.BorrowingCapacity.Sub(after.Debt)
	return domain.TimelineEntry{
		Year:                   p.Year,
		AbsoluteYear:           s.rules.AbsoluteYear(p.Year),
		Status:                 status,
		PropertyID:             p.PropertyID,
		PropertyTitle:          p.Title,
		Instance:               p.Instance,
		Cost:                   p.Cost,
		DepositRequired:        p.DepositRequired,
		LoanAmount:             p.LoanAmount,
		Before:                 before,
		After:                  after,
		GrossRentalIncome:      rent,
		RecognisedRentalIncome: rent.Mul(rate),
		LoanInterest:           interest,
		Expenses:               expenses,
		NetCashflow:            rent.Mul(rate).Sub(interest).Sub(expenses),
		Funds:                  res.Check.Funds,
		DepositTest:            res.Check.Deposit,
		ServiceabilityTest:     res.Check.Serviceability,
		BorrowingCapacityTest:  domain.TestResult{Pass: !headroom.IsNegative(), Surplus: headroom},
		Consolidation:          res.Check.Consolidation,
	}
}

func (s *Simulation) challengingEntry(inst instance, res SearchResult) domain.TimelineEntry {
	return domain.TimelineEntry{
		Status:             domain.StatusChallenging,
		PropertyID:         inst.pt.ID,
		PropertyTitle:      inst.pt.Title,
		Instance:           inst.index,
		Cost:               inst.pt.Cost,
		DepositRequired:    inst.pt.DepositRequired,
		LoanAmount:         inst.pt.LoanAmount(),
		Funds:              res.Check.Funds,
		DepositTest:        res.Check.Deposit,
		ServiceabilityTest: res.Check.Serviceability,
	}
}

// holdEntry shows organic growth of what is owned in a year without a purchase.
// No test runs in a hold year so every test passes by convention.
func (s *Simulation) holdEntry(year int, owned domain.PurchaseHistory) domain.TimelineEntry {
	state := s.PortfolioState(year, owned)
	gross, recognised, interest := s.rentalTotals(year, owned)
	expenses := gross.Mul(s.rules.ExpenseRatio)
	passed := domain.TestResult{Pass: true, Surplus: decimal.Zero}

	return domain.TimelineEntry{
		Year:                   year,
		AbsoluteYear:           s.rules.AbsoluteYear(year),
		Status:                 domain.StatusHold,
		Before:                 state,
		After:                  state,
		GrossRentalIncome:      gross,
		RecognisedRentalIncome: recognised,
		LoanInterest:           interest,
		Expenses:               expenses,
		NetCashflow:            recognised.Sub(interest).Sub(expenses),
		Funds:                  s.AvailableFunds(year, owned, decimal.Zero),
		DepositTest:            passed,
		ServiceabilityTest:     domain.ServiceabilityResult{TestResult: passed, DSR: decimal.Zero},
		BorrowingCapacityTest:  passed,
	}
}

func (s *Simulation) summarize(p *domain.Projection) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{Unresolved: len(p.Unresolved)}
	for _, e := range p.Timeline {
		if !e.IsPurchase() {
			continue
		}
		summary.PurchasesMade++
		if e.Consolidation != nil {
			summary.Consolidations++
		}
		if summary.FirstPurchaseYear == 0 {
			summary.FirstPurchaseYear = e.AbsoluteYear
		}
	}
	if n := len(p.Timeline); n > 0 {
		final := p.Timeline[n-1].After
		summary.FinalPortfolioValue = final.Value
		summary.FinalEquity = final.Equity
		summary.FinalDebt = final.Debt
	}
	if len(p.Unresolved) > 0 {
		summary.FirstChallenging = p.Unresolved[0].PropertyTitle
	}
	return summary
}
