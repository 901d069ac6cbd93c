package calculation

import (
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// SearchResult is the earliest feasible purchase year for one property instance
type SearchResult struct {
	Found bool
	Year  int // Relative year, 0 when not found
	Check AffordabilityResult
	// History to append the purchase to. It differs from the input only when
	// a consolidation ran during the winning check.
	History domain.PurchaseHistory
}

// FindNextPurchaseYear scans the timeline for the first year pt can be bought.
// A purchase must fall at least two years after the latest one in history.
func (s *Simulation) FindNextPurchaseYear(pt domain.PropertyType, history domain.PurchaseHistory) SearchResult {
	last := history.LastYear()
	var lastCheck AffordabilityResult

	for year := 1; year <= s.req.Profile.TimelineYears; year++ {
		if len(history) > 0 && year <= last+1 {
			continue
		}
		funds := s.AvailableFunds(year, history, decimal.Zero)
		check := s.CheckAffordability(year, history, pt, funds)
		lastCheck = check
		if !check.CanAfford {
			continue
		}

		next := history
		if check.Consolidation != nil {
			next = check.History
		}
		return SearchResult{Found: true, Year: year, Check: check, History: next}
	}

	return SearchResult{Check: lastCheck, History: history}
}
