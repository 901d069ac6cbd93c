package calculation

import (
	"fmt"
	"sync"

	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// recordingLogger captures formatted messages by level
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
	infos []string
}

func (l *recordingLogger) Debugf(string, ...any) {}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(string, ...any) {}

// unitRequest is a single 500k unit with a 100k deposit, bought from a 100k pool
func unitRequest() *domain.ProjectionRequest {
	return &domain.ProjectionRequest{
		Name:       "unit",
		Selections: domain.Selections{{PropertyID: "unit", Quantity: 1}},
		Profile: domain.InvestorProfile{
			DepositPool:             d(100000),
			BorrowingCapacity:       d(800000),
			AnnualSavings:           d(45000),
			TimelineYears:           10,
			EquityReleaseFactor:     d(0.5),
			ConsolidationsRemaining: 3,
		},
		GlobalFactors: domain.GlobalFactors{GrowthRate: d(5), InterestRate: d(6)},
		PropertyTypes: []domain.PropertyType{
			{ID: "unit", Title: "Unit", Cost: d(500000), DepositRequired: d(100000)},
		},
		PropertyDataMap: domain.PropertyDataMap{
			"Unit": {Growth: d(5), Yield: d(4.5)},
		},
		AvailableDeposit: d(100000),
	}
}

// cottageRequest selects two cheap high-yield cottages that always service
func cottageRequest() *domain.ProjectionRequest {
	return &domain.ProjectionRequest{
		Selections: domain.Selections{{PropertyID: "cottage", Quantity: 2}},
		Profile: domain.InvestorProfile{
			DepositPool:       d(200000),
			BorrowingCapacity: d(1000000),
			AnnualSavings:     d(45000),
			TimelineYears:     8,
		},
		GlobalFactors: domain.GlobalFactors{GrowthRate: d(5), InterestRate: d(6)},
		PropertyTypes: []domain.PropertyType{
			{ID: "cottage", Title: "Cottage", Cost: d(100000), DepositRequired: d(20000)},
		},
		PropertyDataMap: domain.PropertyDataMap{
			"Cottage": {Growth: d(5), Yield: d(10)},
		},
		AvailableDeposit: d(200000),
	}
}

func unitPurchase(instance, year int) domain.Purchase {
	return domain.Purchase{
		PropertyID:      "unit",
		Instance:        instance,
		Title:           "Unit",
		Year:            year,
		Cost:            d(500000),
		DepositRequired: d(100000),
		LoanAmount:      d(400000),
	}
}
