package calculation

import (
	"github.com/shopspring/decimal"
)

// DefaultBaseYear is the calendar year of relative year 1
const DefaultBaseYear = 2025

// Rules holds the lending and strategy policy applied by the projector
type Rules struct {
	BaseYear int

	// Affordability
	DepositBuffer decimal.Decimal // Cash kept aside before a deposit can be paid
	MaxDSR        decimal.Decimal // Percent
	NoRentDSR     decimal.Decimal // DSR reported when there is interest but no recognised rent
	ExpenseRatio  decimal.Decimal // Share of gross rent spent on running costs

	// Equity release
	EquityReleaseLVR      decimal.Decimal
	EquityReleaseInterval int // Years since first purchase

	// Consolidation
	ConsolidationFailureStreak int
	ConsolidationMinGap        int
	MaxConsolidations          int
	ConsolidationTargetLVR     decimal.Decimal // Percent
	CashflowWeight             decimal.Decimal
	EquityWeight               decimal.Decimal
}

// DefaultRules returns the standard lending policy
func DefaultRules() Rules {
	return Rules{
		BaseYear:                   DefaultBaseYear,
		DepositBuffer:              decimal.NewFromInt(40000),
		MaxDSR:                     decimal.NewFromInt(80),
		NoRentDSR:                  decimal.NewFromInt(999),
		ExpenseRatio:               decimal.NewFromFloat(0.30),
		EquityReleaseLVR:           decimal.NewFromFloat(0.80),
		EquityReleaseInterval:      3,
		ConsolidationFailureStreak: 2,
		ConsolidationMinGap:        5,
		MaxConsolidations:          3,
		ConsolidationTargetLVR:     decimal.NewFromInt(80),
		CashflowWeight:             decimal.NewFromFloat(0.6),
		EquityWeight:               decimal.NewFromFloat(0.4),
	}
}

// AbsoluteYear converts a 1-based relative year to a calendar year
func (r Rules) AbsoluteYear(relative int) int {
	return r.BaseYear + relative - 1
}

var (
	recognitionSmall  = decimal.NewFromFloat(0.75)
	recognitionMedium = decimal.NewFromFloat(0.70)
	recognitionLarge  = decimal.NewFromFloat(0.65)
)

// RecognitionRate returns the share of gross rent a lender counts for a
// portfolio of the given size.
func RecognitionRate(properties int) decimal.Decimal {
	switch {
	case properties <= 2:
		return recognitionSmall
	case properties <= 4:
		return recognitionMedium
	default:
		return recognitionLarge
	}
}

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// percent converts 5 (percent) to 0.05
func percent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// growthFactor returns (1 + rate%)^years, or 1 for non-positive years
func growthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(percent(rate)).Pow(decimal.NewFromInt(int64(years)))
}
