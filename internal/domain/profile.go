package domain

import (
	"github.com/shopspring/decimal"
)

// InvestorProfile is the client's starting financial position for a roadmap
type InvestorProfile struct {
	DepositPool         decimal.Decimal `yaml:"deposit_pool" json:"depositPool"`
	BorrowingCapacity   decimal.Decimal `yaml:"borrowing_capacity" json:"borrowingCapacity"`
	PortfolioValue      decimal.Decimal `yaml:"portfolio_value" json:"portfolioValue"` // Existing holdings outside the roadmap
	CurrentDebt         decimal.Decimal `yaml:"current_debt" json:"currentDebt"`
	AnnualSavings       decimal.Decimal `yaml:"annual_savings" json:"annualSavings"`
	TimelineYears       int             `yaml:"timeline_years" json:"timelineYears"`
	EquityReleaseFactor decimal.Decimal `yaml:"equity_release_factor" json:"equityReleaseFactor"` // 0..1, share of releasable equity drawn

	// Consolidation counters. Only the projector's local copy changes during a run.
	ConsolidationsRemaining int `yaml:"consolidations_remaining" json:"consolidationsRemaining"`
	LastConsolidationYear   int `yaml:"last_consolidation_year" json:"lastConsolidationYear"` // Relative year, 0 = never
}

// GlobalFactors are the economy-wide assumptions, expressed in percent (5 = 5%)
type GlobalFactors struct {
	GrowthRate   decimal.Decimal `yaml:"growth_rate" json:"growthRate"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interestRate"`
}
