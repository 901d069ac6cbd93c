package domain

import (
	"github.com/shopspring/decimal"
)

// EntryStatus classifies a timeline entry
type EntryStatus string

const (
	StatusFeasible      EntryStatus = "feasible"
	StatusConsolidation EntryStatus = "consolidation"
	StatusChallenging   EntryStatus = "challenging"
	StatusHold          EntryStatus = "hold"
)

// FundsBreakdown decomposes the cash available for a deposit in a given year
type FundsBreakdown struct {
	BaseDeposit          decimal.Decimal `json:"baseDeposit"`
	CumulativeSavings    decimal.Decimal `json:"cumulativeSavings"`
	CashflowReinvestment decimal.Decimal `json:"cashflowReinvestment"`
	EquityRelease        decimal.Decimal `json:"equityRelease"`
	AdditionalEquity     decimal.Decimal `json:"additionalEquity"` // Freed by a consolidation in the same check
	DepositsUsed         decimal.Decimal `json:"depositsUsed"`
	Total                decimal.Decimal `json:"total"`
}

// BaseDepositRemaining is the starting deposit less deposits already consumed
func (fb FundsBreakdown) BaseDepositRemaining() decimal.Decimal {
	return fb.BaseDeposit.Sub(fb.DepositsUsed)
}

// TestResult is the outcome of one affordability test
type TestResult struct {
	Pass    bool            `json:"pass"`
	Surplus decimal.Decimal `json:"surplus"` // Negative means shortfall
}

// ServiceabilityResult extends TestResult with the debt service ratio
type ServiceabilityResult struct {
	TestResult
	DSR decimal.Decimal `json:"dsr"` // Percent
}

// ConsolidationDetails describes a forced sale executed before a purchase
type ConsolidationDetails struct {
	Year           int             `json:"year"`
	PropertiesSold []Purchase      `json:"propertiesSold"`
	EquityFreed    decimal.Decimal `json:"equityFreed"`
	DebtReduced    decimal.Decimal `json:"debtReduced"`
	NewLVR         decimal.Decimal `json:"newLvr"`
	NetCashflow    decimal.Decimal `json:"netCashflow"`
	// TargetsMet is false when every property was sold without reaching the
	// LVR and cashflow targets. The projection proceeds either way.
	TargetsMet bool `json:"targetsMet"`
}

// PortfolioState is the derived value of all owned properties at a point in time
type PortfolioState struct {
	Properties int             `json:"properties"`
	Value      decimal.Decimal `json:"value"`
	Equity     decimal.Decimal `json:"equity"`
	Debt       decimal.Decimal `json:"debt"`
}

// TimelineEntry is one relative year of the roadmap
type TimelineEntry struct {
	Year         int         `json:"year"`         // Relative, 1-based; 0 for unresolved
	AbsoluteYear int         `json:"absoluteYear"` // Calendar year; 0 for unresolved
	Status       EntryStatus `json:"status"`

	PropertyID      string          `json:"propertyId,omitempty"`
	PropertyTitle   string          `json:"propertyTitle,omitempty"`
	Instance        int             `json:"instance,omitempty"`
	Cost            decimal.Decimal `json:"cost"`
	DepositRequired decimal.Decimal `json:"depositRequired"`
	LoanAmount      decimal.Decimal `json:"loanAmount"`

	Before PortfolioState `json:"before"`
	After  PortfolioState `json:"after"`

	GrossRentalIncome      decimal.Decimal `json:"grossRentalIncome"`
	RecognisedRentalIncome decimal.Decimal `json:"recognisedRentalIncome"`
	LoanInterest           decimal.Decimal `json:"loanInterest"`
	Expenses               decimal.Decimal `json:"expenses"`
	NetCashflow            decimal.Decimal `json:"netCashflow"`

	Funds FundsBreakdown `json:"funds"`

	DepositTest           TestResult           `json:"depositTest"`
	ServiceabilityTest    ServiceabilityResult `json:"serviceabilityTest"`
	BorrowingCapacityTest TestResult           `json:"borrowingCapacityTest"`

	Consolidation *ConsolidationDetails `json:"consolidation,omitempty"`
}

// IsPurchase reports whether the entry records a completed purchase
func (te *TimelineEntry) IsPurchase() bool {
	return te.Status == StatusFeasible || te.Status == StatusConsolidation
}

// ProjectionSummary condenses a projection for reports
type ProjectionSummary struct {
	PurchasesMade       int             `json:"purchasesMade"`
	Unresolved          int             `json:"unresolved"`
	Consolidations      int             `json:"consolidations"`
	FirstPurchaseYear   int             `json:"firstPurchaseYear"` // Calendar year, 0 if none
	FinalPortfolioValue decimal.Decimal `json:"finalPortfolioValue"`
	FinalEquity         decimal.Decimal `json:"finalEquity"`
	FinalDebt           decimal.Decimal `json:"finalDebt"`
	FirstChallenging    string          `json:"firstChallenging,omitempty"`
}

// Projection is the full result of a run
type Projection struct {
	Timeline   []TimelineEntry   `json:"timeline"`
	Unresolved []TimelineEntry   `json:"unresolved"`
	History    PurchaseHistory   `json:"history"`
	Summary    ProjectionSummary `json:"summary"`
}
