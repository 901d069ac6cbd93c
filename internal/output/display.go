package output

import (
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/propgo/roadmap-engine/pkg/money"
)

// FundsDisplay is the funds breakdown as shown to a client, in whole $1k units.
// Total is the sum of the rounded components, so the displayed figures always
// add up on screen even when that differs from rounding the exact total.
type FundsDisplay struct {
	BaseDeposit          money.Money
	CumulativeSavings    money.Money
	CashflowReinvestment money.Money
	EquityRelease        money.Money // Includes equity freed by a consolidation
	Total                money.Money
}

// DisplayFunds rounds each component to $1k and sums the rounded values
func DisplayFunds(fb domain.FundsBreakdown) FundsDisplay {
	d := FundsDisplay{
		BaseDeposit:          money.New(fb.BaseDepositRemaining()).RoundThousands(),
		CumulativeSavings:    money.New(fb.CumulativeSavings).RoundThousands(),
		CashflowReinvestment: money.New(fb.CashflowReinvestment).RoundThousands(),
		EquityRelease:        money.New(fb.EquityRelease.Add(fb.AdditionalEquity)).RoundThousands(),
	}
	d.Total = money.Sum(d.BaseDeposit, d.CumulativeSavings, d.CashflowReinvestment, d.EquityRelease)
	return d
}
