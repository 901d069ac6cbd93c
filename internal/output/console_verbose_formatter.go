package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/propgo/roadmap-engine/internal/domain"
)

// ConsoleVerboseFormatter renders the full yearly roadmap table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Projection

	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintf(&buf, "PROPERTY INVESTMENT ROADMAP: %s\n", report.Name)
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	if report.Cached {
		fmt.Fprintln(&buf, "(served from cache)")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range report.Assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEARLY TIMELINE")
	fmt.Fprintf(&buf, "%-6s %-14s %-20s %10s %10s %10s %10s  %-4s %-4s %-4s\n",
		"Year", "Status", "Property", "Available", "Value", "Equity", "Debt", "DEP", "SVC", "BC")
	fmt.Fprintln(&buf, strings.Repeat("-", 96))
	for _, e := range p.Timeline {
		funds := DisplayFunds(e.Funds)
		fmt.Fprintf(&buf, "%-6d %-14s %-20s %10s %10s %10s %10s  %-4s %-4s %-4s\n",
			e.AbsoluteYear,
			e.Status,
			truncate(e.PropertyTitle, 20),
			funds.Total.FormatThousands(),
			FormatThousands(e.After.Value),
			FormatThousands(e.After.Equity),
			FormatThousands(e.After.Debt),
			passFail(e.DepositTest.Pass),
			passFail(e.ServiceabilityTest.Pass),
			passFail(e.BorrowingCapacityTest.Pass),
		)
	}
	fmt.Fprintln(&buf)

	for _, e := range p.Timeline {
		if e.IsPurchase() {
			writePurchaseDetail(&buf, &e)
		}
	}

	if len(p.Unresolved) > 0 {
		fmt.Fprintln(&buf, "CHALLENGING PURCHASES")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, e := range p.Unresolved {
			fmt.Fprintf(&buf, "%s #%d: deposit %s, shortfall %s\n", e.PropertyTitle, e.Instance+1,
				FormatCurrency(e.DepositRequired), FormatCurrency(e.DepositTest.Surplus.Neg()))
		}
		fmt.Fprintln(&buf)
	}

	s := p.Summary
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Purchases made:        %d\n", s.PurchasesMade)
	fmt.Fprintf(&buf, "Consolidations:        %d\n", s.Consolidations)
	fmt.Fprintf(&buf, "Unresolved:            %d\n", s.Unresolved)
	fmt.Fprintf(&buf, "Final portfolio value: %s\n", FormatCurrency(s.FinalPortfolioValue))
	fmt.Fprintf(&buf, "Final equity:          %s\n", FormatCurrency(s.FinalEquity))
	fmt.Fprintf(&buf, "Final debt:            %s\n", FormatCurrency(s.FinalDebt))
	return buf.Bytes(), nil
}

func writePurchaseDetail(buf *bytes.Buffer, e *domain.TimelineEntry) {
	funds := DisplayFunds(e.Funds)
	fmt.Fprintf(buf, "%d  %s #%d (%s)\n", e.AbsoluteYear, e.PropertyTitle, e.Instance+1, e.Status)
	fmt.Fprintf(buf, "  Cost %s, deposit %s, loan %s\n", FormatCurrency(e.Cost), FormatCurrency(e.DepositRequired), FormatCurrency(e.LoanAmount))
	fmt.Fprintf(buf, "  Available funds %s = base %s + savings %s + cashflow %s + equity %s\n",
		funds.Total.FormatThousands(), funds.BaseDeposit.FormatThousands(), funds.CumulativeSavings.FormatThousands(),
		funds.CashflowReinvestment.FormatThousands(), funds.EquityRelease.FormatThousands())
	fmt.Fprintf(buf, "  Deposit test %s (surplus %s), serviceability %s (DSR %s), borrowing capacity %s (headroom %s)\n",
		passFail(e.DepositTest.Pass), FormatCurrency(e.DepositTest.Surplus),
		passFail(e.ServiceabilityTest.Pass), FormatPercentage(e.ServiceabilityTest.DSR),
		passFail(e.BorrowingCapacityTest.Pass), FormatCurrency(e.BorrowingCapacityTest.Surplus))
	fmt.Fprintf(buf, "  Rent %s, interest %s, expenses %s, net cashflow %s\n",
		FormatCurrency(e.GrossRentalIncome), FormatCurrency(e.LoanInterest), FormatCurrency(e.Expenses), FormatCurrency(e.NetCashflow))
	if c := e.Consolidation; c != nil {
		titles := make([]string, 0, len(c.PropertiesSold))
		for _, p := range c.PropertiesSold {
			titles = append(titles, p.Title)
		}
		fmt.Fprintf(buf, "  Consolidated: sold %s, freed %s, debt reduced %s, LVR now %s\n",
			strings.Join(titles, ", "), FormatCurrency(c.EquityFreed), FormatCurrency(c.DebtReduced), FormatPercentage(c.NewLVR))
	}
	fmt.Fprintln(buf)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
