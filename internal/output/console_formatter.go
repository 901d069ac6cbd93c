package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	s := report.Projection.Summary
	fmt.Fprintln(&buf, "PROPERTY ROADMAP SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%s: purchases=%d unresolved=%d consolidations=%d\n",
		report.Name, s.PurchasesMade, s.Unresolved, s.Consolidations)
	fmt.Fprintf(&buf, "  Final value=%s equity=%s debt=%s\n",
		FormatCurrency(s.FinalPortfolioValue), FormatCurrency(s.FinalEquity), FormatCurrency(s.FinalDebt))
	for _, h := range Highlights(report.Projection) {
		fmt.Fprintf(&buf, "  - %s\n", h)
	}
	return buf.Bytes(), nil
}
