package output

import (
	"bytes"
	"encoding/csv"
)

// CSVTimelineFormatter writes one row per timeline year.
type CSVTimelineFormatter struct{}

func (c CSVTimelineFormatter) Name() string { return "csv" }

func (c CSVTimelineFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "AbsoluteYear", "Status", "Property", "Cost", "PortfolioValue", "Equity", "Debt", "AvailableFunds", "DepositPass", "ServiceabilityPass", "BorrowingCapacityPass"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Projection.Timeline {
		row := []string{
			intToString(e.Year),
			intToString(e.AbsoluteYear),
			string(e.Status),
			e.PropertyTitle,
			e.Cost.StringFixed(2),
			e.After.Value.StringFixed(2),
			e.After.Equity.StringFixed(2),
			e.After.Debt.StringFixed(2),
			e.Funds.Total.StringFixed(2),
			boolToString(e.DepositTest.Pass),
			boolToString(e.ServiceabilityTest.Pass),
			boolToString(e.BorrowingCapacityTest.Pass),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
