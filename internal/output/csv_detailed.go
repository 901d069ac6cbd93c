package output

import (
	"bytes"
	"encoding/csv"
)

// CSVDetailedExporter provides the funds breakdown and test values per year,
// plus one row per unresolved purchase with an empty year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "AbsoluteYear", "Status", "PropertyID", "Instance",
		"BaseDeposit", "CumulativeSavings", "CashflowReinvestment", "EquityRelease", "AdditionalEquity", "DepositsUsed", "AvailableFunds",
		"DepositSurplus", "DSR", "ServiceabilitySurplus", "BorrowingHeadroom",
		"GrossRent", "Interest", "Expenses", "NetCashflow", "PropertiesSold",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	entries := append(report.Projection.Timeline[:len(report.Projection.Timeline):len(report.Projection.Timeline)], report.Projection.Unresolved...)
	for _, e := range entries {
		year, absolute := "", ""
		if e.Year > 0 {
			year, absolute = intToString(e.Year), intToString(e.AbsoluteYear)
		}
		sold := 0
		if e.Consolidation != nil {
			sold = len(e.Consolidation.PropertiesSold)
		}
		row := []string{
			year, absolute, string(e.Status), e.PropertyID, intToString(e.Instance),
			e.Funds.BaseDeposit.StringFixed(2),
			e.Funds.CumulativeSavings.StringFixed(2),
			e.Funds.CashflowReinvestment.StringFixed(2),
			e.Funds.EquityRelease.StringFixed(2),
			e.Funds.AdditionalEquity.StringFixed(2),
			e.Funds.DepositsUsed.StringFixed(2),
			e.Funds.Total.StringFixed(2),
			e.DepositTest.Surplus.StringFixed(2),
			e.ServiceabilityTest.DSR.StringFixed(2),
			e.ServiceabilityTest.Surplus.StringFixed(2),
			e.BorrowingCapacityTest.Surplus.StringFixed(2),
			e.GrossRentalIncome.StringFixed(2),
			e.LoanInterest.StringFixed(2),
			e.Expenses.StringFixed(2),
			e.NetCashflow.StringFixed(2),
			intToString(sold),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
