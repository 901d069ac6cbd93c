package output

import (
	"fmt"
	"sort"

	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateAssumptions creates the assumption list from actual request values
func GenerateAssumptions(req *domain.ProjectionRequest, rules calculation.Rules) []string {
	out := []string{
		fmt.Sprintf("Timeline: %d years starting %d", req.Profile.TimelineYears, rules.BaseYear),
		fmt.Sprintf("Existing portfolio growth: %s annually", FormatPercentage(req.GlobalFactors.GrowthRate)),
		fmt.Sprintf("Loan interest: %s annually, interest only", FormatPercentage(req.GlobalFactors.InterestRate)),
		fmt.Sprintf("Annual savings: %s", FormatCurrency(req.Profile.AnnualSavings)),
		fmt.Sprintf("Deposit buffer: %s retained before any deposit", FormatCurrency(rules.DepositBuffer)),
		fmt.Sprintf("Serviceability: interest within %s of recognised rent", FormatPercentage(rules.MaxDSR)),
		"Rental recognition: 75% (1-2 properties), 70% (3-4), 65% (5+)",
		fmt.Sprintf("Running costs: %s of gross rent", FormatPercentage(rules.ExpenseRatio.Mul(decimal.NewFromInt(100)))),
	}

	titles := make([]string, 0, len(req.PropertyDataMap))
	for title := range req.PropertyDataMap {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		a := req.PropertyDataMap[title]
		out = append(out, fmt.Sprintf("%s: growth %s, yield %s", title, FormatPercentage(a.Growth), FormatPercentage(a.Yield)))
	}
	return out
}
