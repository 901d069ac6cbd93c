package output

import (
	"strconv"

	"github.com/propgo/roadmap-engine/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole dollars with separators.
func FormatCurrency(amount decimal.Decimal) string { return money.New(amount).Format() }

// FormatThousands formats a decimal rounded to $1k, e.g. "$85k".
func FormatThousands(amount decimal.Decimal) string { return money.New(amount).FormatThousands() }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

func intToString(n int) string { return strconv.Itoa(n) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func passFail(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
