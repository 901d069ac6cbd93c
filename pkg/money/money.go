package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a dollar amount with display helpers for roadmap reports
type Money struct {
	decimal.Decimal
}

// New creates Money from a decimal
func New(d decimal.Decimal) Money {
	return Money{d}
}

// FromInt creates Money from whole dollars
func FromInt(dollars int64) Money {
	return Money{decimal.NewFromInt(dollars)}
}

// Parse creates Money from a string such as "85200.50"
func Parse(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundThousands rounds to the nearest $1,000, half away from zero
func (m Money) RoundThousands() Money {
	return Money{m.Decimal.Round(-3)}
}

// Add adds another amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Sum adds amounts in order
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole dollars with thousands separators, e.g. "-$1,250,000"
func (m Money) Format() string {
	return sign(m) + "$" + groupThousands(m.Decimal.Abs().Round(0).String())
}

// FormatThousands renders the amount rounded to $1,000 in "k" notation, e.g. "$85k"
func (m Money) FormatThousands() string {
	k := m.RoundThousands().Decimal.Div(decimal.NewFromInt(1000))
	return sign(m.RoundThousands()) + "$" + groupThousands(k.Abs().String()) + "k"
}

func sign(m Money) string {
	if m.Decimal.IsNegative() {
		return "-"
	}
	return ""
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
