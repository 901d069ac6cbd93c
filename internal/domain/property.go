package domain

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// PropertyType is a catalog entry a client can select for purchase
type PropertyType struct {
	ID              string          `yaml:"id" json:"id"`
	Title           string          `yaml:"title" json:"title"`
	Cost            decimal.Decimal `yaml:"cost" json:"cost"`
	DepositRequired decimal.Decimal `yaml:"deposit_required" json:"depositRequired"`
	GrowthRate      decimal.Decimal `yaml:"growth_rate,omitempty" json:"growthRate,omitempty"`   // Reference only
	RentalYield     decimal.Decimal `yaml:"rental_yield,omitempty" json:"rentalYield,omitempty"` // Reference only
}

// LoanAmount is the portion of the cost financed by debt
func (pt PropertyType) LoanAmount() decimal.Decimal {
	return pt.Cost.Sub(pt.DepositRequired)
}

// PropertyAssumption holds the growth and yield (percent) used to project a title forward
type PropertyAssumption struct {
	Growth decimal.Decimal `yaml:"growth" json:"growth"`
	Yield  decimal.Decimal `yaml:"yield" json:"yield"`
}

// PropertyDataMap maps a property title to its projection assumptions
type PropertyDataMap map[string]PropertyAssumption

// Purchase is a property in the evolving portfolio. Its current value is never
// stored; it is derived from the purchase year on every read.
type Purchase struct {
	PropertyID      string          `yaml:"property_id" json:"propertyId"`
	Instance        int             `yaml:"instance" json:"instance"`
	Title           string          `yaml:"title" json:"title"`
	Year            int             `yaml:"year" json:"year"` // Relative, 1-based
	Cost            decimal.Decimal `yaml:"cost" json:"cost"`
	DepositRequired decimal.Decimal `yaml:"deposit_required" json:"depositRequired"`
	LoanAmount      decimal.Decimal `yaml:"loan_amount" json:"loanAmount"`
}

// PurchaseHistory is the ordered list of owned purchases
type PurchaseHistory []Purchase

// Sorted returns a copy ordered by purchase year. The sort is stable so
// same-year records keep insertion order.
func (h PurchaseHistory) Sorted() PurchaseHistory {
	out := append(PurchaseHistory(nil), h...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// With returns a sorted copy including p
func (h PurchaseHistory) With(p Purchase) PurchaseHistory {
	out := append(append(PurchaseHistory(nil), h...), p)
	return out.Sorted()
}

// LastYear returns the latest purchase year, or 0 for an empty history
func (h PurchaseHistory) LastYear() int {
	last := 0
	for _, p := range h {
		if p.Year > last {
			last = p.Year
		}
	}
	return last
}

// FirstYear returns the earliest purchase year, or 0 for an empty history
func (h PurchaseHistory) FirstYear() int {
	if len(h) == 0 {
		return 0
	}
	first := h[0].Year
	for _, p := range h[1:] {
		if p.Year < first {
			first = p.Year
		}
	}
	return first
}

// OwnedBy returns purchases made on or before year
func (h PurchaseHistory) OwnedBy(year int) PurchaseHistory {
	var out PurchaseHistory
	for _, p := range h {
		if p.Year <= year {
			out = append(out, p)
		}
	}
	return out
}

// Without returns the history minus the purchase identified by key
func (h PurchaseHistory) Without(key string) PurchaseHistory {
	var out PurchaseHistory
	for _, p := range h {
		if p.Key() != key {
			out = append(out, p)
		}
	}
	return out
}

// Key identifies a purchase instance within a run
func (p Purchase) Key() string {
	return p.PropertyID + "#" + strconv.Itoa(p.Instance)
}
