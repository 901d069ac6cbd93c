package domain

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSelections_JSONKeepsOrder(t *testing.T) {
	var s Selections
	require.NoError(t, json.Unmarshal([]byte(`{"zeta": 2, "alpha": 1, "mid": 0}`), &s))
	assert.Equal(t, Selections{
		{PropertyID: "zeta", Quantity: 2},
		{PropertyID: "alpha", Quantity: 1},
		{PropertyID: "mid", Quantity: 0},
	}, s)
	assert.Equal(t, 3, s.Total())

	var list Selections
	require.NoError(t, json.Unmarshal([]byte(`[{"propertyId": "b", "quantity": 4}]`), &list))
	assert.Equal(t, Selections{{PropertyID: "b", Quantity: 4}}, list)

	var empty Selections
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.Nil(t, empty)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "many"}`), &s))
}

func TestSelections_YAMLKeepsOrder(t *testing.T) {
	var doc struct {
		Selections Selections `yaml:"selections"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("selections:\n  zeta: 2\n  alpha: 1\n"), &doc))
	assert.Equal(t, Selections{{PropertyID: "zeta", Quantity: 2}, {PropertyID: "alpha", Quantity: 1}}, doc.Selections)

	require.NoError(t, yaml.Unmarshal([]byte("selections:\n  - property_id: x\n    quantity: 3\n"), &doc))
	assert.Equal(t, Selections{{PropertyID: "x", Quantity: 3}}, doc.Selections)

	assert.Error(t, yaml.Unmarshal([]byte("selections: 3\n"), &doc))
}

func purchase(id string, instance, year int) Purchase {
	return Purchase{PropertyID: id, Instance: instance, Year: year, Cost: decimal.NewFromInt(100)}
}

func TestPurchaseHistory(t *testing.T) {
	h := PurchaseHistory{purchase("a", 0, 5), purchase("b", 0, 1), purchase("c", 0, 5)}

	sorted := h.Sorted()
	assert.Equal(t, []string{"b", "a", "c"}, []string{sorted[0].PropertyID, sorted[1].PropertyID, sorted[2].PropertyID})
	assert.Equal(t, "a", h[0].PropertyID, "Sorted copies")

	assert.Equal(t, 5, h.LastYear())
	assert.Equal(t, 1, h.FirstYear())
	assert.Equal(t, 0, PurchaseHistory(nil).LastYear())
	assert.Equal(t, 0, PurchaseHistory(nil).FirstYear())

	assert.Len(t, h.OwnedBy(4), 1)
	assert.Len(t, h.OwnedBy(5), 3)

	with := h.With(purchase("d", 1, 3))
	assert.Len(t, with, 4)
	assert.Equal(t, "d", with[1].PropertyID)
	assert.Len(t, h, 3)

	without := with.Without("d#1")
	assert.Len(t, without, 3)
	assert.Len(t, with.Without("missing#0"), 4)
}

func TestPropertyType_LoanAmount(t *testing.T) {
	pt := PropertyType{Cost: decimal.NewFromInt(500000), DepositRequired: decimal.NewFromInt(100000)}
	assert.True(t, pt.LoanAmount().Equal(decimal.NewFromInt(400000)))
	assert.Equal(t, "unit#2", Purchase{PropertyID: "unit", Instance: 2}.Key())
}

func TestProjectionResponse_OK(t *testing.T) {
	assert.False(t, (&ProjectionResponse{}).OK())
	assert.False(t, (&ProjectionResponse{Error: "boom", Projection: &Projection{}}).OK())
	assert.True(t, (&ProjectionResponse{Projection: &Projection{}}).OK())
}
