package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	req, err := parser.LoadFromFile("testdata/scenario.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Growth then yield", req.Name)
	// Selection order follows the document, not key order
	require.Len(t, req.Selections, 2)
	assert.Equal(t, domain.Selection{PropertyID: "regional-house", Quantity: 1}, req.Selections[0])
	assert.Equal(t, domain.Selection{PropertyID: "metro-unit", Quantity: 2}, req.Selections[1])
	assert.Equal(t, 3, req.Selections.Total())

	assert.Equal(t, 15, req.Profile.TimelineYears)
	assert.True(t, req.Profile.DepositPool.Equal(decimal.NewFromInt(150000)))
	assert.True(t, req.Profile.EquityReleaseFactor.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, req.GlobalFactors.InterestRate.Equal(decimal.NewFromInt(6)))

	require.Len(t, req.PropertyTypes, 2)
	pt, ok := req.FindPropertyType("metro-unit")
	require.True(t, ok)
	assert.True(t, pt.LoanAmount().Equal(decimal.NewFromInt(400000)))
	assert.True(t, req.PropertyDataMap["Regional House"].Yield.Equal(decimal.NewFromFloat(5.5)))

	// Defaulted from the deposit pool
	assert.True(t, req.AvailableDeposit.Equal(decimal.NewFromInt(150000)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("nonexistent.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte("profile: [unterminated"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_ListSelections(t *testing.T) {
	doc := `
selections:
  - property_id: b
    quantity: 1
  - property_id: a
    quantity: 3
profile:
  timeline_years: 5
global_factors:
  interest_rate: 6
available_deposit: 25000
`
	req, err := NewInputParser().Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, domain.Selections{{PropertyID: "b", Quantity: 1}, {PropertyID: "a", Quantity: 3}}, req.Selections)
	// An explicit deposit is kept
	assert.True(t, req.AvailableDeposit.Equal(decimal.NewFromInt(25000)))
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProjectionRequest)
		errMsg string
	}{
		{"zero timeline", func(r *domain.ProjectionRequest) { r.Profile.TimelineYears = 0 }, "timeline years"},
		{"negative quantity", func(r *domain.ProjectionRequest) {
			r.Selections = domain.Selections{{PropertyID: "metro-unit", Quantity: -2}}
		}, "cannot be negative"},
		{"negative deposit pool", func(r *domain.ProjectionRequest) { r.Profile.DepositPool = decimal.NewFromInt(-1) }, "deposit pool"},
		{"negative savings", func(r *domain.ProjectionRequest) { r.Profile.AnnualSavings = decimal.NewFromInt(-1) }, "annual savings"},
		{"release factor above one", func(r *domain.ProjectionRequest) { r.Profile.EquityReleaseFactor = decimal.NewFromFloat(1.5) }, "equity release factor"},
		{"negative consolidations", func(r *domain.ProjectionRequest) { r.Profile.ConsolidationsRemaining = -1 }, "consolidations remaining"},
		{"interest too high", func(r *domain.ProjectionRequest) { r.GlobalFactors.InterestRate = decimal.NewFromInt(31) }, "interest rate"},
		{"negative available deposit", func(r *domain.ProjectionRequest) { r.AvailableDeposit = decimal.NewFromInt(-5) }, "available deposit"},
		{"missing title", func(r *domain.ProjectionRequest) { r.PropertyTypes[0].Title = "" }, "title is required"},
		{"deposit above cost", func(r *domain.ProjectionRequest) {
			r.PropertyTypes[0].DepositRequired = r.PropertyTypes[0].Cost.Add(decimal.NewFromInt(1))
		}, "deposit required"},
		{"duplicate id", func(r *domain.ProjectionRequest) { r.PropertyTypes[1].ID = r.PropertyTypes[0].ID }, "duplicate property type"},
		{"negative yield", func(r *domain.ProjectionRequest) {
			r.PropertyDataMap["Metro Unit"] = domain.PropertyAssumption{Growth: decimal.NewFromInt(3), Yield: decimal.NewFromInt(-1)}
		}, "yield cannot be negative"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parser.CreateExampleRequest()
			tt.mutate(req)
			err := parser.ValidateRequest(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateRequest_UnknownSelectionAllowed(t *testing.T) {
	parser := NewInputParser()
	req := parser.CreateExampleRequest()
	req.Selections = append(req.Selections, domain.Selection{PropertyID: "not-in-catalog", Quantity: 1})
	assert.NoError(t, parser.ValidateRequest(req))
}

func TestCreateExampleRequest(t *testing.T) {
	parser := NewInputParser()
	req := parser.CreateExampleRequest()
	require.NoError(t, parser.ValidateRequest(req))

	projection, err := calculation.NewProjector().Project(req)
	require.NoError(t, err)
	assert.Len(t, projection.Timeline, req.Profile.TimelineYears)
	assert.Positive(t, projection.Summary.PurchasesMade)
}

func TestSaveRequest_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	req := parser.CreateExampleRequest()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, SaveRequest(req, path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, req.Selections, loaded.Selections)
	assert.Equal(t, req.Profile.TimelineYears, loaded.Profile.TimelineYears)
	assert.True(t, req.Profile.BorrowingCapacity.Equal(loaded.Profile.BorrowingCapacity))
	assert.Len(t, loaded.PropertyDataMap, 2)
}

func TestLoadFromFile_JSON(t *testing.T) {
	doc := `{
  "selections": {"metro-unit": 1},
  "profile": {"depositPool": "120000", "annualSavings": "30000", "timelineYears": 6},
  "globalFactors": {"growthRate": "4", "interestRate": "6.5"},
  "propertyTypes": [{"id": "metro-unit", "title": "Metro Unit", "cost": "450000", "depositRequired": "90000"}],
  "propertyDataMap": {"Metro Unit": {"growth": "5", "yield": "4"}}
}`
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	req, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Selections{{PropertyID: "metro-unit", Quantity: 1}}, req.Selections)
	assert.Equal(t, 6, req.Profile.TimelineYears)
	assert.True(t, req.GlobalFactors.InterestRate.Equal(decimal.NewFromFloat(6.5)))
	assert.True(t, req.AvailableDeposit.Equal(decimal.NewFromInt(120000)))

	_, err = NewInputParser().ParseJSON([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}
