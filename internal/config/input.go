package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/propgo/roadmap-engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files into projection requests
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	parse := ip.Parse
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		parse = ip.ParseJSON
	}
	req, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return req, nil
}

// Parse decodes and validates a scenario document
func (ip *InputParser) Parse(data []byte) (*domain.ProjectionRequest, error) {
	var req domain.ProjectionRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&req)

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &req, nil
}

// ParseJSON decodes and validates a scenario in the HTTP wire format
func (ip *InputParser) ParseJSON(data []byte) (*domain.ProjectionRequest, error) {
	var req domain.ProjectionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	ip.ApplyDefaults(&req)

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &req, nil
}

// ApplyDefaults fills optional fields. A missing available deposit falls back
// to the profile's deposit pool.
func (ip *InputParser) ApplyDefaults(req *domain.ProjectionRequest) {
	if req.AvailableDeposit.IsZero() {
		req.AvailableDeposit = req.Profile.DepositPool
	}
}

// ValidateRequest validates a projection request
func (ip *InputParser) ValidateRequest(req *domain.ProjectionRequest) error {
	if err := calculation.ValidateShape(req); err != nil {
		return err
	}
	if err := ip.validateProfile(&req.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateGlobalFactors(&req.GlobalFactors); err != nil {
		return fmt.Errorf("global factors validation failed: %w", err)
	}

	if req.AvailableDeposit.LessThan(decimal.Zero) {
		return fmt.Errorf("available deposit cannot be negative")
	}

	seen := make(map[string]bool, len(req.PropertyTypes))
	for i, pt := range req.PropertyTypes {
		if err := ip.validatePropertyType(&pt); err != nil {
			return fmt.Errorf("property type %d validation failed: %w", i, err)
		}
		if seen[pt.ID] {
			return fmt.Errorf("duplicate property type id %q", pt.ID)
		}
		seen[pt.ID] = true
	}

	for title, a := range req.PropertyDataMap {
		if a.Growth.LessThan(decimal.NewFromInt(-100)) {
			return fmt.Errorf("property data %q: growth cannot be less than -100%%", title)
		}
		if a.Yield.LessThan(decimal.Zero) {
			return fmt.Errorf("property data %q: yield cannot be negative", title)
		}
	}

	return nil
}

func (ip *InputParser) validateProfile(profile *domain.InvestorProfile) error {
	if profile.DepositPool.LessThan(decimal.Zero) {
		return fmt.Errorf("deposit pool cannot be negative")
	}
	if profile.BorrowingCapacity.LessThan(decimal.Zero) {
		return fmt.Errorf("borrowing capacity cannot be negative")
	}
	if profile.PortfolioValue.LessThan(decimal.Zero) {
		return fmt.Errorf("portfolio value cannot be negative")
	}
	if profile.CurrentDebt.LessThan(decimal.Zero) {
		return fmt.Errorf("current debt cannot be negative")
	}
	if profile.AnnualSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("annual savings cannot be negative")
	}
	if profile.EquityReleaseFactor.LessThan(decimal.Zero) || profile.EquityReleaseFactor.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("equity release factor must be between 0 and 1")
	}
	if profile.ConsolidationsRemaining < 0 {
		return fmt.Errorf("consolidations remaining cannot be negative")
	}
	if profile.LastConsolidationYear < 0 {
		return fmt.Errorf("last consolidation year cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateGlobalFactors(gf *domain.GlobalFactors) error {
	if gf.GrowthRate.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("growth rate cannot be less than -100%%")
	}
	if gf.InterestRate.LessThan(decimal.Zero) || gf.InterestRate.GreaterThan(decimal.NewFromInt(30)) {
		return fmt.Errorf("interest rate must be between 0%% and 30%%")
	}
	return nil
}

func (ip *InputParser) validatePropertyType(pt *domain.PropertyType) error {
	if pt.ID == "" {
		return fmt.Errorf("id is required")
	}
	if pt.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !pt.Cost.IsPositive() {
		return fmt.Errorf("cost must be positive")
	}
	if pt.DepositRequired.LessThan(decimal.Zero) || pt.DepositRequired.GreaterThan(pt.Cost) {
		return fmt.Errorf("deposit required must be between 0 and cost")
	}
	return nil
}

// CreateExampleRequest creates an example scenario
func (ip *InputParser) CreateExampleRequest() *domain.ProjectionRequest {
	return &domain.ProjectionRequest{
		Name: "Three property roadmap",
		Selections: domain.Selections{
			{PropertyID: "metro-unit", Quantity: 2},
			{PropertyID: "regional-house", Quantity: 1},
		},
		Profile: domain.InvestorProfile{
			DepositPool:             decimal.NewFromInt(150000),
			BorrowingCapacity:       decimal.NewFromInt(1500000),
			PortfolioValue:          decimal.Zero,
			CurrentDebt:             decimal.Zero,
			AnnualSavings:           decimal.NewFromInt(45000),
			TimelineYears:           15,
			EquityReleaseFactor:     decimal.NewFromFloat(0.5),
			ConsolidationsRemaining: 3,
		},
		GlobalFactors: domain.GlobalFactors{
			GrowthRate:   decimal.NewFromInt(5),
			InterestRate: decimal.NewFromInt(6),
		},
		PropertyTypes: []domain.PropertyType{
			{ID: "metro-unit", Title: "Metro Unit", Cost: decimal.NewFromInt(500000), DepositRequired: decimal.NewFromInt(100000)},
			{ID: "regional-house", Title: "Regional House", Cost: decimal.NewFromInt(400000), DepositRequired: decimal.NewFromInt(80000)},
		},
		PropertyDataMap: domain.PropertyDataMap{
			"Metro Unit":     {Growth: decimal.NewFromInt(6), Yield: decimal.NewFromFloat(4.5)},
			"Regional House": {Growth: decimal.NewFromInt(4), Yield: decimal.NewFromFloat(5.5)},
		},
		AvailableDeposit: decimal.NewFromInt(150000),
	}
}

// SaveRequest writes a request as YAML
func SaveRequest(req *domain.ProjectionRequest, filename string) error {
	b, err := yaml.Marshal(req)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
