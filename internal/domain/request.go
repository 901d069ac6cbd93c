package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRequest is the complete input bundle for one projection run
type ProjectionRequest struct {
	Name             string          `yaml:"name,omitempty" json:"name,omitempty"`
	Selections       Selections      `yaml:"selections" json:"selections"`
	Profile          InvestorProfile `yaml:"profile" json:"profile"`
	GlobalFactors    GlobalFactors   `yaml:"global_factors" json:"globalFactors"`
	PropertyTypes    []PropertyType  `yaml:"property_types" json:"propertyTypes"`
	PropertyDataMap  PropertyDataMap `yaml:"property_data" json:"propertyDataMap"`
	AvailableDeposit decimal.Decimal `yaml:"available_deposit" json:"availableDeposit"`
}

// FindPropertyType looks up a catalog entry by id
func (r *ProjectionRequest) FindPropertyType(id string) (PropertyType, bool) {
	for _, pt := range r.PropertyTypes {
		if pt.ID == id {
			return pt, true
		}
	}
	return PropertyType{}, false
}

// ProjectionResponse is the reply to a request: a projection or an error message
type ProjectionResponse struct {
	RequestID  string      `json:"requestId"`
	Cached     bool        `json:"cached"`
	Projection *Projection `json:"projection,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// OK reports whether the response carries a projection
func (r *ProjectionResponse) OK() bool {
	return r.Error == "" && r.Projection != nil
}
