package calculation

import (
	"errors"
	"fmt"

	"github.com/propgo/roadmap-engine/internal/domain"
)

// MaxTimelineYears bounds the forward search
const MaxTimelineYears = 100

// ErrInvalidRequest marks a request whose shape cannot be projected
var ErrInvalidRequest = errors.New("invalid projection request")

// Projector turns a request into a yearly purchase roadmap
type Projector struct {
	Rules  Rules
	Debug  bool // Log every affordability check
	Logger Logger
}

// NewProjector creates a projector with the default rules
func NewProjector() *Projector {
	return NewProjectorWithRules(DefaultRules())
}

// NewProjectorWithRules creates a projector with custom lending rules
func NewProjectorWithRules(rules Rules) *Projector {
	return &Projector{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (p *Projector) SetLogger(l Logger) {
	if l == nil {
		p.Logger = NopLogger{}
		return
	}
	p.Logger = l
}

// Project runs a full simulation. Identical requests produce identical projections.
func (p *Projector) Project(req *domain.ProjectionRequest) (*domain.Projection, error) {
	if err := ValidateShape(req); err != nil {
		return nil, err
	}
	sim := p.NewSimulation(req)
	return sim.Run(), nil
}

// ValidateShape rejects requests the simulation cannot iterate over.
// Unknown property ids and missing property data are not errors.
func ValidateShape(req *domain.ProjectionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}
	years := req.Profile.TimelineYears
	if years < 1 || years > MaxTimelineYears {
		return fmt.Errorf("%w: timeline years must be between 1 and %d, got %d", ErrInvalidRequest, MaxTimelineYears, years)
	}
	for _, sel := range req.Selections {
		if sel.Quantity < 0 {
			return fmt.Errorf("%w: quantity for %q cannot be negative", ErrInvalidRequest, sel.PropertyID)
		}
	}
	return nil
}
