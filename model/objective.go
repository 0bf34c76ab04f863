package model

import (
	"errors"
	"strings"
)

// ObjectiveSense is the optimization direction shared by all objectives of a
// document.
type ObjectiveSense uint8

const (
	SenseUndefined ObjectiveSense = iota
	Max
	Min
)

func (s ObjectiveSense) String() string {
	switch s {
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return "undefined"
}

// ParseObjectiveSense recognizes the case-insensitive direction keywords of
// the LP format.
func ParseObjectiveSense(keyword string) (ObjectiveSense, bool) {
	switch strings.ToLower(keyword) {
	case "max", "maximize", "maximise", "maximum":
		return Max, true
	case "min", "minimize", "minimise", "minimum":
		return Min, true
	}
	return SenseUndefined, false
}

// Objective is one finalized objective function. Coefficients maps variable
// name to the summed coefficient of that variable; an empty map is legal and
// represents the zero objective.
type Objective struct {
	Name         string
	Sense        ObjectiveSense
	Coefficients map[string]float64
}

// Coefficient returns the coefficient of the named variable, 0 if absent.
func (o Objective) Coefficient(name string) float64 {
	return o.Coefficients[name]
}

// ObjectiveBuilder accumulates coefficients for one objective across physical
// lines. Duplicate variable mentions are summed.
type ObjectiveBuilder struct {
	name         string
	sense        ObjectiveSense
	coefficients map[string]float64
}

func NewObjectiveBuilder(sense ObjectiveSense) *ObjectiveBuilder {
	return &ObjectiveBuilder{
		sense:        sense,
		coefficients: make(map[string]float64),
	}
}

func (b *ObjectiveBuilder) Name() string { return b.name }

// Empty reports whether neither a name nor a coefficient has been recorded.
func (b *ObjectiveBuilder) Empty() bool {
	return b.name == "" && len(b.coefficients) == 0
}

func (b *ObjectiveBuilder) SetName(name string) *ObjectiveBuilder {
	b.name = name
	return b
}

func (b *ObjectiveBuilder) MergeCoefficients(m map[string]float64) *ObjectiveBuilder {
	for name, coeff := range m {
		b.coefficients[name] += coeff
	}
	return b
}

func (b *ObjectiveBuilder) Build() (Objective, error) {
	if strings.TrimSpace(b.name) == "" {
		return Objective{}, errors.New("expected non-blank objective name")
	}
	// coefficients may be empty to allow the zero objective
	return Objective{Name: b.name, Sense: b.sense, Coefficients: b.coefficients}, nil
}
