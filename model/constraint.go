package model

import (
	"fmt"
)

// ConstraintSense is the relational operator of a constraint.
type ConstraintSense uint8

const (
	LE ConstraintSense = iota
	EQ
	GE
)

func (s ConstraintSense) String() string {
	switch s {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	}
	return "unknown"
}

// ParseConstraintSense maps a relational operator token to its sense. The
// strict forms < and > are treated as their closed equivalents.
func ParseConstraintSense(op string) (ConstraintSense, bool) {
	switch op {
	case "<", "<=":
		return LE, true
	case "=":
		return EQ, true
	case ">", ">=":
		return GE, true
	}
	return 0, false
}

// Constraint is one finalized linear constraint. SourceLine is the 1-based
// physical line where the constraint started, kept for diagnostics.
type Constraint struct {
	Name         string
	SourceLine   int
	Coefficients map[string]float64
	Sense        ConstraintSense
	Rhs          float64
}

// Coefficient returns the coefficient of the named variable, 0 if absent.
func (c Constraint) Coefficient(name string) float64 {
	return c.Coefficients[name]
}

// ConstraintBuilder accumulates the left-hand side of a constraint until a
// relational operator with right-hand side is found.
type ConstraintBuilder struct {
	name         string
	sourceLine   int
	coefficients map[string]float64
	sense        ConstraintSense
	rhs          float64
}

func NewConstraintBuilder(name string, sourceLine int) *ConstraintBuilder {
	return &ConstraintBuilder{
		name:         name,
		sourceLine:   sourceLine,
		coefficients: make(map[string]float64),
	}
}

func (b *ConstraintBuilder) Name() string { return b.name }

func (b *ConstraintBuilder) MergeCoefficients(m map[string]float64) *ConstraintBuilder {
	for name, coeff := range m {
		b.coefficients[name] += coeff
	}
	return b
}

func (b *ConstraintBuilder) SetSense(s ConstraintSense) *ConstraintBuilder {
	b.sense = s
	return b
}

func (b *ConstraintBuilder) SetRhs(v float64) *ConstraintBuilder {
	b.rhs = v
	return b
}

func (b *ConstraintBuilder) Build() (Constraint, error) {
	if b.sourceLine <= 0 {
		return Constraint{}, fmt.Errorf("constraint %s: expected positive source line, got %d", b.name, b.sourceLine)
	}
	if len(b.coefficients) == 0 {
		return Constraint{}, fmt.Errorf("constraint %s: expected non-empty coefficient map", b.name)
	}
	return Constraint{
		Name:         b.name,
		SourceLine:   b.sourceLine,
		Coefficients: b.coefficients,
		Sense:        b.sense,
		Rhs:          b.rhs,
	}, nil
}
