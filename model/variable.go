package model

import (
	"errors"
	"fmt"
	"math"
)

// VariableKind describes the domain of a decision variable.
type VariableKind uint8

const (
	Continuous VariableKind = iota
	Integer
	Binary
)

func (k VariableKind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	}
	return "unknown"
}

// Variable is a decision variable with finalized bounds. Instances are
// produced by VariableBuilder.Build and are not mutated afterwards.
type Variable struct {
	Name string
	Kind VariableKind
	Lb   float64
	Ub   float64
}

// VariableBuilder accumulates bounds and kind for a variable while the
// document is being read. Defaults follow the LP format convention:
// continuous, lower bound 0, no upper bound.
type VariableBuilder struct {
	name string
	kind VariableKind
	lb   float64
	ub   float64
}

func NewVariableBuilder(name string) *VariableBuilder {
	return &VariableBuilder{
		name: name,
		kind: Continuous,
		lb:   0,
		ub:   math.Inf(1),
	}
}

func (b *VariableBuilder) Name() string { return b.name }

func (b *VariableBuilder) SetKind(k VariableKind) *VariableBuilder {
	b.kind = k
	return b
}

func (b *VariableBuilder) SetLb(v float64) *VariableBuilder {
	b.lb = v
	return b
}

func (b *VariableBuilder) SetUb(v float64) *VariableBuilder {
	b.ub = v
	return b
}

// Build freezes the builder into a Variable. A binary variable has its bounds
// clamped to [0,1] before the bound ordering is checked.
func (b *VariableBuilder) Build() (Variable, error) {
	if b.name == "" {
		return Variable{}, errors.New("expected non-blank variable name")
	}
	lb, ub := b.lb, b.ub
	if b.kind == Binary {
		if lb < 0 {
			lb = 0
		}
		if ub > 1 {
			ub = 1
		}
	}
	if lb > ub {
		return Variable{}, fmt.Errorf("variable %s: lower bound %g exceeds upper bound %g", b.name, lb, ub)
	}
	return Variable{Name: b.name, Kind: b.kind, Lb: lb, Ub: ub}, nil
}
