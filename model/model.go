// Package model holds the in-memory representation of a parsed linear
// program: objectives, constraints and decision variables. Records are
// assembled through mutable builders while a document is read and are frozen
// once parsing finishes.
package model

// Model is the finalized result of parsing one LP document.
//
// Variables are ordered by first reference in the document; Objectives and
// Constraints are in document order.
type Model struct {
	Objectives  []Objective  `cbor:"1,keyasint"`
	Constraints []Constraint `cbor:"2,keyasint"`
	Variables   []Variable   `cbor:"3,keyasint"`
}

// VariablesOfKind returns the variables of the given kind, preserving the
// model's variable order.
func (m *Model) VariablesOfKind(kind VariableKind) []Variable {
	var r []Variable
	for _, v := range m.Variables {
		if v.Kind == kind {
			r = append(r, v)
		}
	}
	return r
}

// Variable returns the named variable and whether it exists.
func (m *Model) Variable(name string) (Variable, bool) {
	for _, v := range m.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}
