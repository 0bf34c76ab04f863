package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testModel() Model {
	return Model{
		Objectives: []Objective{
			{Name: "obj", Sense: Max, Coefficients: map[string]float64{"x": 2, "y": 3}},
		},
		Constraints: []Constraint{
			{Name: "c1", SourceLine: 3, Coefficients: map[string]float64{"x": 1, "y": 1}, Sense: LE, Rhs: 10},
		},
		Variables: []Variable{
			{Name: "x", Kind: Continuous, Lb: 0, Ub: 4},
			{Name: "y", Kind: Integer, Lb: 0, Ub: math.Inf(1)},
		},
	}
}

func TestModelSerializationRoundTrip(t *testing.T) {
	assert := require.New(t)

	in := testModel()
	data, err := in.ToBytes()
	assert.NoError(err)

	var out Model
	assert.NoError(out.FromBytes(data))

	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("model mismatch (-in +out):\n%s", diff)
	}
}

func TestModelSerializationIsDeterministic(t *testing.T) {
	assert := require.New(t)

	in := testModel()
	a, err := in.ToBytes()
	assert.NoError(err)
	b, err := in.ToBytes()
	assert.NoError(err)
	assert.Equal(a, b)
}

func TestModelFromBytesRejectsGarbage(t *testing.T) {
	assert := require.New(t)

	var m Model
	assert.Error(m.FromBytes([]byte("not cbor")))
}
