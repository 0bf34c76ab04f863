package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseObjectiveSense(t *testing.T) {
	assert := require.New(t)

	for _, kw := range []string{"max", "MAX", "Maximize", "maximise", "maximum"} {
		s, ok := ParseObjectiveSense(kw)
		assert.True(ok, kw)
		assert.Equal(Max, s, kw)
	}
	for _, kw := range []string{"min", "Min", "minimize", "MINIMISE", "minimum"} {
		s, ok := ParseObjectiveSense(kw)
		assert.True(ok, kw)
		assert.Equal(Min, s, kw)
	}
	_, ok := ParseObjectiveSense("maximal")
	assert.False(ok)
}

func TestObjectiveBuilderSumsDuplicates(t *testing.T) {
	assert := require.New(t)

	b := NewObjectiveBuilder(Max).SetName("obj")
	b.MergeCoefficients(map[string]float64{"x": 2, "y": 3})
	b.MergeCoefficients(map[string]float64{"x": -0.5})
	o, err := b.Build()
	assert.NoError(err)
	assert.Equal(1.5, o.Coefficient("x"))
	assert.Equal(3., o.Coefficient("y"))
	assert.Equal(0., o.Coefficient("unknown"))
}

func TestObjectiveBuilderRejectsBlankName(t *testing.T) {
	assert := require.New(t)

	_, err := NewObjectiveBuilder(Min).Build()
	assert.Error(err)
}

func TestObjectiveBuilderAllowsZeroObjective(t *testing.T) {
	assert := require.New(t)

	o, err := NewObjectiveBuilder(Min).SetName("empty").Build()
	assert.NoError(err)
	assert.Empty(o.Coefficients)
}
