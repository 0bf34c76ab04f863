package lpformat

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestLincombTokens(t *testing.T) {
	assert := require.New(t)

	cases := map[string][]string{
		"3 x - 2.5e1 y + z": {"3 x", "-", "2.5e1 y", "+", "z"},
		"x-y":               {"x", "-", "y"},
		"+ x":               {"+", "x"},
		"":                  nil,
	}
	for expr, want := range cases {
		assert.Equal(want, lincombTokens(expr), expr)
	}
}

func TestLincombTokensKeepsExponentSign(t *testing.T) {
	assert := require.New(t)

	assert.Equal([]string{"2.5e-1 x", "+", "3 y"}, lincombTokens("2.5e-1 x + 3 y"))
	assert.Equal([]string{"2e+3 x", "-", "y"}, lincombTokens("2e+3 x - y"))
	// a sign after a spelled-out variable is a real operator, even when the
	// name ends in e
	assert.Equal([]string{"xe", "-", "3 y"}, lincombTokens("xe - 3 y"))
}

func TestParseAddend(t *testing.T) {
	assert := require.New(t)

	coeff, name, err := parseAddend("3 x")
	assert.NoError(err)
	assert.Equal(3., coeff)
	assert.Equal("x", name)

	coeff, name, err = parseAddend("x2")
	assert.NoError(err)
	assert.Equal(1., coeff)
	assert.Equal("x2", name)

	coeff, name, err = parseAddend("2e-3 x")
	assert.NoError(err)
	assert.Equal(0.002, coeff)
	assert.Equal("x", name)

	coeff, name, err = parseAddend("2.5e1y")
	assert.NoError(err)
	assert.Equal(25., coeff)
	assert.Equal("y", name)
}

func TestParseAddendErrors(t *testing.T) {
	assert := require.New(t)

	// purely numeric token: no variable name follows
	_, _, err := parseAddend("123")
	assert.ErrorIs(err, ErrInvalidAddend)

	_, _, err = parseAddend("3 [x]")
	assert.ErrorIs(err, ErrInvalidName)
}

func TestParseLinCombAccumulates(t *testing.T) {
	assert := require.New(t)

	m, err := parseLinComb("x + x", nil)
	assert.NoError(err)
	assert.Equal(map[string]float64{"x": 2}, m)

	m, err = parseLinComb("3 x - 1 x", nil)
	assert.NoError(err)
	assert.Equal(map[string]float64{"x": 2}, m)
}

func TestParseLinCombRegistersVariables(t *testing.T) {
	assert := require.New(t)

	var seen []string
	_, err := parseLinComb("2 x - 3 y + z", func(name string) { seen = append(seen, name) })
	assert.NoError(err)
	assert.Equal([]string{"x", "y", "z"}, seen)
}

func TestReduceLinCombMissingSign(t *testing.T) {
	assert := require.New(t)

	_, err := reduceLinComb([]string{"x", "y"}, nil)
	assert.ErrorIs(err, ErrMissingSign)
}

func TestLinCombSumProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("repeated mentions of one variable sum their coefficients", prop.ForAll(
		func(coeffs []float64) bool {
			var sb strings.Builder
			var want float64
			for i, c := range coeffs {
				abs := c
				op := "+"
				if c < 0 {
					abs = -c
					op = "-"
				}
				if i > 0 || op == "-" {
					fmt.Fprintf(&sb, " %s ", op)
				}
				sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
				sb.WriteString(" x")
				want += c
			}
			m, err := parseLinComb(sb.String(), nil)
			if err != nil {
				return false
			}
			return m["x"] == want
		},
		gen.SliceOfN(8, gen.Float64Range(-1e6, 1e6)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
