package lpformat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/solverkit/lplex/model"
)

var sensePattern = regexp.MustCompile(`[<>=]{1,2}`)

// lineClass tags the three shapes a constraint body line can take.
type lineClass uint8

const (
	// classExpression: no relational operator, the whole line is a partial
	// left-hand side.
	classExpression lineClass = iota
	// classSenseOnly: operator and right-hand side only, the left-hand side
	// was completed on previous lines.
	classSenseOnly
	// classExpressionAndSense: left-hand side, operator and right-hand side
	// on one line.
	classExpressionAndSense
)

type constraintLine struct {
	class lineClass
	lhs   string
	sense model.ConstraintSense
	rhs   float64
}

// classifyConstraintLine inspects one constraint body line (constraint-name
// prefix already removed) for a relational operator and splits it around the
// first one found.
func classifyConstraintLine(line string) (constraintLine, error) {
	op := sensePattern.FindString(line)
	if op == "" {
		return constraintLine{class: classExpression, lhs: line}, nil
	}
	sense, ok := model.ParseConstraintSense(op)
	if !ok {
		return constraintLine{}, fmt.Errorf("%w: unrecognized operator %q", ErrMalformedConstraint, op)
	}
	var parts []string
	for _, p := range strings.Split(line, op) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	switch len(parts) {
	case 1:
		rhs, err := parseValue(parts[0])
		if err != nil {
			return constraintLine{}, err
		}
		return constraintLine{class: classSenseOnly, sense: sense, rhs: rhs}, nil
	case 2:
		rhs, err := parseValue(parts[1])
		if err != nil {
			return constraintLine{}, err
		}
		return constraintLine{class: classExpressionAndSense, lhs: parts[0], sense: sense, rhs: rhs}, nil
	default:
		return constraintLine{}, fmt.Errorf("%w: %q", ErrMalformedConstraint, line)
	}
}
