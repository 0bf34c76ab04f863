package lpformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseValue parses a numeric or infinity literal, shared by coefficient,
// right-hand-side and bound parsing.
func parseValue(token string) (float64, error) {
	switch strings.ToLower(token) {
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return v, nil
}
