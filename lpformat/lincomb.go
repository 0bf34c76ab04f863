package lpformat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Variable, constraint and objective names: letters and a fixed set of
// punctuation first, digits and '.' additionally allowed afterwards.
var namePattern = regexp.MustCompile(`^[A-Za-z!"#$%&()/,;?'{}|~_][A-Za-z0-9!"#$%&()/,;?'{}|~_.]*$`)

func checkName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

type sign int8

const (
	signUndef sign = 0
	signPlus  sign = 1
	signMinus sign = -1
)

// lincombTokens splits a linear-combination expression on + and - while
// preserving them as tokens. A sign directly following the exponent marker of
// a numeric coefficient prefix stays inside its token, so "2.5e-1 x" is the
// single addend token "2.5e-1 x".
func lincombTokens(expr string) []string {
	var tokens []string
	var cur strings.Builder
	contentSeen := false // non-space characters in cur
	inCoeff := true      // still scanning the numeric coefficient prefix
	seenExp := false
	prevExp := false // last significant character was the exponent marker

	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			tokens = append(tokens, t)
		}
		cur.Reset()
		contentSeen, inCoeff, seenExp, prevExp = false, true, false, false
	}

	for _, c := range expr {
		if c == '+' || c == '-' {
			if inCoeff && prevExp {
				cur.WriteRune(c)
				prevExp = false
				continue
			}
			flush()
			tokens = append(tokens, string(c))
			continue
		}
		cur.WriteRune(c)
		if unicode.IsSpace(c) {
			if contentSeen {
				inCoeff = false
			}
			prevExp = false
			continue
		}
		contentSeen = true
		if !inCoeff {
			continue
		}
		switch {
		case c >= '0' && c <= '9' || c == '.':
			prevExp = false
		case c == 'e' || c == 'E':
			if seenExp {
				inCoeff, prevExp = false, false
			} else {
				seenExp, prevExp = true, true
			}
		default:
			inCoeff, prevExp = false, false
		}
	}
	flush()
	return tokens
}

// addendSplitIndex returns the index where the numeric coefficient prefix of
// an addend ends and the variable name begins. The first e/E starts the
// exponent and may be followed by one sign; a second e/E or any other
// non-numeric character ends the prefix. Returns -1 when the whole token is
// numeric, i.e. no variable name follows.
func addendSplitIndex(expr string) int {
	seenExp := false
	prevExp := false
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			prevExp = false
		case c == 'e' || c == 'E':
			if seenExp {
				return i
			}
			seenExp, prevExp = true, true
		case (c == '+' || c == '-') && prevExp:
			prevExp = false
		default:
			return i
		}
	}
	return -1
}

// parseAddend splits one addend token into its coefficient and variable name.
// A missing coefficient defaults to 1.
func parseAddend(token string) (float64, string, error) {
	i := addendSplitIndex(token)
	if i == -1 {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidAddend, token)
	}
	coeff := 1.0
	if i > 0 {
		c, err := parseValue(strings.TrimSpace(token[:i]))
		if err != nil {
			return 0, "", err
		}
		coeff = c
	}
	name := strings.TrimSpace(token[i:])
	if err := checkName(name); err != nil {
		return 0, "", err
	}
	return coeff, name, nil
}

// reduceLinComb folds a token stream into a coefficient map. Every addend
// must be preceded by an explicit sign except the first, whose sign defaults
// to plus. Coefficients of repeated variables are summed. register is called
// once per addend with the variable name, before the coefficient is recorded.
func reduceLinComb(tokens []string, register func(name string)) (map[string]float64, error) {
	m := make(map[string]float64)
	s := signPlus
	for _, tok := range tokens {
		switch tok {
		case "+":
			s = signPlus
		case "-":
			s = signMinus
		default:
			if s == signUndef {
				return nil, fmt.Errorf("%w: before %q", ErrMissingSign, tok)
			}
			coeff, name, err := parseAddend(tok)
			if err != nil {
				return nil, err
			}
			if register != nil {
				register(name)
			}
			m[name] += float64(s) * coeff
			s = signUndef
		}
	}
	return m, nil
}

// parseLinComb parses a linear-combination expression such as
// "3 x - 2.5e1 y + z" into a map from variable name to summed coefficient.
func parseLinComb(expr string, register func(name string)) (map[string]float64, error) {
	return reduceLinComb(lincombTokens(expr), register)
}
