package lpformat

import (
	"fmt"
	"math"
	"strings"
)

// parseBound interprets one bounds-section line. Dispatch is on the number of
// segments produced by splitting on "<=":
//
//	1 segment:  "x = 5" equality fix, or "x free"
//	2 segments: "x <= 5" upper bound, or "5 <= x" lower bound
//	3 segments: "0 <= x <= 5" two-sided range
//
// Orientation of the one-sided form is decided by which side names an
// already-registered variable.
func (p *parser) parseBound(line string) error {
	segs := strings.Split(line, "<=")
	switch len(segs) {
	case 1:
		if eq := strings.Split(line, "="); len(eq) > 1 {
			vb, err := p.lookupVariable(strings.TrimSpace(eq[0]))
			if err != nil {
				return err
			}
			v, err := parseValue(strings.TrimSpace(eq[1]))
			if err != nil {
				return p.fail(err)
			}
			vb.SetLb(v).SetUb(v)
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || !strings.EqualFold(fields[1], "free") {
			return p.fail(fmt.Errorf("%w: expected free variable expression, found %q", ErrMalformedBound, line))
		}
		vb, err := p.lookupVariable(fields[0])
		if err != nil {
			return err
		}
		vb.SetLb(math.Inf(-1)).SetUb(math.Inf(1))
		return nil
	case 2:
		first := strings.TrimSpace(segs[0])
		second := strings.TrimSpace(segs[1])
		vbFirst, okFirst := p.vars[first]
		vbSecond, okSecond := p.vars[second]
		switch {
		case okFirst && okSecond:
			return p.fail(fmt.Errorf("%w: both sides of %q name variables", ErrMalformedBound, line))
		case okFirst:
			v, err := parseValue(second)
			if err != nil {
				return p.fail(err)
			}
			vbFirst.SetUb(v)
		case okSecond:
			v, err := parseValue(first)
			if err != nil {
				return p.fail(err)
			}
			vbSecond.SetLb(v)
		default:
			// reads as "value <= variable" with an unknown variable
			return p.fail(fmt.Errorf("%w: %q", ErrUnknownVariable, second))
		}
		return nil
	case 3:
		vb, err := p.lookupVariable(strings.TrimSpace(segs[1]))
		if err != nil {
			return err
		}
		lb, err := parseValue(strings.TrimSpace(segs[0]))
		if err != nil {
			return p.fail(err)
		}
		ub, err := parseValue(strings.TrimSpace(segs[2]))
		if err != nil {
			return p.fail(err)
		}
		vb.SetLb(lb).SetUb(ub)
		return nil
	default:
		return p.fail(fmt.Errorf("%w: %q", ErrUnknownBoundFormat, line))
	}
}
