package lpformat

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/solverkit/lplex/logger"
	"github.com/solverkit/lplex/model"
)

// parser drives the section state machine over one document. It exclusively
// owns the mutable builders until finalize freezes them into a Model.
type parser struct {
	r       *lineReader
	log     zerolog.Logger
	section Section

	sense       model.ObjectiveSense
	vars        map[string]*model.VariableBuilder
	varOrder    []string // names in first-reference order
	objectives  []model.Objective
	constraints []model.Constraint
}

func newParser(r io.Reader) *parser {
	return &parser{
		r:       newLineReader(r),
		log:     logger.Logger(),
		section: SectionStart,
		vars:    make(map[string]*model.VariableBuilder),
	}
}

// parse consumes the whole document and assembles the model. On the first
// error the remaining input is abandoned and no model is returned.
func (p *parser) parse() (*model.Model, error) {
	if err := p.readDirection(); err != nil {
		return nil, err
	}
	pending, err := p.readObjectives()
	if err != nil {
		return nil, err
	}
	if err := p.readConstraints(pending); err != nil {
		return nil, err
	}
	if err := p.readTrailerSections(); err != nil {
		return nil, err
	}
	return p.finalize()
}

// fail wraps err with the current section and line for diagnostics.
func (p *parser) fail(err error) error {
	return &InputError{Section: p.section, Line: p.r.line, Err: err}
}

// requireLine returns the next logical line, failing when the stream ends
// before the end marker was seen.
func (p *parser) requireLine() (string, error) {
	line, ok, err := p.r.next()
	if err != nil {
		return "", p.fail(fmt.Errorf("%w: %w", ErrIO, err))
	}
	if !ok {
		return "", p.fail(ErrIncompleteInput)
	}
	return line, nil
}

// registerVariable creates a builder with default bounds the first time a
// name is referenced in a linear combination.
func (p *parser) registerVariable(name string) {
	if _, ok := p.vars[name]; ok {
		return
	}
	p.vars[name] = model.NewVariableBuilder(name)
	p.varOrder = append(p.varOrder, name)
}

// lookupVariable returns the builder of an already-registered variable.
func (p *parser) lookupVariable(name string) (*model.VariableBuilder, error) {
	vb, ok := p.vars[name]
	if !ok {
		return nil, p.fail(fmt.Errorf("%w: %q", ErrUnknownVariable, name))
	}
	return vb, nil
}

// name validates a constraint/objective name prefix against the name grammar.
func (p *parser) name(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := checkName(name); err != nil {
		return "", p.fail(err)
	}
	return name, nil
}

func (p *parser) switchSection(next Section) {
	p.log.Debug().Stringer("section", next).Msg("switching section")
	p.section = next
}

// readDirection skips blank lines until the objective direction keyword.
func (p *parser) readDirection() error {
	if p.section != SectionStart {
		return p.fail(fmt.Errorf("%w: expected %s, found %s", ErrSectionOrder, SectionStart, p.section))
	}
	for {
		line, err := p.requireLine()
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		p.switchSection(SectionObjective)
		sense, ok := model.ParseObjectiveSense(line)
		if !ok {
			return p.fail(fmt.Errorf("%w: %q", ErrUnrecognizedDirection, line))
		}
		p.sense = sense
		return nil
	}
}

// readObjectives accumulates one or more named objectives until the
// constraints section begins, either through an explicit keyword or through
// the first line carrying a relational operator. In the latter case that line
// belongs to the constraints body and is returned for reprocessing.
func (p *parser) readObjectives() (pending string, err error) {
	if p.section != SectionObjective {
		return "", p.fail(fmt.Errorf("%w: expected %s, found %s", ErrSectionOrder, SectionObjective, p.section))
	}
	var cur *model.ObjectiveBuilder
	push := func() error {
		if cur == nil {
			return nil
		}
		o, err := cur.Build()
		if err != nil {
			return p.fail(err)
		}
		p.objectives = append(p.objectives, o)
		cur = nil
		return nil
	}
	for {
		line, err := p.requireLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			continue
		}
		if constraintsKeyword(line) {
			if cur == nil {
				// no objective content at all
				cur = model.NewObjectiveBuilder(p.sense)
			}
			if err := push(); err != nil {
				return "", err
			}
			p.switchSection(SectionConstraints)
			return "", nil
		}
		// a relational operator cannot occur in an objective: the constraints
		// body has begun without its keyword, and this line is its first line
		if sensePattern.MatchString(line) {
			if cur == nil {
				cur = model.NewObjectiveBuilder(p.sense)
			}
			if err := push(); err != nil {
				return "", err
			}
			p.switchSection(SectionConstraints)
			return line, nil
		}
		if i := strings.IndexByte(line, ':'); i != -1 {
			name, err := p.name(line[:i])
			if err != nil {
				return "", err
			}
			p.log.Trace().Str("name", name).Msg("found objective name")
			if cur != nil && cur.Name() == "" {
				cur.SetName(name)
			} else {
				if err := push(); err != nil {
					return "", err
				}
				cur = model.NewObjectiveBuilder(p.sense).SetName(name)
			}
			line = strings.TrimSpace(line[i+1:])
		}
		if cur == nil {
			cur = model.NewObjectiveBuilder(p.sense)
		}
		if line == "" {
			continue
		}
		p.log.Trace().Int("line", p.r.line).Str("text", line).Msg("parsing objective expression")
		m, err := parseLinComb(line, p.registerVariable)
		if err != nil {
			return "", p.fail(err)
		}
		cur.MergeCoefficients(m)
	}
}

// readConstraints reads constraint bodies until one of the trailing section
// keywords. A constraint spans physical lines until a relational operator
// with right-hand side finalizes it. pending, when non-empty, is a line
// already consumed from the objective section that belongs to this body.
func (p *parser) readConstraints(pending string) error {
	if p.section != SectionConstraints {
		return p.fail(fmt.Errorf("%w: expected %s, found %s", ErrSectionOrder, SectionConstraints, p.section))
	}
	var cur *model.ConstraintBuilder
	finish := func() error {
		c, err := cur.Build()
		if err != nil {
			return p.fail(err)
		}
		p.constraints = append(p.constraints, c)
		cur = nil
		return nil
	}
	consume := func(line string) error {
		// a colon introduces a constraint name only when it precedes any
		// relational operator
		if i := strings.IndexByte(line, ':'); i != -1 {
			if loc := sensePattern.FindStringIndex(line); loc == nil || i < loc[0] {
				name, err := p.name(line[:i])
				if err != nil {
					return err
				}
				p.log.Trace().Str("name", name).Msg("found constraint name")
				cur = model.NewConstraintBuilder(name, p.r.line)
				line = strings.TrimSpace(line[i+1:])
				if line == "" {
					return nil
				}
			}
		}
		cl, err := classifyConstraintLine(line)
		if err != nil {
			return p.fail(err)
		}
		if cur == nil {
			cur = model.NewConstraintBuilder("", p.r.line)
		}
		switch cl.class {
		case classExpression:
			lhs, err := parseLinComb(cl.lhs, p.registerVariable)
			if err != nil {
				return p.fail(err)
			}
			cur.MergeCoefficients(lhs)
		case classSenseOnly:
			cur.SetSense(cl.sense).SetRhs(cl.rhs)
			return finish()
		case classExpressionAndSense:
			lhs, err := parseLinComb(cl.lhs, p.registerVariable)
			if err != nil {
				return p.fail(err)
			}
			cur.MergeCoefficients(lhs)
			cur.SetSense(cl.sense).SetRhs(cl.rhs)
			return finish()
		}
		return nil
	}
	if pending != "" {
		if err := consume(pending); err != nil {
			return err
		}
	}
	for {
		line, err := p.requireLine()
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if sec, ok := trailerKeyword(line); ok {
			p.switchSection(sec)
			return nil
		}
		if err := consume(line); err != nil {
			return err
		}
	}
}

// readTrailerSections handles the optional bounds/binary/general sections, in
// any order and any subset, until the end marker.
func (p *parser) readTrailerSections() error {
	for p.section != SectionEnd {
		line, err := p.requireLine()
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if sec, ok := trailerKeyword(line); ok {
			p.switchSection(sec)
			continue
		}
		switch p.section {
		case SectionBounds:
			p.log.Trace().Int("line", p.r.line).Str("text", line).Msg("parsing bound")
			if err := p.parseBound(line); err != nil {
				return err
			}
		case SectionBinary:
			if err := p.markVariables(line, model.Binary); err != nil {
				return err
			}
		case SectionGeneral:
			if err := p.markVariables(line, model.Integer); err != nil {
				return err
			}
		default:
			return p.fail(fmt.Errorf("%w: unexpected content in section %s", ErrSectionOrder, p.section))
		}
	}
	return nil
}

// markVariables sets the kind of every whitespace-separated variable name on
// a binary/general section line.
func (p *parser) markVariables(line string, kind model.VariableKind) error {
	for _, tok := range strings.Fields(line) {
		vb, err := p.lookupVariable(tok)
		if err != nil {
			return err
		}
		vb.SetKind(kind)
	}
	return nil
}

// finalize freezes all variable builders, validating bound ordering and the
// remaining record invariants.
func (p *parser) finalize() (*model.Model, error) {
	m := &model.Model{
		Objectives:  p.objectives,
		Constraints: p.constraints,
		Variables:   make([]model.Variable, 0, len(p.varOrder)),
	}
	for _, name := range p.varOrder {
		v, err := p.vars[name].Build()
		if err != nil {
			return nil, p.fail(err)
		}
		m.Variables = append(m.Variables, v)
	}
	return m, nil
}
