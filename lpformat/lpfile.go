// Package lpformat parses linear programs written in the textual LP format.
//
// The format is section oriented: an objective direction keyword, one or more
// objectives, a constraints section, then optional bounds, binary and general
// sections, closed by the end marker. A backslash starts a comment that runs
// to the end of the line.
//
//	f := lpformat.Read("model.lp")
//	if f.Err() != nil {
//		// counts are all zero
//	}
package lpformat

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/solverkit/lplex/logger"
	"github.com/solverkit/lplex/model"
)

// LpFile is the result of parsing one LP document. On a parse failure all
// counts are zero and Err reports the diagnostic; accessors never panic on an
// errored parse.
type LpFile struct {
	path  string
	model model.Model
	err   error
}

// Read opens and fully parses the LP file at path. The parse is synchronous;
// the returned LpFile is immutable. Errors are reported through Err and
// logged with the failing section and line; the model is then empty, so
// callers checking counts see zero objectives, variables and constraints.
func Read(path string) *LpFile {
	f := &LpFile{path: path}
	in, err := os.Open(path)
	if err != nil {
		f.err = &InputError{Section: SectionStart, Err: fmt.Errorf("%w: %w", ErrIO, err)}
		logError(path, f.err)
		return f
	}
	defer in.Close()
	m, err := parse(in)
	if err != nil {
		f.err = err
		logError(path, err)
		return f
	}
	f.model = *m
	return f
}

// parse runs the section state machine over r and assembles the model.
func parse(r io.Reader) (*model.Model, error) {
	return newParser(r).parse()
}

func logError(path string, err error) {
	log := logger.Logger()
	var ie *InputError
	if errors.As(err, &ie) {
		log.Error().Str("file", path).Stringer("section", ie.Section).Int("line", ie.Line).Msg(ie.Err.Error())
		return
	}
	log.Error().Str("file", path).Msg(err.Error())
}

// Err reports why the parse failed, nil on success.
func (f *LpFile) Err() error { return f.err }

// Path returns the path the file was read from.
func (f *LpFile) Path() string { return f.path }

// Model returns a copy of the parsed model.
func (f *LpFile) Model() model.Model { return f.model }

func (f *LpFile) NumObjectives() int { return len(f.model.Objectives) }

func (f *LpFile) NumVariables() int { return len(f.model.Variables) }

func (f *LpFile) NumConstraints() int { return len(f.model.Constraints) }

// Objective returns the i-th objective in document order.
func (f *LpFile) Objective(i int) model.Objective { return f.model.Objectives[i] }

// Constraint returns the i-th constraint in document order.
func (f *LpFile) Constraint(i int) model.Constraint { return f.model.Constraints[i] }

// ContinuousVariables returns the continuous variables in first-reference order.
func (f *LpFile) ContinuousVariables() []model.Variable {
	return f.model.VariablesOfKind(model.Continuous)
}

// IntegerVariables returns the integer variables in first-reference order.
func (f *LpFile) IntegerVariables() []model.Variable {
	return f.model.VariablesOfKind(model.Integer)
}

// BinaryVariables returns the binary variables in first-reference order.
func (f *LpFile) BinaryVariables() []model.Variable {
	return f.model.VariablesOfKind(model.Binary)
}
