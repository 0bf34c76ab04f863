package lpformat

import "strings"

// Section is the current state of the document traversal. Sections appear in
// a forced linear order; bounds, binary and general are optional and may
// appear in any order between the constraints body and the end marker.
type Section uint8

const (
	SectionStart Section = iota
	SectionObjective
	SectionConstraints
	SectionBounds
	SectionBinary
	SectionGeneral
	SectionEnd
)

func (s Section) String() string {
	switch s {
	case SectionStart:
		return "start"
	case SectionObjective:
		return "objective"
	case SectionConstraints:
		return "constraints"
	case SectionBounds:
		return "bounds"
	case SectionBinary:
		return "binary"
	case SectionGeneral:
		return "general"
	case SectionEnd:
		return "end"
	}
	return "unknown"
}

// constraintsKeyword reports whether the line opens the constraints section.
func constraintsKeyword(line string) bool {
	switch strings.ToLower(line) {
	case "subject to", "such that", "s.t.", "st.", "st":
		return true
	}
	return false
}

// trailerKeyword maps a line to one of the sections that may follow the
// constraints body.
func trailerKeyword(line string) (Section, bool) {
	switch strings.ToLower(line) {
	case "bounds", "bound":
		return SectionBounds, true
	case "binary", "binaries", "bin":
		return SectionBinary, true
	case "generals", "general", "gen":
		return SectionGeneral, true
	case "end":
		return SectionEnd, true
	}
	return 0, false
}
