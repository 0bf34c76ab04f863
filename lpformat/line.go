package lpformat

import (
	"bufio"
	"io"
	"strings"
)

// lineReader supplies logical lines: raw text with the trailing comment
// stripped and surrounding whitespace trimmed. It tracks a 1-based line
// counter used in all diagnostics. Lines have no length limit.
type lineReader struct {
	r    *bufio.Reader
	line int
	done bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next logical line. ok is false when the input is
// exhausted; err is non-nil only on an underlying stream failure. Blank lines
// are returned as-is; callers decide whether to skip them.
func (r *lineReader) next() (line string, ok bool, err error) {
	if r.done {
		return "", false, nil
	}
	raw, err := r.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", false, err
		}
		r.done = true
		if raw == "" {
			return "", false, nil
		}
	}
	r.line++
	// everything from the first backslash onward is a comment
	if i := strings.IndexByte(raw, '\\'); i != -1 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw), true, nil
}
