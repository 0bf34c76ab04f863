package lpformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineReader(t *testing.T) {
	assert := require.New(t)

	r := newLineReader(strings.NewReader("  max  \nobj: x \\ maximize x\n\\ whole line comment\n"))

	line, ok, err := r.next()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("max", line)
	assert.Equal(1, r.line)

	line, ok, err = r.next()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("obj: x", line)
	assert.Equal(2, r.line)

	line, ok, err = r.next()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("", line)
	assert.Equal(3, r.line)

	_, ok, err = r.next()
	assert.NoError(err)
	assert.False(ok)
}

func TestLineReaderWithoutTrailingNewline(t *testing.T) {
	assert := require.New(t)

	r := newLineReader(strings.NewReader("end"))

	line, ok, err := r.next()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("end", line)

	_, ok, err = r.next()
	assert.NoError(err)
	assert.False(ok)
}

func TestLineReaderHasNoLengthLimit(t *testing.T) {
	assert := require.New(t)

	// well beyond bufio.MaxScanTokenSize
	long := "c1: x" + strings.Repeat(" + x", 40_000)
	r := newLineReader(strings.NewReader(long + "\n<= 5\n"))

	line, ok, err := r.next()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(long, line)
	assert.Equal(1, r.line)

	line, ok, err = r.next()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal("<= 5", line)
}
