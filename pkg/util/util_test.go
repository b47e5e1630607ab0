package util

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxInt(t *testing.T) {
	assert.Equal(t, 2, MinInt(2, 7))
	assert.Equal(t, 7, MaxInt(2, 7))
	assert.Equal(t, -3, MinInt(-3, 0))
	assert.Equal(t, 5, MaxInt(5, 5))
}

func TestWrapErrorfCarriesCodeAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := WrapErrorf(cause, ErrBadParamInput, "budget %d out of range", 99)

	var wrapped *Error
	assert.ErrorAs(t, err, &wrapped)
	assert.Equal(t, ErrBadParamInput, wrapped.Code())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "budget 99 out of range")
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("first\r\nsecond"))

	line, err := ReadLine(br)
	assert.NoError(t, err)
	assert.Equal(t, "first", line)

	// last line without a trailing newline is still returned whole.
	line, err = ReadLine(br)
	assert.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = ReadLine(br)
	assert.ErrorIs(t, err, io.EOF)
}
