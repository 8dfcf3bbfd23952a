package texide

import (
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestRenderErrorIncludesLocationAndCaret(t *testing.T) {
	line := &Line{Content: "A@B\n", LineNumber: 3, FileName: "in.tex"}
	src := &Source{Line: line, Column: 1}

	err := NewInvalidTokenError(src)
	rendered := RenderError(err)

	assert.Contains(t, rendered, "in.tex:3:1")
	assert.Contains(t, rendered, "A@B")
	assert.True(t, strings.Contains(rendered, "^"))
}

func TestRenderErrorWithNotes(t *testing.T) {
	err := NewUnexpectedEndOfInputError()
	rendered := RenderError(err, "did you forget a closing \\fi?")

	assert.Contains(t, rendered, "unexpected end of input")
	assert.Contains(t, rendered, "did you forget a closing")
}

func TestRenderErrorWithoutSourceOmitsLocation(t *testing.T) {
	err := NewScopeUnderflowError()
	rendered := RenderError(err)

	assert.NotContains(t, rendered, ">")
	assert.Contains(t, rendered, "end_scope called with no open scope")
}

func TestErrorTaxonomyUnwraps(t *testing.T) {
	underlying := assert.AnError
	err := NewIOError(underlying)

	ioErr, ok := errors.Cause(err).(*IOError)
	assert.True(t, ok)
	assert.Equal(t, underlying, ioErr.Unwrap())
}
