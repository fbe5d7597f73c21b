package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowErrorMessage(t *testing.T) {
	err := InvalidInput("file name must be an integer: %s", "abc.jpg")
	assert.Equal(t, "[invalid_input] file name must be an integer: abc.jpg", err.Error())

	err = IOError("build/7.jpg", errors.New("permission denied"))
	assert.Equal(t, "[io_error] build/7.jpg: permission denied", err.Error())
}

func TestKindOfUnwrapsChains(t *testing.T) {
	inner := InvalidInput("date must be a Monday, Wednesday, or Friday")
	wrapped := fmt.Errorf("post failed: %w", inner)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInvalidInput, kind)
	assert.True(t, IsInvalidInput(wrapped))
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsInvalidInput(errors.New("plain")))
	assert.False(t, IsInvalidInput(nil))
}

func TestTemplateErrorKind(t *testing.T) {
	kind, ok := KindOf(TemplateError(errors.New("bad syntax")))
	require.True(t, ok)
	assert.Equal(t, KindTemplate, kind)
}
