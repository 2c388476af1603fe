package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/doze/internal/apperr"
)

var (
	errSentinel = &apperr.Error{Message: "session %d not found"}
	errOther    = &apperr.Error{Message: "something else"}
)

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSentinel.Fmt(42)

	assert.Equal(t, "session 42 not found", err.Error())
	assert.ErrorIs(t, err, errSentinel)
	assert.NotErrorIs(t, err, errOther)
	assert.Equal(t, "session %d not found", errSentinel.Message)
}

func TestWrapExposesCause(t *testing.T) {
	err := errOther.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "something else: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, errOther)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestChainedDerivation(t *testing.T) {
	err := errSentinel.Fmt(7).Wrap(io.EOF)

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, io.EOF)

	var appErr *apperr.Error

	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "session 7 not found", appErr.Message)
}
