// Package apperr defines the error type shared by doze packages. Sentinels are
// declared once per package and specialised with Fmt or Wrap; the results
// still match the sentinel under errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a user-facing message and an optional
// underlying cause.
type Error struct {
	Cause   error
	origin  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.origin != nil {
		return e.origin
	}

	return e
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	c := *e
	c.origin = e.root()
	c.Message = fmt.Sprintf(e.Message, args...)

	return &c
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.origin = e.root()
	c.Cause = err

	return &c
}
