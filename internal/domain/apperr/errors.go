// Package apperr defines the error kinds the core reports to its callers.
// Callers classify with errors.Is against the sentinels below.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: malformed or missing input, caught before any write.
	ErrValidation = errors.New("validation error")
	// ErrReference: a referenced row (user, location, item) does not exist,
	// or a row cannot be removed while others still reference it.
	ErrReference = errors.New("reference error")
	// ErrNotFound: the operation target does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState: the target is not in the source state the transition needs.
	ErrInvalidState = errors.New("invalid state")
)

// Error pairs one of the sentinel kinds with a human readable message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error   { return newf(ErrValidation, format, args...) }
func Reference(format string, args ...any) error    { return newf(ErrReference, format, args...) }
func NotFound(format string, args ...any) error     { return newf(ErrNotFound, format, args...) }
func InvalidState(format string, args ...any) error { return newf(ErrInvalidState, format, args...) }

// Message returns the caller-facing text of err: the message of an *Error,
// or err.Error() for anything else.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return err.Error()
}
