// Package apperr defines the closed set of error kinds the services return.
// Handlers switch on the kind to pick a status code; nothing outside this
// set crosses a service boundary.
package apperr

import (
	"errors"
	"fmt"
)

// Kind tags an Error with its category.
type Kind int

const (
	// Unknown is the zero kind; KindOf returns it for foreign errors.
	Unknown Kind = iota
	// Validation marks missing or malformed input. Retriable after the
	// caller fixes the payload.
	Validation
	// Conflict marks a duplicate-identity collision (pre-check hit or a
	// unique constraint firing under a race).
	Conflict
	// NotFound marks an unknown hash or id.
	NotFound
	// Persistence marks a storage failure or a detected partial write.
	// The transaction has already been rolled back when one is returned.
	Persistence
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case NotFound:
		return "not_found"
	case Persistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error carries a kind, a caller-facing message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a Validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Persistencef builds a Persistence error wrapping the underlying cause.
func Persistencef(cause error, format string, args ...any) *Error {
	return &Error{Kind: Persistence, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf reports the kind of err, or Unknown for errors from outside this
// package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
