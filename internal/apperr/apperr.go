// Package apperr defines the closed set of failure kinds shared by every
// usecase, and the translation of those kinds into HTTP responses.
// Services return *apperr.Error instead of raising framework-specific
// errors; the transport boundary switches over the Kind exhaustively.
package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of precondition failure an operation hit.
type Kind int

const (
	// KindInternal is the zero value: anything unclassified.
	KindInternal Kind = iota

	// KindNotFound is returned when a referenced entity does not exist.
	KindNotFound

	// KindInvalidArgument is returned when a caller-supplied required
	// field is empty or malformed.
	KindInvalidArgument

	// KindUnauthorized is returned when credential validation fails.
	KindUnauthorized

	// KindConflict is returned when a uniqueness invariant is violated,
	// e.g. adding the same stock to a portfolio twice.
	KindConflict

	// KindUnsupported is returned when the operation is not permitted in
	// the current state.
	KindUnsupported

	// KindTimeout is returned when a downstream operation exceeded its
	// deadline.
	KindTimeout
)

// String returns a short name for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindUnsupported:
		return "unsupported"
	case KindTimeout:
		return "timeout"
	default:
		return "internal"
	}
}

// Error is a tagged domain error. Reason is the human-readable precondition
// message shown to clients for every kind except KindInternal.
type Error struct {
	Kind   Kind
	Reason string
	Err    error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given kind.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Wrap creates an Error of the given kind around an underlying cause.
func Wrap(kind Kind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// NotFound creates a KindNotFound error.
func NotFound(reason string) *Error {
	return New(KindNotFound, reason)
}

// InvalidArgument creates a KindInvalidArgument error.
func InvalidArgument(reason string) *Error {
	return New(KindInvalidArgument, reason)
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(reason string) *Error {
	return New(KindUnauthorized, reason)
}

// Conflict creates a KindConflict error.
func Conflict(reason string) *Error {
	return New(KindConflict, reason)
}

// KindOf returns the kind carried by err, or KindInternal when err is not
// an *Error. A nil err has no kind; callers must check err != nil first.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
