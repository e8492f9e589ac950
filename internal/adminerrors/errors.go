package adminerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrNotFound         = errors.New("document not found")
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// business logic errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidCursor = errors.New("invalid cursor")
	ErrInvalidSort   = errors.New("invalid sort option")
	ErrNotConfirmed  = errors.New("operation not confirmed")
)

// access errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// MutationKind classifies why a write was rejected.
type MutationKind string

const (
	KindNotFound     MutationKind = "not_found"
	KindInvalidInput MutationKind = "invalid_input"
	KindUnavailable  MutationKind = "unavailable"
)

// MutationError is the typed failure returned by the mutation gateway.
type MutationError struct {
	Op         string
	Collection string
	ID         string
	Kind       MutationKind
	Err        error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s %s/%s: %s: %v", e.Op, e.Collection, e.ID, e.Kind, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to the error kind, so callers can
// use errors.Is(err, ErrNotFound) without caring about the wrapped cause.
func (e *MutationError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindInvalidInput:
		return target == ErrInvalidInput
	case KindUnavailable:
		return target == ErrStoreUnavailable
	}
	return false
}

// KindOf maps an arbitrary store error onto a MutationKind.
func KindOf(err error) MutationKind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindUnavailable
	}
}
