package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("no record found for that identifier")
	// ErrInvalidValue is matched by every *ValueError.
	ErrInvalidValue = errors.New("invalid value")
	// ErrStorage is matched by every *StorageError.
	ErrStorage = errors.New("storage failure")
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("malformed persisted task")
)

// ValueError reports user-supplied text that could not be turned into a
// field value.
type ValueError struct {
	Kind     string // "status", "priority", "date", ...
	Input    string
	Accepted []string
	Reason   string
}

func (e *ValueError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
	case len(e.Accepted) > 0:
		return fmt.Sprintf("invalid %s %q (accepted: %s)", e.Kind, e.Input, strings.Join(e.Accepted, ", "))
	default:
		return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
	}
}

func (e *ValueError) Is(target error) bool { return target == ErrInvalidValue }

// StorageError wraps an engine-level failure of the durable store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// DecodeError reports a persisted row that does not match the expected shape.
// It indicates corruption or a schema mismatch and is never retried.
type DecodeError struct {
	ID     int64
	Column string
	Value  string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode todo %d: column %s = %q: %v", e.ID, e.Column, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func notFound(id uint32) error {
	return fmt.Errorf("todo %d: %w", id, ErrNotFound)
}
