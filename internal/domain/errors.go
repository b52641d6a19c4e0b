package domain

import (
	"errors"
	"fmt"
)

// Kind classifies store errors so callers can tell terminal failures from
// retryable ones.
type Kind string

const (
	KindConflict    Kind = "conflict"
	KindIO          Kind = "io"
	KindLockTimeout Kind = "lock_timeout"
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation"
)

// Error kinds. Every error returned by the store wraps exactly one of these.
var (
	ErrConflict    = errors.New("conflict")
	ErrIO          = errors.New("io failure")
	ErrLockTimeout = errors.New("lock timeout")
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
)

var (
	ErrAlreadyRunning       = fmt.Errorf("session already has a running process: %w", ErrConflict)
	ErrBackupNotFound       = fmt.Errorf("backup not found: %w", ErrNotFound)
	ErrInvalidRange         = fmt.Errorf("invalid turn range: %w", ErrValidation)
	ErrNoPendingCompression = fmt.Errorf("no pending compression: %w", ErrNotFound)
	ErrProcessNotFound      = fmt.Errorf("process not found: %w", ErrNotFound)
	ErrReferenceNotFound    = fmt.Errorf("reference not found: %w", ErrNotFound)
	ErrSessionExists        = fmt.Errorf("session already exists: %w", ErrConflict)
	ErrSessionNotFound      = fmt.Errorf("session not found: %w", ErrNotFound)
	ErrTargetChanged        = fmt.Errorf("target session changed since summary was submitted: %w", ErrConflict)
	ErrTurnIndexOutOfRange  = fmt.Errorf("turn index out of range: %w", ErrNotFound)
)

// IOError tags a disk failure as retryable I/O.
func IOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}

// Validationf builds a validation error with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// KindOf returns the kind of err, or "" when err is not a store error.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrLockTimeout):
		return KindLockTimeout
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrIO):
		return KindIO
	}
	return ""
}

// Retryable reports whether retrying the operation may succeed.
func Retryable(err error) bool {
	kind := KindOf(err)
	return kind == KindLockTimeout || kind == KindIO
}
