package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1 // includes a failed batch
	ExitErrorTimeout  = 2
	ExitErrorConfig   = 4
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError is a bad flag, environment value or .env entry.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a fmt.Sprintf message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WorkerError reports the failure of one simulation batch. Batches are
// independent, so one failure aborts the run and no partial tally is kept.
type WorkerError struct {
	Batch int // zero-based submission index
	Cause error
}

func (e WorkerError) Error() string {
	return fmt.Sprintf("batch %d failed: %v", e.Batch, e.Cause)
}

func (e WorkerError) Unwrap() error { return e.Cause }

// TimeoutError is returned when a run outlives its --timeout.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError names a simulation parameter that is out of range.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message and keeps it in the chain.
// It returns nil for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from cancellation or a deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
