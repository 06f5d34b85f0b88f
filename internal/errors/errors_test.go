// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %d for flag %s", 0, "--batch-size")
	if err.Error() != "invalid value 0 for flag --batch-size" {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestWorkerError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         WorkerError
		expectedMsg string
		checkIs     error
	}{
		{
			name:        "Error names the batch",
			err:         WorkerError{Batch: 7, Cause: errors.New("out of memory")},
			expectedMsg: "batch 7 failed: out of memory",
		},
		{
			name:        "errors.Is reaches the cause",
			err:         WorkerError{Batch: 0, Cause: context.Canceled},
			expectedMsg: "batch 0 failed: context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, tt.err.Error())
			}
			if tt.err.Unwrap() != tt.err.Cause {
				t.Error("Unwrap should return the original cause")
			}
			if tt.checkIs != nil && !errors.Is(tt.err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestWorkerError_AsThroughWrapping(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("run aborted: %w", WorkerError{Batch: 3, Cause: errors.New("boom")})

	var workerErr WorkerError
	if !errors.As(wrapped, &workerErr) {
		t.Fatal("errors.As should find WorkerError through wrapping")
	}
	if workerErr.Batch != 3 {
		t.Errorf("Batch = %d, want 3", workerErr.Batch)
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "simulation", Limit: 500 * time.Millisecond}
	if err.Error() != `operation "simulation" timed out after 500ms` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "batch_size", Message: "must be positive"}
	if err.Error() != `validation error for "batch_size": must be positive` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	wrapped := WrapError(context.DeadlineExceeded, "batch %d", 4)
	if wrapped.Error() != "batch 4: context deadline exceeded" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if !errors.Is(wrapped, context.DeadlineExceeded) {
		t.Error("wrapped error should preserve the chain")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{context.DeadlineExceeded, true},
		{fmt.Errorf("wrapped: %w", context.Canceled), true},
		{errors.New("other"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "total", Message: "negative"}, ExitErrorConfig},
		{"timeout type", TimeoutError{Operation: "simulation", Limit: time.Second}, ExitErrorTimeout},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"worker", WorkerError{Batch: 1, Cause: errors.New("boom")}, ExitErrorGeneric},
		{"worker canceled", WorkerError{Batch: 3, Cause: context.Canceled}, ExitErrorGeneric},
		{"worker deadline", fmt.Errorf("run: %w", WorkerError{Batch: 0, Cause: context.DeadlineExceeded}), ExitErrorGeneric},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleRunError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		contains string
	}{
		{"worker failure", WorkerError{Batch: 2, Cause: errors.New("boom")}, ExitErrorGeneric, "batch 2 failed: boom"},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"config", NewConfigError("flips must be positive"), ExitErrorConfig, "flips must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleRunError(tt.err, 1500*time.Millisecond, &buf, plainColors{})
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q should contain %q", buf.String(), tt.contains)
			}
		})
	}

	t.Run("nil error prints nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if code := HandleRunError(nil, 0, &buf, plainColors{}); code != ExitSuccess {
			t.Errorf("code = %d, want %d", code, ExitSuccess)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}
}
