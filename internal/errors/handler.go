package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the ANSI sequences used when printing errors.
// It keeps this package free of any dependency on the ui package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error to the process exit code it should produce.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var workerErr WorkerError
	var configErr ConfigError
	var validationErr ValidationError
	var timeoutErr TimeoutError
	switch {
	// A failed batch is fatal even when its cause is a context error.
	case errors.As(err, &workerErr):
		return ExitErrorGeneric
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError prints a user-facing description of a failed run and returns
// the matching exit code. A nil error prints nothing and returns ExitSuccess.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The run did not finish after %s.%s\n",
			colors.Red(), duration.Round(time.Millisecond), colors.Reset())
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled by user after %s.%s\n",
			colors.Yellow(), duration.Round(time.Millisecond), colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sStatus: Failure. %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
