// Package app wires configuration, logging, the worker pool and the CLI
// presenters into the coinsim command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/coinsim/internal/cli"
	"github.com/agbru/coinsim/internal/config"
	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/logging"
	"github.com/agbru/coinsim/internal/orchestration"
	"github.com/agbru/coinsim/internal/simulation"
	"github.com/agbru/coinsim/internal/ui"
)

// ExecutorFactory builds the batch executor for a run.
type ExecutorFactory func(flips int, seed uint64) orchestration.BatchExecutor

// Application represents the coinsim application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	logger         logging.Logger
	newExecutor    ExecutorFactory
	tracerProvider trace.TracerProvider
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the console logger built from --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// WithExecutorFactory replaces the production batch executor.
func WithExecutorFactory(f ExecutorFactory) AppOption {
	return func(a *Application) { a.newExecutor = f }
}

// WithTracerProvider sets the provider for run and batch spans.
func WithTracerProvider(tp trace.TracerProvider) AppOption {
	return func(a *Application) { a.tracerProvider = tp }
}

func defaultExecutor(flips int, seed uint64) orchestration.BatchExecutor {
	return simulation.NewExecutor(flips, seed)
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, newExecutor: defaultExecutor}
	for _, opt := range opts {
		opt(app)
	}

	programName := "coinsim"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.logger == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.logger = logging.ForLevel(errWriter, "coinsim", level)
	}
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	ui.InitTheme(a.Config.NoColor)
	return a.runSimulation(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
