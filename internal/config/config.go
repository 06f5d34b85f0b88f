// Package config parses and validates the command-line configuration of the
// simulator. Values are resolved with the priority
// CLI flags > COINSIM_* environment variables > defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/logging"
	"github.com/agbru/coinsim/internal/simulation"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "COINSIM_"

// AppConfig aggregates the settings of a simulation run.
type AppConfig struct {
	// Total is the number of simulated people.
	Total int64
	// BatchSize is the number of people per batch.
	BatchSize int64
	// Flips is the number of consecutive heads a person needs.
	Flips int
	// Workers is the size of the worker pool; 0 means one per CPU.
	Workers int
	// Seed fixes the random stream; 0 derives one from the clock.
	Seed uint64
	// Ordered reports batches in submission order.
	Ordered bool
	// Compact replaces per-batch lines with a spinner and progress bar.
	Compact bool
	// TUI shows a live dashboard instead of line-based progress.
	TUI bool
	// Quiet prints only the final figures.
	Quiet bool
	// Verbose adds batch statistics and resource usage to the summary.
	Verbose bool
	// Timeout aborts the run after the given duration; 0 disables it.
	Timeout time.Duration
	// NoColor disables ANSI colors.
	NoColor bool
	// LogLevel is the minimum level of diagnostic logs written to stderr.
	LogLevel string
	// Metrics dumps the Prometheus text exposition after the summary.
	Metrics bool
	// EnvFile is a dotenv file loaded before environment overrides.
	EnvFile string
	// Completion is the shell to print a completion script for, if any.
	Completion string
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() AppConfig {
	return AppConfig{
		Total:     simulation.DefaultTotal,
		BatchSize: simulation.DefaultBatchSize,
		Flips:     simulation.DefaultFlips,
		LogLevel:  "warn",
	}
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	switch {
	case c.Total < 0:
		return apperrors.NewConfigError("total must be non-negative, got %d", c.Total)
	case c.BatchSize <= 0:
		return apperrors.NewConfigError("batch size must be positive, got %d", c.BatchSize)
	case c.Flips < 1 || c.Flips > simulation.MaxFlips:
		return apperrors.NewConfigError("flips must be between 1 and %d, got %d", simulation.MaxFlips, c.Flips)
	case c.Workers < 0:
		return apperrors.NewConfigError("workers must be non-negative, got %d", c.Workers)
	case c.Timeout < 0:
		return apperrors.NewConfigError("timeout must be non-negative, got %s", c.Timeout)
	case c.Quiet && c.Compact:
		return apperrors.NewConfigError("--quiet and --compact are mutually exclusive")
	case c.TUI && (c.Quiet || c.Compact):
		return apperrors.NewConfigError("--tui cannot be combined with --quiet or --compact")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

// ParseConfig parses the command-line arguments, applies environment
// overrides for every flag not given explicitly and validates the result.
//
// Parameters:
//   - programName: The name shown in usage messages.
//   - args: The arguments, without the program name.
//   - errorOutput: Where flag usage and parse errors are written.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, otherwise a ConfigError.
func ParseConfig(programName string, args []string, errorOutput io.Writer) (AppConfig, error) {
	cfg := Defaults()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)

	fs.Int64Var(&cfg.Total, "total", cfg.Total, "Number of simulated people.")
	fs.Int64Var(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Number of people per batch.")
	fs.IntVar(&cfg.Flips, "flips", cfg.Flips, fmt.Sprintf("Consecutive heads required (1-%d).", simulation.MaxFlips))
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker pool size (0 = number of CPUs).")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = derive from the clock).")
	fs.BoolVar(&cfg.Ordered, "ordered", cfg.Ordered, "Report batches in submission order.")
	fs.BoolVar(&cfg.Compact, "compact", cfg.Compact, "Show a progress bar instead of one line per batch.")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Show a live dashboard while the run progresses.")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Print only the final figures.")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Show batch statistics and resource usage.")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Shorthand for --verbose.")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Abort the run after this duration (0 = none).")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level (debug, info, warn, error, disabled).")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "Print Prometheus metrics after the summary.")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Load environment overrides from a dotenv file.")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "Print a completion script (bash, zsh, fish, powershell).")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return AppConfig{}, apperrors.NewConfigError("loading env file %s: %v", cfg.EnvFile, err)
		}
	}
	if err := applyEnvOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
