package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/agbru/coinsim/internal/errors"
)

// envConfig mirrors the overridable flags. Pointer fields stay nil when the
// variable is unset, which keeps "unset" distinct from a zero value.
type envConfig struct {
	Total     *int64         `env:"TOTAL"`
	BatchSize *int64         `env:"BATCH_SIZE"`
	Flips     *int           `env:"FLIPS"`
	Workers   *int           `env:"WORKERS"`
	Seed      *uint64        `env:"SEED"`
	Ordered   *bool          `env:"ORDERED"`
	Compact   *bool          `env:"COMPACT"`
	TUI       *bool          `env:"TUI"`
	Quiet     *bool          `env:"QUIET"`
	Verbose   *bool          `env:"VERBOSE"`
	Timeout   *time.Duration `env:"TIMEOUT"`
	NoColor   *bool          `env:"NO_COLOR"`
	LogLevel  *string        `env:"LOG_LEVEL"`
	Metrics   *bool          `env:"METRICS"`
}

// envOverride binds one environment value to the flag names it overrides.
type envOverride struct {
	flags []string
	apply func(*AppConfig)
}

// overrides returns the table of values that are set in the environment.
func (e envConfig) overrides() []envOverride {
	var o []envOverride
	add := func(set bool, apply func(*AppConfig), flags ...string) {
		if set {
			o = append(o, envOverride{flags: flags, apply: apply})
		}
	}
	add(e.Total != nil, func(c *AppConfig) { c.Total = *e.Total }, "total")
	add(e.BatchSize != nil, func(c *AppConfig) { c.BatchSize = *e.BatchSize }, "batch-size")
	add(e.Flips != nil, func(c *AppConfig) { c.Flips = *e.Flips }, "flips")
	add(e.Workers != nil, func(c *AppConfig) { c.Workers = *e.Workers }, "workers")
	add(e.Seed != nil, func(c *AppConfig) { c.Seed = *e.Seed }, "seed")
	add(e.Ordered != nil, func(c *AppConfig) { c.Ordered = *e.Ordered }, "ordered")
	add(e.Compact != nil, func(c *AppConfig) { c.Compact = *e.Compact }, "compact")
	add(e.TUI != nil, func(c *AppConfig) { c.TUI = *e.TUI }, "tui")
	add(e.Quiet != nil, func(c *AppConfig) { c.Quiet = *e.Quiet }, "quiet", "q")
	add(e.Verbose != nil, func(c *AppConfig) { c.Verbose = *e.Verbose }, "verbose", "v")
	add(e.Timeout != nil, func(c *AppConfig) { c.Timeout = *e.Timeout }, "timeout")
	add(e.NoColor != nil, func(c *AppConfig) { c.NoColor = *e.NoColor }, "no-color")
	add(e.LogLevel != nil, func(c *AppConfig) { c.LogLevel = *e.LogLevel }, "log-level")
	add(e.Metrics != nil, func(c *AppConfig) { c.Metrics = *e.Metrics }, "metrics")
	return o
}

// applyEnvOverrides applies COINSIM_* environment values to the configuration
// for every flag that was not set explicitly on the command line.
// A value that cannot be parsed is a configuration error.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return apperrors.NewConfigError("parse env: %v", err)
	}
	for _, o := range e.overrides() {
		if !isFlagSetAny(fs, o.flags...) {
			o.apply(cfg)
		}
	}
	return nil
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the aliased flags was explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}
