package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/agbru/coinsim/internal/cli"
	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/logging"
	"github.com/agbru/coinsim/internal/metrics"
	"github.com/agbru/coinsim/internal/orchestration"
	"github.com/agbru/coinsim/internal/simulation"
	"github.com/agbru/coinsim/internal/sysmon"
	"github.com/agbru/coinsim/internal/tui"
)

// runSimulation executes one simulation run end to end.
func (a *Application) runSimulation(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	// Setup lifecycle (timeout + signals)
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	seed := cfg.Seed
	if seed == 0 {
		seed = simulation.NewSeed()
	}
	runID := uuid.NewString()

	plan := orchestration.RunPlan{
		Total:          cfg.Total,
		BatchSize:      cfg.BatchSize,
		Flips:          cfg.Flips,
		Workers:        cfg.Workers,
		Ordered:        cfg.Ordered,
		TracerProvider: a.tracerProvider,
	}
	workers := plan.EffectiveWorkers()
	runMetrics := metrics.NewRunMetrics(workers)
	plan.Observers = []orchestration.BatchObserver{runMetrics, a.batchLogger(runID)}

	memory := metrics.NewMemoryCollector()

	if !cfg.Quiet && !cfg.TUI {
		cli.PrintRunHeader(cli.RunHeader{Total: cfg.Total, Flips: cfg.Flips, Workers: workers, Seed: seed}, out)
	}

	a.logger.Info("run started",
		logging.String("run_id", runID),
		logging.Int64("total", cfg.Total),
		logging.Int64("batch_size", cfg.BatchSize),
		logging.Int("flips", cfg.Flips),
		logging.Int("workers", workers),
		logging.Uint64("seed", seed),
	)

	executor := a.newExecutor(cfg.Flips, seed)
	var summary simulation.Summary
	var err error
	if cfg.TUI {
		info := tui.RunInfo{Total: cfg.Total, BatchSize: cfg.BatchSize, Flips: cfg.Flips, Workers: workers, Seed: seed, Version: Version}
		summary, err = tui.Run(ctx, info, func(ctx context.Context, reporter orchestration.ProgressReporter) (simulation.Summary, error) {
			return orchestration.ExecuteRun(ctx, plan, executor, reporter, io.Discard)
		})
	} else {
		progressReporter, progressOut := a.progressReporter(out)
		summary, err = orchestration.ExecuteRun(ctx, plan, executor, progressReporter, progressOut)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && cfg.Timeout > 0 {
			err = apperrors.TimeoutError{Operation: "simulation", Limit: cfg.Timeout}
		}
		a.logger.Error("run failed", err,
			logging.String("run_id", runID),
			logging.Int("batches_completed", summary.Batches),
			logging.Duration("elapsed", summary.Duration),
		)
		return cli.CLIResultPresenter{}.HandleError(err, summary.Duration, a.ErrWriter)
	}

	a.logger.Info("run finished",
		logging.String("run_id", runID),
		logging.Int64("successes", summary.Successes),
		logging.Float64("deviation_pct", summary.Deviation),
		logging.Duration("elapsed", summary.Duration),
	)

	if cfg.Quiet {
		cli.DisplayQuietSummary(out, summary)
	} else {
		opts := orchestration.PresentationOptions{
			Verbose:   cfg.Verbose,
			Workers:   workers,
			BatchSize: cfg.BatchSize,
			Seed:      seed,
		}
		if cfg.Verbose {
			snap := memory.Since()
			stats := sysmon.Sample(ctx)
			opts.Memory, opts.System = &snap, &stats
		}
		cli.CLIResultPresenter{}.PresentSummary(summary, opts, out)
	}

	if cfg.Metrics {
		if err := runMetrics.WriteText(out); err != nil {
			a.logger.Error("writing metrics failed", err, logging.String("run_id", runID))
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// progressReporter selects the reporter for the configured output mode.
func (a *Application) progressReporter(out io.Writer) (orchestration.ProgressReporter, io.Writer) {
	switch {
	case a.Config.Quiet:
		return orchestration.NullProgressReporter{}, io.Discard
	case a.Config.Compact:
		return cli.SpinnerProgressReporter{}, out
	default:
		return cli.LineProgressReporter{}, out
	}
}

// batchLogger logs every folded batch at debug level.
func (a *Application) batchLogger(runID string) orchestration.BatchObserver {
	return orchestration.BatchObserverFunc(func(r simulation.BatchResult) {
		a.logger.Debug("batch folded",
			logging.String("run_id", runID),
			logging.Int("batch", r.Index),
			logging.Int64("size", r.Size),
			logging.Int64("successes", r.Successes),
			logging.Duration("duration", r.Duration),
		)
	})
}
