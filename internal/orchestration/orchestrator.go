package orchestration

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/simulation"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of stalling the fold when
// the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

const tracerName = "github.com/agbru/coinsim/internal/orchestration"

// RunPlan describes one simulation run.
type RunPlan struct {
	// Total is the number of trials to execute.
	Total int64
	// BatchSize is the number of trials per batch; the last batch may be smaller.
	BatchSize int64
	// Flips is the trial length, used for the theoretical figures.
	Flips int
	// Workers bounds the number of batches in flight. Zero or less means
	// runtime.NumCPU().
	Workers int
	// Ordered folds and reports batches in submission order instead of
	// completion order. Results that finish early are buffered.
	Ordered bool
	// Observers are notified of every folded batch.
	Observers []BatchObserver
	// TracerProvider supplies the tracer for run and batch spans. Nil means
	// the global provider.
	TracerProvider trace.TracerProvider
}

// EffectiveWorkers returns the pool size the plan runs with.
func (p RunPlan) EffectiveWorkers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

func (p RunPlan) tracer() trace.Tracer {
	tp := p.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName)
}

// ExecuteRun partitions the plan into batches, executes them on a bounded
// worker pool and folds the results into a Summary.
//
// Batch execution and the fold never share data: workers send their results
// over a channel and the calling goroutine is the only one touching the
// accumulator. One BatchProgress per folded batch is sent to the reporter,
// which runs in its own goroutine and has returned before ExecuteRun does.
//
// The first worker failure cancels the remaining batches and is returned as an
// apperrors.WorkerError. Cancellation of ctx is returned as the context error.
// On failure the returned Summary covers the batches folded before the abort.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - plan: The run description.
//   - executor: Executes a single batch.
//   - progressReporter: Displays progress (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - simulation.Summary: The folded run summary.
//   - error: A configuration, worker or context error.
func ExecuteRun(ctx context.Context, plan RunPlan, executor BatchExecutor, progressReporter ProgressReporter, out io.Writer) (simulation.Summary, error) {
	batches, err := simulation.Partition(plan.Total, plan.BatchSize)
	if err != nil {
		return simulation.Summary{}, err
	}
	workers := plan.EffectiveWorkers()
	tracer := plan.tracer()

	ctx, span := tracer.Start(ctx, "coinsim.run", trace.WithAttributes(
		attribute.Int64("coinsim.total", plan.Total),
		attribute.Int64("coinsim.batch_size", plan.BatchSize),
		attribute.Int("coinsim.batches", len(batches)),
		attribute.Int("coinsim.workers", workers),
	))
	defer span.End()

	start := time.Now()
	acc := simulation.NewAccumulator(plan.Total, plan.Flips, len(batches))

	progressChan := make(chan BatchProgress, workers*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(batches), out)

	results := make(chan simulation.BatchResult, workers)
	dispatchErr := make(chan error, 1)
	go func() {
		dispatchErr <- dispatch(ctx, tracer, workers, batches, executor, results)
		close(results)
	}()

	seq := newSequencer(plan.Ordered)
	for res := range results {
		for _, r := range seq.push(res) {
			acc.Add(r)
			for _, o := range plan.Observers {
				o.ObserveBatch(r)
			}
			progressChan <- BatchProgress{
				Result:           r,
				Completed:        acc.Completed(),
				TotalBatches:     len(batches),
				CompletedTrials:  acc.Trials(),
				TotalTrials:      plan.Total,
				RunningSuccesses: acc.Successes(),
			}
		}
	}
	err = <-dispatchErr

	close(progressChan)
	displayWg.Wait()

	if err == nil && (acc.Completed() != len(batches) || acc.Trials() != plan.Total) {
		err = fmt.Errorf("run incomplete: folded %d/%d batches, %d/%d trials",
			acc.Completed(), len(batches), acc.Trials(), plan.Total)
	}

	summary := acc.Summary(time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, err
	}
	span.SetAttributes(attribute.Int64("coinsim.successes", summary.Successes))
	return summary, nil
}

// dispatch submits every batch to a pool of at most workers goroutines and
// waits for all of them. Submission blocks while the pool is full and stops
// as soon as a batch fails or ctx is canceled.
func dispatch(ctx context.Context, tracer trace.Tracer, workers int, batches []simulation.Batch, executor BatchExecutor, results chan<- simulation.BatchResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	submitted := 0
	for _, batch := range batches {
		if gctx.Err() != nil {
			break
		}
		submitted++
		g.Go(func() error {
			res, err := executeBatch(gctx, tracer, executor, batch)
			if err != nil {
				return err
			}
			select {
			case results <- res:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if submitted < len(batches) {
		// Canceled between submissions with every in-flight batch succeeding.
		return ctx.Err()
	}
	return nil
}

// executeBatch runs one batch under its own span, turning worker errors and
// panics into apperrors.WorkerError. Context errors pass through unchanged.
func executeBatch(ctx context.Context, tracer trace.Tracer, executor BatchExecutor, batch simulation.Batch) (res simulation.BatchResult, err error) {
	ctx, span := tracer.Start(ctx, "coinsim.batch", trace.WithAttributes(
		attribute.Int("coinsim.batch.index", batch.Index),
		attribute.Int64("coinsim.batch.size", batch.Size),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = apperrors.WorkerError{Batch: batch.Index, Cause: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	res, err = executor.Execute(ctx, batch)
	switch {
	case err != nil && apperrors.IsContextError(err) && ctx.Err() != nil:
		return simulation.BatchResult{}, err
	case err != nil:
		return simulation.BatchResult{}, apperrors.WorkerError{Batch: batch.Index, Cause: err}
	case res.Index != batch.Index || res.Size != batch.Size || res.Successes < 0 || res.Successes > res.Size:
		return simulation.BatchResult{}, apperrors.WorkerError{
			Batch: batch.Index,
			Cause: fmt.Errorf("inconsistent result: index %d, size %d, successes %d", res.Index, res.Size, res.Successes),
		}
	}
	span.SetAttributes(attribute.Int64("coinsim.batch.successes", res.Successes))
	return res, nil
}

// sequencer releases batch results for folding. In unordered mode every
// result is released immediately; in ordered mode results are held back
// until all lower indices have been released.
type sequencer struct {
	ordered bool
	next    int
	pending map[int]simulation.BatchResult
}

func newSequencer(ordered bool) *sequencer {
	return &sequencer{ordered: ordered, pending: make(map[int]simulation.BatchResult)}
}

func (s *sequencer) push(r simulation.BatchResult) []simulation.BatchResult {
	if !s.ordered {
		return []simulation.BatchResult{r}
	}
	s.pending[r.Index] = r
	var ready []simulation.BatchResult
	for {
		next, ok := s.pending[s.next]
		if !ok {
			return ready
		}
		delete(s.pending, s.next)
		ready = append(ready, next)
		s.next++
	}
}
