package simulation

import (
	"context"
	"time"

	apperrors "github.com/agbru/coinsim/internal/errors"
)

// cancelCheckInterval is the number of trials run between two checks of the
// context, keeping cancellation latency small without slowing the hot loop.
const cancelCheckInterval int64 = 1 << 16

// Batch is a group of trials dispatched to a worker as one unit.
type Batch struct {
	// Index is the zero-based submission position of the batch.
	Index int
	// Size is the number of trials in the batch.
	Size int64
}

// BatchResult is the outcome of executing a Batch.
type BatchResult struct {
	Index     int
	Size      int64
	Successes int64
	// Duration is the time the worker spent on the batch.
	Duration time.Duration
}

// Partition splits total trials into batches of batchSize, with any remainder
// placed in a final smaller batch. The sizes always sum to total.
//
// A total of zero yields no batches. A batchSize larger than total yields a
// single batch holding every trial.
func Partition(total, batchSize int64) ([]Batch, error) {
	if total < 0 {
		return nil, apperrors.ValidationError{Field: "total", Message: "must not be negative"}
	}
	if total == 0 {
		return nil, nil
	}
	if batchSize <= 0 {
		return nil, apperrors.ValidationError{Field: "batch_size", Message: "must be positive"}
	}

	count := BatchCount(total, batchSize)
	batches := make([]Batch, 0, count)
	for i, remaining := 0, total; remaining > 0; i++ {
		size := min(batchSize, remaining)
		batches = append(batches, Batch{Index: i, Size: size})
		remaining -= size
	}
	return batches, nil
}

// BatchCount returns how many batches Partition produces for the given
// arguments, or 0 when they are invalid.
func BatchCount(total, batchSize int64) int {
	if total <= 0 || batchSize <= 0 {
		return 0
	}
	return int((total + batchSize - 1) / batchSize)
}

// Executor evaluates batches with a fresh source per batch.
type Executor struct {
	Flips   int
	Sources SourceFactory
}

// NewExecutor returns an Executor drawing from per-batch PCG streams.
func NewExecutor(flips int, seed uint64) Executor {
	return Executor{Flips: flips, Sources: NewPCGFactory(seed)}
}

// Execute runs every trial of batch and reports the successes. The context is
// polled every cancelCheckInterval trials; the draws consumed are the same as
// a single RunBatch call on the batch source.
func (e Executor) Execute(ctx context.Context, batch Batch) (BatchResult, error) {
	start := time.Now()
	src := e.Sources.ForBatch(batch.Index)

	var successes int64
	for remaining := batch.Size; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return BatchResult{}, err
		}
		chunk := min(remaining, cancelCheckInterval)
		successes += RunBatch(src, chunk, e.Flips)
		remaining -= chunk
	}

	return BatchResult{
		Index:     batch.Index,
		Size:      batch.Size,
		Successes: successes,
		Duration:  time.Since(start),
	}, nil
}
