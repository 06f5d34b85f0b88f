//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

package orchestration

import (
	"context"

	"github.com/agbru/coinsim/internal/simulation"
)

// BatchExecutor runs one batch to completion. Implementations must be safe
// for concurrent use: the pool calls Execute from several goroutines.
// simulation.Executor is the production implementation.
type BatchExecutor interface {
	Execute(ctx context.Context, batch simulation.Batch) (simulation.BatchResult, error)
}

// BatchObserver is notified of every folded batch result, on the
// coordinating goroutine and in fold order.
type BatchObserver interface {
	ObserveBatch(result simulation.BatchResult)
}

// BatchObserverFunc adapts a function to the BatchObserver interface.
type BatchObserverFunc func(result simulation.BatchResult)

// ObserveBatch calls f.
func (f BatchObserverFunc) ObserveBatch(result simulation.BatchResult) { f(result) }
