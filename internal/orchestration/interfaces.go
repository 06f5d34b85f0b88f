package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/coinsim/internal/metrics"
	"github.com/agbru/coinsim/internal/simulation"
	"github.com/agbru/coinsim/internal/sysmon"
)

// BatchProgress is emitted once per folded batch.
type BatchProgress struct {
	// Result is the batch that was just folded.
	Result simulation.BatchResult
	// Completed is the number of batches folded so far, including Result.
	Completed int
	// TotalBatches is the number of batches in the run.
	TotalBatches int
	// CompletedTrials is the number of trials folded so far.
	CompletedTrials int64
	// TotalTrials is the number of trials in the run.
	TotalTrials int64
	// RunningSuccesses is the success count folded so far.
	RunningSuccesses int64
}

// Fraction returns the share of trials completed, in [0, 1].
func (p BatchProgress) Fraction() float64 {
	if p.TotalTrials <= 0 {
		return 1
	}
	return float64(p.CompletedTrials) / float64(p.TotalTrials)
}

// PresentationOptions configures how the summary is presented to the user.
type PresentationOptions struct {
	Verbose   bool
	Workers   int
	BatchSize int64
	Seed      uint64
	// Memory and System are optional diagnostics shown in verbose mode.
	Memory *metrics.MemorySnapshot
	System *sysmon.Stats
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation layer,
// following Clean Architecture principles where business logic should not
// depend on UI concerns.
type ProgressReporter interface {
	// DisplayProgress consumes progress updates until progressChan is closed.
	// It runs in its own goroutine and must call wg.Done when it returns.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving one update per folded batch.
	//   - totalBatches: The number of batches in the run.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan BatchProgress, totalBatches int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan BatchProgress, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan BatchProgress) {
	for range progressChan {
	}
}

// SummaryPresenter renders the final run summary.
type SummaryPresenter interface {
	PresentSummary(summary simulation.Summary, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
