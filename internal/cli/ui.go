package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/coinsim/internal/format"
	"github.com/agbru/coinsim/internal/orchestration"
)

const (
	// ProgressRefreshRate is the spinner animation interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
	// separatorWidth is the width of the dashed rules around the progress lines.
	separatorWidth = 60
)

// Spinner abstracts the terminal spinner so reporters can be tested without
// a real terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix replaces the suffix while holding the spinner lock, since the
// animation goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// LineProgressReporter prints one line per completed batch.
type LineProgressReporter struct{}

var _ orchestration.ProgressReporter = LineProgressReporter{}

// DisplayProgress prints every update until the channel is closed.
func (LineProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.BatchProgress, _ int, out io.Writer) {
	defer wg.Done()
	for p := range progressChan {
		fmt.Fprintln(out, FormatProgressLine(p))
	}
}

// FormatProgressLine renders a single per-batch progress line.
func FormatProgressLine(p orchestration.BatchProgress) string {
	return fmt.Sprintf("Progress: %5.1f%% - batch %d/%d done, successes in batch: %d",
		p.Fraction()*100, p.Result.Index+1, p.TotalBatches, p.Result.Successes)
}

// SpinnerProgressReporter shows a spinner with a progress bar and an ETA
// instead of one line per batch.
type SpinnerProgressReporter struct{}

var _ orchestration.ProgressReporter = SpinnerProgressReporter{}

// DisplayProgress animates the spinner until the channel is closed, then
// prints the final state of the bar.
func (SpinnerProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.BatchProgress, totalBatches int, out io.Writer) {
	defer wg.Done()
	if totalBatches == 0 {
		orchestration.DrainChannel(progressChan)
		return
	}

	tracker := format.NewProgressWithETA()
	s := newSpinner(out)
	s.Start()

	var last orchestration.BatchProgress
	for p := range progressChan {
		last = p
		fraction, eta := tracker.Update(p.Fraction())
		s.UpdateSuffix(" " + formatCompactStatus(fraction, eta, p))
	}
	s.Stop()

	if last.Completed > 0 {
		fmt.Fprintln(out, formatCompactStatus(last.Fraction(), 0, last))
	}
}

func formatCompactStatus(fraction float64, eta time.Duration, p orchestration.BatchProgress) string {
	return fmt.Sprintf("%s | %d/%d batches | %s successes",
		format.FormatProgressBarWithETA(fraction, eta, ProgressBarWidth),
		p.Completed, p.TotalBatches, format.FormatInt(p.RunningSuccesses))
}
