package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/format"
	"github.com/agbru/coinsim/internal/orchestration"
	"github.com/agbru/coinsim/internal/simulation"
	"github.com/agbru/coinsim/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active theme.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter renders the final summary and run errors.
type CLIResultPresenter struct{}

var (
	_ orchestration.SummaryPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler     = CLIResultPresenter{}
)

// PresentSummary prints the closing rule and the final results panel.
func (CLIResultPresenter) PresentSummary(s simulation.Summary, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintln(out, Separator())
	fmt.Fprintln(out, ui.Panel("Final results", SummaryLines(s, opts)))
}

// SummaryLines returns the lines of the results panel. Verbose mode appends
// batch statistics, timing and resource usage.
func SummaryLines(s simulation.Summary, opts orchestration.PresentationOptions) []string {
	lines := []string{
		fmt.Sprintf("Total people simulated: %s", format.FormatInt(s.Total)),
		fmt.Sprintf("Successes: %s%s%s (%.6f%%)",
			ui.ColorGreen(), format.FormatInt(s.Successes), ui.ColorReset(), s.ObservedRate()*100),
		fmt.Sprintf("Theoretical expectation: %.2f", s.Expected),
		fmt.Sprintf("Deviation: %s%.2f%%%s", deviationColor(s.Deviation), s.Deviation, ui.ColorReset()),
	}
	if !opts.Verbose {
		return lines
	}

	st := s.BatchStats
	lines = append(lines,
		"",
		fmt.Sprintf("Batches: %d of up to %s people, %d flips each", s.Batches, format.FormatInt(opts.BatchSize), s.Flips),
		fmt.Sprintf("Successes per batch: mean %.3f, std dev %.3f, min %.0f, median %.1f, max %.0f",
			st.Mean, st.StdDev, st.Min, st.Median, st.Max),
		fmt.Sprintf("Duration: %s with %d workers (seed %d)",
			format.FormatExecutionDuration(s.Duration), opts.Workers, opts.Seed),
	)
	if s.Duration > 0 {
		lines = append(lines, fmt.Sprintf("Throughput: %s people/s",
			format.FormatInt(int64(float64(s.Total)/s.Duration.Seconds()))))
	}
	if opts.Memory != nil {
		lines = append(lines, "Memory: "+opts.Memory.String())
	}
	if opts.System != nil {
		lines = append(lines, "System: "+opts.System.String())
	}
	return lines
}

// deviationColor highlights deviations beyond ten percent.
func deviationColor(d float64) string {
	if d > 10 || d < -10 {
		return ui.ColorYellow()
	}
	return ui.ColorGreen()
}

// HandleError prints the error and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, duration, out, CLIColorProvider{})
}
