package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/coinsim/internal/format"
	"github.com/agbru/coinsim/internal/simulation"
	"github.com/agbru/coinsim/internal/ui"
)

// RunHeader describes the run announced before the first batch.
type RunHeader struct {
	Total   int64
	Flips   int
	Workers int
	Seed    uint64
}

// Separator returns the dashed rule printed around the progress lines.
func Separator() string {
	return strings.Repeat("-", separatorWidth)
}

// PrintRunHeader announces the run and the theoretical figures it will be
// compared against.
func PrintRunHeader(h RunHeader, out io.Writer) {
	p := simulation.TheoreticalProbability(h.Flips)
	fmt.Fprintf(out, "Simulating %s%s%s people flipping a coin %d times in a row...\n",
		ui.ColorBlue(), format.FormatInt(h.Total), ui.ColorReset(), h.Flips)
	fmt.Fprintf(out, "Using %s%d%s workers in parallel (seed %d)\n",
		ui.ColorBlue(), h.Workers, ui.ColorReset(), h.Seed)
	fmt.Fprintf(out, "Theoretical probability: %.10f ≈ %.6f%%\n", p, p*100)
	fmt.Fprintf(out, "Theoretical expected successes: %s%.2f%s\n",
		ui.ColorYellow(), simulation.ExpectedSuccesses(h.Total, h.Flips), ui.ColorReset())
	fmt.Fprintln(out, Separator())
}

// FormatQuietSummary renders the summary as a single key=value line for scripts.
func FormatQuietSummary(s simulation.Summary) string {
	return fmt.Sprintf("total=%d successes=%d rate=%.9f expected=%.2f deviation=%.2f%%",
		s.Total, s.Successes, s.ObservedRate(), s.Expected, s.Deviation)
}

// DisplayQuietSummary prints FormatQuietSummary followed by a newline.
func DisplayQuietSummary(out io.Writer, s simulation.Summary) {
	fmt.Fprintln(out, FormatQuietSummary(s))
}
