package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/coinsim/internal/simulation"
)

func TestPrintRunHeader(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	PrintRunHeader(RunHeader{Total: 300_000_000, Flips: 20, Workers: 8, Seed: 7}, &buf)
	out := buf.String()

	for _, want := range []string{
		"Simulating 300,000,000 people flipping a coin 20 times in a row...",
		"Using 8 workers in parallel (seed 7)",
		"Theoretical probability: 0.0000009537 ≈ 0.000095%",
		"Theoretical expected successes: 286.10",
		strings.Repeat("-", 60),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestFormatQuietSummary(t *testing.T) {
	t.Parallel()
	s := simulation.Summary{Total: 1 << 20, Successes: 2, Expected: 1, Deviation: 100}
	got := FormatQuietSummary(s)
	want := "total=1048576 successes=2 rate=0.000001907 expected=1.00 deviation=100.00%"
	if got != want {
		t.Errorf("FormatQuietSummary = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	DisplayQuietSummary(&buf, s)
	if buf.String() != want+"\n" {
		t.Errorf("DisplayQuietSummary = %q", buf.String())
	}
}
