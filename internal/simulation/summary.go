package simulation

import (
	"math"
	"time"
)

// Summary is the outcome of a complete run.
type Summary struct {
	// Total is the number of trials requested (and executed).
	Total int64
	// Successes is the number of all-heads trials observed.
	Successes int64
	// Batches is the number of batches folded into the summary.
	Batches int
	// Flips is the trial length.
	Flips int
	// Probability is the theoretical success probability (1/2)^Flips.
	Probability float64
	// Expected is the theoretical expected number of successes.
	Expected float64
	// Deviation is (Successes - Expected) / Expected in percent, or 0 when
	// nothing was expected.
	Deviation float64
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// BatchStats describes the spread of per-batch success counts.
	BatchStats BatchStats
}

// ObservedRate returns Successes / Total, or 0 for an empty run.
func (s Summary) ObservedRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Total)
}

// TheoreticalProbability returns (1/2)^flips.
func TheoreticalProbability(flips int) float64 {
	return math.Ldexp(1, -flips)
}

// ExpectedSuccesses returns total × (1/2)^flips.
func ExpectedSuccesses(total int64, flips int) float64 {
	return float64(total) * TheoreticalProbability(flips)
}

// RelativeDeviation returns (observed - expected) / expected in percent.
// It is 0 when expected is 0.
func RelativeDeviation(observed int64, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return (float64(observed) - expected) / expected * 100
}

// Accumulator folds batch results into running totals. It is owned by a
// single coordinating goroutine and is not safe for concurrent use.
type Accumulator struct {
	total     int64
	flips     int
	trials    int64
	successes int64
	counts    []float64
}

// NewAccumulator prepares a fold for a run of total trials split into the
// given number of batches.
func NewAccumulator(total int64, flips, batches int) *Accumulator {
	return &Accumulator{
		total:  total,
		flips:  flips,
		counts: make([]float64, 0, batches),
	}
}

// Add folds one batch result into the running totals.
func (a *Accumulator) Add(r BatchResult) {
	a.trials += r.Size
	a.successes += r.Successes
	a.counts = append(a.counts, float64(r.Successes))
}

// Trials returns the number of trials folded so far.
func (a *Accumulator) Trials() int64 { return a.trials }

// Successes returns the running success count.
func (a *Accumulator) Successes() int64 { return a.successes }

// Completed returns the number of batches folded so far.
func (a *Accumulator) Completed() int { return len(a.counts) }

// Summary computes the run summary from the current totals.
func (a *Accumulator) Summary(elapsed time.Duration) Summary {
	expected := ExpectedSuccesses(a.total, a.flips)
	return Summary{
		Total:       a.total,
		Successes:   a.successes,
		Batches:     len(a.counts),
		Flips:       a.flips,
		Probability: TheoreticalProbability(a.flips),
		Expected:    expected,
		Deviation:   RelativeDeviation(a.successes, expected),
		Duration:    elapsed,
		BatchStats:  DescribeBatches(a.counts),
	}
}
