package simulation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheoreticalProbability(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0/1048576.0, TheoreticalProbability(20))
	assert.Equal(t, 0.5, TheoreticalProbability(1))
	assert.Equal(t, 1.0, TheoreticalProbability(0))
}

func TestExpectedSuccesses(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, ExpectedSuccesses(1<<20, 20))
	assert.Equal(t, 0.0, ExpectedSuccesses(0, 20))
	assert.InDelta(t, 286.102, ExpectedSuccesses(DefaultTotal, DefaultFlips), 0.001)
}

func TestRelativeDeviation(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, RelativeDeviation(0, 0))
	assert.Equal(t, 0.0, RelativeDeviation(5, 0))
	assert.Equal(t, 100.0, RelativeDeviation(2, 1))
	assert.Equal(t, -50.0, RelativeDeviation(1, 2))
}

func TestAccumulator_FoldsEveryBatch(t *testing.T) {
	t.Parallel()
	results := []BatchResult{
		{Index: 2, Size: 100, Successes: 3},
		{Index: 0, Size: 100, Successes: 0},
		{Index: 1, Size: 50, Successes: 5},
	}

	acc := NewAccumulator(250, 2, len(results))
	for _, r := range results {
		acc.Add(r)
	}

	require.Equal(t, 3, acc.Completed())
	assert.Equal(t, int64(250), acc.Trials())
	assert.Equal(t, int64(8), acc.Successes())

	s := acc.Summary(time.Second)
	assert.Equal(t, int64(250), s.Total)
	assert.Equal(t, int64(8), s.Successes)
	assert.Equal(t, 3, s.Batches)
	assert.Equal(t, 0.25, s.Probability)
	assert.Equal(t, 62.5, s.Expected)
	assert.InDelta(t, (8-62.5)/62.5*100, s.Deviation, 1e-9)
	assert.Equal(t, time.Second, s.Duration)
	assert.InDelta(t, 8.0/250.0, s.ObservedRate(), 1e-12)
	assert.Equal(t, 0.0, s.BatchStats.Min)
	assert.Equal(t, 5.0, s.BatchStats.Max)
	assert.Equal(t, 3.0, s.BatchStats.Median)
}

func TestAccumulator_EmptyRun(t *testing.T) {
	t.Parallel()
	s := NewAccumulator(0, DefaultFlips, 0).Summary(0)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Successes)
	assert.Zero(t, s.Batches)
	assert.Zero(t, s.Expected)
	assert.Zero(t, s.Deviation)
	assert.Zero(t, s.ObservedRate())
	assert.Equal(t, BatchStats{}, s.BatchStats)
}

func TestDescribeBatches(t *testing.T) {
	t.Parallel()
	counts := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	got := DescribeBatches(counts)

	assert.Equal(t, 5.0, got.Mean)
	assert.Equal(t, 2.0, got.StdDev)
	assert.Equal(t, 2.0, got.Min)
	assert.Equal(t, 9.0, got.Max)
	assert.Equal(t, 4.5, got.Median)
	assert.Equal(t, []float64{2, 4, 4, 4, 5, 5, 7, 9}, counts, "input must not be reordered")

	assert.Equal(t, BatchStats{}, DescribeBatches(nil))
	assert.Equal(t, BatchStats{}, DescribeBatches([]float64{}))

	single := DescribeBatches([]float64{3})
	assert.Equal(t, 3.0, single.Mean)
	assert.False(t, math.IsNaN(single.StdDev))
}
