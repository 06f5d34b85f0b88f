package simulation

import (
	"github.com/montanaflynn/stats"
)

// BatchStats summarizes the distribution of per-batch success counts.
// With fair coins each count is approximately Poisson distributed, so Mean and
// StdDev² should both sit near batchSize / 2^flips.
type BatchStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// DescribeBatches computes descriptive statistics over per-batch success
// counts. An empty input yields a zero BatchStats.
func DescribeBatches(counts []float64) BatchStats {
	if len(counts) == 0 {
		return BatchStats{}
	}
	data := stats.Float64Data(counts)

	// The stats package only reports stats.EmptyInputErr, ruled out above.
	var s BatchStats
	s.Mean, _ = data.Mean()
	s.StdDev, _ = data.StandardDeviation()
	s.Min, _ = data.Min()
	s.Max, _ = data.Max()
	s.Median, _ = data.Median()
	return s
}
