package simulation

// ─────────────────────────────────────────────────────────────────────────────
// Simulation Defaults
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultTotal is the population simulated when no override is given.
	DefaultTotal int64 = 300_000_000

	// DefaultBatchSize is the number of trials handed to a worker at once.
	// One million keeps per-batch overhead negligible while still producing
	// a few hundred progress lines for the default population.
	DefaultBatchSize int64 = 1_000_000

	// DefaultFlips is the number of consecutive heads a trial needs.
	DefaultFlips = 20

	// MaxFlips bounds the trial length so that 2^flips stays exactly
	// representable as a float64 power of two.
	MaxFlips = 62

	// HeadsThreshold splits a uniform draw in [0, 1) into tails (< 0.5)
	// and heads (>= 0.5), giving each side probability exactly 0.5.
	HeadsThreshold = 0.5
)
