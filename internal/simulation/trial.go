package simulation

// RunTrial simulates one person flipping a coin up to flips times.
// It returns false on the first tails without consuming further draws, and
// true only when every flip came up heads.
func RunTrial(src Source, flips int) bool {
	for i := 0; i < flips; i++ {
		if src.Float64() < HeadsThreshold {
			return false
		}
	}
	return true
}

// RunBatch runs size independent trials sequentially on src and returns the
// number of successes, always in [0, size]. A non-positive size yields 0.
func RunBatch(src Source, size int64, flips int) int64 {
	var successes int64
	for i := int64(0); i < size; i++ {
		if RunTrial(src, flips) {
			successes++
		}
	}
	return successes
}
