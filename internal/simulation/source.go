//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

package simulation

import (
	"math/rand/v2"
	"time"
)

// Source is a stream of uniformly distributed floats in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// SourceFactory hands out the random source used by one batch.
// Implementations must return independent sources for distinct indices and
// must be safe for concurrent use.
type SourceFactory interface {
	ForBatch(index int) Source
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() float64

// Float64 calls f.
func (f SourceFunc) Float64() float64 { return f() }

// PCGFactory derives one PCG stream per batch from a run seed. The stream of
// batch i depends only on (Seed, i), so a seeded run produces the same total
// no matter how many workers execute it or in which order batches finish.
type PCGFactory struct {
	Seed uint64
}

// NewPCGFactory returns a factory for the given run seed.
func NewPCGFactory(seed uint64) PCGFactory {
	return PCGFactory{Seed: seed}
}

// ForBatch returns a fresh PCG-backed source for batch index.
func (f PCGFactory) ForBatch(index int) Source {
	return rand.New(rand.NewPCG(f.Seed, mix64(uint64(index)+1)))
}

// seedFunc returns the raw entropy for NewSeed (override in tests for determinism).
var seedFunc = func() uint64 { return uint64(time.Now().UnixNano()) }

// NewSeed returns a non-zero run seed derived from the clock.
func NewSeed() uint64 {
	if s := mix64(seedFunc()); s != 0 {
		return s
	}
	return 1
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
