package simulation

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRunBatch_WithinRange_PropertyBased verifies that for every size >= 0 the
// batch result lies in [0, size].
func TestRunBatch_WithinRange_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("RunBatch(size) ∈ [0, size]", prop.ForAll(
		func(size int64, flips int, seed uint64) bool {
			got := RunBatch(NewPCGFactory(seed).ForBatch(0), size, flips)
			return got >= 0 && got <= size
		},
		gen.Int64Range(0, 5000),
		gen.IntRange(0, 6),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestRunBatch_PointwiseSum_PropertyBased verifies that a batch result equals
// the number of successful trials among size independent RunTrial calls on an
// identically seeded source.
func TestRunBatch_PointwiseSum_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("RunBatch equals the count of successful trials", prop.ForAll(
		func(size int64, flips int, seed uint64) bool {
			batchSrc := NewPCGFactory(seed).ForBatch(1)
			trialSrc := NewPCGFactory(seed).ForBatch(1)

			var count int64
			for i := int64(0); i < size; i++ {
				if RunTrial(trialSrc, flips) {
					count++
				}
			}
			return RunBatch(batchSrc, size, flips) == count
		},
		gen.Int64Range(0, 3000),
		gen.IntRange(1, 5),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestPartition_Invariants_PropertyBased verifies that batch sizes sum to the
// total, every batch but the last is full, the last holds the remainder, and
// indices follow submission order.
func TestPartition_Invariants_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Partition preserves the total exactly", prop.ForAll(
		func(total, batchSize int64) bool {
			batches, err := Partition(total, batchSize)
			if err != nil {
				t.Logf("Partition(%d, %d): %v", total, batchSize, err)
				return false
			}
			if len(batches) != BatchCount(total, batchSize) {
				return false
			}

			var sum int64
			for i, b := range batches {
				if b.Index != i || b.Size <= 0 || b.Size > batchSize {
					return false
				}
				if i < len(batches)-1 && b.Size != batchSize {
					return false
				}
				sum += b.Size
			}
			return sum == total
		},
		gen.Int64Range(0, 1_000_000),
		gen.Int64Range(1, 50_000),
	))

	properties.TestingRun(t)
}

// TestPartition_Boundaries covers the explicit edge cases.
func TestPartition_Boundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		total     int64
		batchSize int64
		wantSizes []int64
		wantErr   bool
	}{
		{name: "zero total yields no batches", total: 0, batchSize: 10, wantSizes: nil},
		{name: "zero total ignores batch size", total: 0, batchSize: 0, wantSizes: nil},
		{name: "batch larger than total", total: 7, batchSize: 100, wantSizes: []int64{7}},
		{name: "exact division", total: 9, batchSize: 3, wantSizes: []int64{3, 3, 3}},
		{name: "remainder as final batch", total: 10, batchSize: 4, wantSizes: []int64{4, 4, 2}},
		{name: "default run", total: DefaultTotal, batchSize: DefaultBatchSize},
		{name: "negative total", total: -1, batchSize: 10, wantErr: true},
		{name: "zero batch size", total: 10, batchSize: 0, wantErr: true},
		{name: "negative batch size", total: 10, batchSize: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			batches, err := Partition(tt.total, tt.batchSize)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Partition() err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.name == "default run" {
				if len(batches) != 300 {
					t.Errorf("default run: %d batches, want 300", len(batches))
				}
				return
			}
			if len(batches) != len(tt.wantSizes) {
				t.Fatalf("got %d batches, want %d", len(batches), len(tt.wantSizes))
			}
			for i, b := range batches {
				if b.Size != tt.wantSizes[i] {
					t.Errorf("batch %d size = %d, want %d", i, b.Size, tt.wantSizes[i])
				}
			}
		})
	}
}

// TestNewSeed verifies that the clock-derived seed is mixed and never zero.
func TestNewSeed(t *testing.T) {
	orig := seedFunc
	t.Cleanup(func() { seedFunc = orig })

	seedFunc = func() uint64 { return 12345 }
	a := NewSeed()
	b := NewSeed()
	if a != b {
		t.Errorf("NewSeed should be deterministic for a fixed clock, got %d and %d", a, b)
	}
	if a == 0 || a == 12345 {
		t.Errorf("NewSeed should mix the raw value, got %d", a)
	}

	seedFunc = func() uint64 { return 0 }
	if NewSeed() == 0 {
		t.Error("NewSeed must never return 0")
	}
}
