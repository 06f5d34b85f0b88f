// Package metrics collects runtime memory readings and Prometheus run metrics.
package metrics

import (
	"fmt"
	"runtime"

	"github.com/agbru/coinsim/internal/format"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics. The zero value is ready
// to use; Start records the baseline that Since compares against.
type MemoryCollector struct {
	baseline MemorySnapshot
}

// NewMemoryCollector creates a collector whose baseline is the current reading.
func NewMemoryCollector() *MemoryCollector {
	mc := &MemoryCollector{}
	mc.Start()
	return mc
}

// Start resets the baseline to the current reading.
func (mc *MemoryCollector) Start() {
	mc.baseline = mc.Snapshot()
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Since returns the current reading with the GC counters made relative to
// the baseline, so they describe only the work done since Start.
func (mc *MemoryCollector) Since() MemorySnapshot {
	s := mc.Snapshot()
	s.NumGC -= min(s.NumGC, mc.baseline.NumGC)
	s.PauseTotalNs -= min(s.PauseTotalNs, mc.baseline.PauseTotalNs)
	return s
}

// String renders the snapshot on one line for the verbose summary.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap %s, sys %s, %d GC (%.2fms paused)",
		format.FormatBytes(s.HeapAlloc), format.FormatBytes(s.Sys), s.NumGC, float64(s.PauseTotalNs)/1e6)
}
