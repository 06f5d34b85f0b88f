package tui

import (
	"time"

	"github.com/agbru/coinsim/internal/orchestration"
	"github.com/agbru/coinsim/internal/simulation"
)

// BatchMsg carries one folded batch from the orchestration layer.
type BatchMsg struct {
	Progress orchestration.BatchProgress
}

// ProgressDoneMsg is sent when the progress channel has been closed.
type ProgressDoneMsg struct{}

// RunDoneMsg is sent when ExecuteRun has returned.
type RunDoneMsg struct {
	Summary simulation.Summary
	Err     error
}

// TickMsg drives the elapsed timer and resource sampling.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
