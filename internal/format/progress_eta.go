package format

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

const (
	// etaSmoothing is the weight of the newest rate sample in the moving average.
	etaSmoothing = 0.3
	// maxETA caps estimates produced from very slow early rates.
	maxETA = 24 * time.Hour
	// minSampleInterval is the shortest gap between two rate samples.
	minSampleInterval = 100 * time.Millisecond
)

// ProgressWithETA tracks the completed fraction of a run and estimates the
// remaining time from an exponential moving average of the progress rate.
// It is safe for concurrent use.
type ProgressWithETA struct {
	mu           sync.Mutex
	progress     float64
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // fraction per second
	now          func() time.Time
}

// NewProgressWithETA creates a tracker whose clock starts now.
func NewProgressWithETA() *ProgressWithETA {
	return newProgressWithClock(time.Now)
}

func newProgressWithClock(now func() time.Time) *ProgressWithETA {
	start := now()
	return &ProgressWithETA{startTime: start, lastUpdate: start, now: now}
}

// Update records the completed fraction, clamped to [0, 1], and returns it
// together with the current ETA.
func (p *ProgressWithETA) Update(fraction float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.progress = clamp01(fraction)
	now := p.now()
	if elapsed := now.Sub(p.lastUpdate); elapsed >= minSampleInterval {
		rate := (p.progress - p.lastProgress) / elapsed.Seconds()
		if rate > 0 {
			if p.progressRate == 0 {
				p.progressRate = rate
			} else {
				p.progressRate = etaSmoothing*rate + (1-etaSmoothing)*p.progressRate
			}
		}
		p.lastUpdate = now
		p.lastProgress = p.progress
	}
	return p.progress, p.etaLocked()
}

// Progress returns the last recorded fraction.
func (p *ProgressWithETA) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// GetETA returns the estimated remaining time, or 0 while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked()
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressWithETA) Elapsed() time.Duration {
	return p.now().Sub(p.startTime)
}

func (p *ProgressWithETA) etaLocked() time.Duration {
	if p.progressRate <= 0 || p.progress >= 1 {
		return 0
	}
	seconds := (1 - p.progress) / p.progressRate
	if seconds > maxETA.Seconds() || math.IsInf(seconds, 0) {
		return maxETA
	}
	return time.Duration(seconds * float64(time.Second))
}

// FormatETA renders an ETA for display. Durations of zero or less mean the
// estimate is not available yet.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		if s := int(eta.Seconds()) % 60; s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h := int(eta.Hours())
		if m := int(eta.Minutes()) % 60; m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}

// ProgressBar renders a bar of the given length using block characters.
func ProgressBar(progress float64, length int) string {
	if length <= 0 {
		return ""
	}
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders the bar, the percentage and the ETA on one line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	etaText := FormatETA(eta)
	if progress >= 1 {
		etaText = "done"
	}
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), clamp01(progress)*100, etaText)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
