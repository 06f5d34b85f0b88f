package tui

// successBlocks are the sparkline glyphs from an empty batch to the window peak.
var successBlocks = []rune("▁▂▃▄▅▆▇█")

// SuccessWindow holds the success counts of the most recent batches, oldest
// first, bounded by the width of the dashboard row that draws them.
type SuccessWindow struct {
	counts []int64
	width  int
}

// NewSuccessWindow returns an empty window holding at most width batches.
func NewSuccessWindow(width int) *SuccessWindow {
	w := &SuccessWindow{}
	w.SetWidth(width)
	return w
}

// Record appends the success count of a finished batch, evicting the oldest
// count once the window is full.
func (w *SuccessWindow) Record(successes int64) {
	if len(w.counts) < w.width {
		w.counts = append(w.counts, successes)
		return
	}
	copy(w.counts, w.counts[1:])
	w.counts[len(w.counts)-1] = successes
}

// SetWidth changes how many batches the window keeps. Shrinking drops the
// oldest counts.
func (w *SuccessWindow) SetWidth(width int) {
	w.width = max(width, 1)
	if drop := len(w.counts) - w.width; drop > 0 {
		w.counts = append(w.counts[:0], w.counts[drop:]...)
	}
}

// Width returns the maximum number of batches kept.
func (w *SuccessWindow) Width() int { return w.width }

// Counts returns a copy of the kept success counts, oldest first.
func (w *SuccessWindow) Counts() []int64 {
	return append([]int64(nil), w.counts...)
}

// Sparkline renders the window with one block per batch.
func (w *SuccessWindow) Sparkline() string { return renderSparkline(w.counts) }

// renderSparkline scales each count against the largest in counts, so the
// best batch in view draws the full block. Batches with no success, and a
// window with no success at all, draw the lowest block.
func renderSparkline(counts []int64) string {
	var peak int64
	for _, c := range counts {
		peak = max(peak, c)
	}
	top := len(successBlocks) - 1
	out := make([]rune, len(counts))
	for i, c := range counts {
		level := 0
		if peak > 0 && c > 0 {
			level = min(int(float64(c)/float64(peak)*float64(top)+0.5), top)
		}
		out[i] = successBlocks[level]
	}
	return string(out)
}
