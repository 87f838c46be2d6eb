package progression

import "sort"

// Rung is a single named threshold on a ladder.
type Rung struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Threshold int64  `json:"threshold"`
}

// Ladder is a strictly ascending sequence of thresholds over cumulative energy.
// Both the milestone and the power tier ladders are built on it.
type Ladder struct {
	rungs []Rung
}

// NewLadder builds a ladder from rungs. Rungs are sorted by threshold,
// and it panics on duplicated thresholds, since a ladder with equal steps
// cannot order progress.
func NewLadder(rungs []Rung) *Ladder {
	sorted := make([]Rung, len(rungs))
	copy(sorted, rungs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Threshold == sorted[i-1].Threshold {
			panic("progression: duplicate ladder threshold " + sorted[i].Name)
		}
	}
	return &Ladder{rungs: sorted}
}

func (l *Ladder) Rungs() []Rung {
	out := make([]Rung, len(l.rungs))
	copy(out, l.rungs)
	return out
}

func (l *Ladder) Len() int {
	return len(l.rungs)
}

// index of the first rung with threshold > total
func (l *Ladder) upperIndex(total int64) int {
	return sort.Search(len(l.rungs), func(i int) bool {
		return l.rungs[i].Threshold > total
	})
}

// Current returns the highest rung whose threshold is <= total.
func (l *Ladder) Current(total int64) (Rung, bool) {
	i := l.upperIndex(total)
	if i == 0 {
		return Rung{}, false
	}
	return l.rungs[i-1], true
}

// Next returns the lowest rung whose threshold is > total.
// Returns false when the ladder is exhausted.
func (l *Ladder) Next(total int64) (Rung, bool) {
	i := l.upperIndex(total)
	if i >= len(l.rungs) {
		return Rung{}, false
	}
	return l.rungs[i], true
}

// Progress is the fraction of the way from the current rung to the next one, in [0, 1].
// It is 1 once the ladder is exhausted, and 0 while no rung has been reached yet.
func (l *Ladder) Progress(total int64) float64 {
	next, ok := l.Next(total)
	if !ok {
		return 1
	}
	current, ok := l.Current(total)
	if !ok {
		return 0
	}
	return clamp01(float64(total-current.Threshold) / float64(next.Threshold-current.Threshold))
}

// Remaining returns how many joules are missing to reach the next rung.
// The second value is false when the max level is reached.
func (l *Ladder) Remaining(total int64) (int64, bool) {
	next, ok := l.Next(total)
	if !ok {
		return 0, false
	}
	return next.Threshold - total, true
}

// Crossed reports the highest rung with a threshold in (previousTotal, newTotal].
// Several rungs crossed at once collapse to the topmost one.
func (l *Ladder) Crossed(previousTotal, newTotal int64) (Rung, bool) {
	if newTotal <= previousTotal {
		return Rung{}, false
	}
	current, ok := l.Current(newTotal)
	if !ok || current.Threshold <= previousTotal {
		return Rung{}, false
	}
	return current, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
