package wavepick

import "sync"

// SolutionTracker holds the best candidate observed so far across
// concurrent sub-solves (§4.G). Its Offer method is the sole mutable
// shared state during a Solve run; the critical section is a handful
// of comparisons, so a plain mutex suffices (§5) rather than a
// lock-free structure — the corpus has no lock-free primitive to
// ground one on, and a short-lived lock is the idiomatic Go default.
type SolutionTracker struct {
	mu    sync.Mutex
	ratio float64
	best  Candidate
	have  bool
}

// NewSolutionTracker returns a tracker with the initial empty state:
// ratio = -1, no selection.
func NewSolutionTracker() *SolutionTracker {
	return &SolutionTracker{ratio: -1}
}

// Offer atomically replaces the incumbent iff the candidate is
// feasible and strictly improves on the current best ratio. Ties keep
// the incumbent (§4.G, §5 ordering guarantees).
func (t *SolutionTracker) Offer(c Candidate) {
	if !c.Feasible {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if c.Ratio > t.ratio {
		t.ratio = c.Ratio
		t.best = c
		t.have = true
	}
}

// Best returns the current incumbent and whether any feasible
// candidate has ever been offered.
func (t *SolutionTracker) Best() (Candidate, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best, t.have
}
