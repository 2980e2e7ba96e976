package wavepick_test

import (
	"sync"
	"sync/atomic"

	"git.solver4all.com/azaryc2s/wavepick"
)

// mockEngine is a wavepick.Engine stand-in used throughout this
// package's tests, since the real engine.Gurobi cannot be exercised
// without a Gurobi installation. It delegates every Solve call to a
// caller-supplied function, mirroring how the teacher's own SolveOP is
// a single, swappable build-solve-extract call the rest of its drivers
// treat opaquely.
type mockEngine struct {
	mu     sync.Mutex
	calls  int32
	solveFn func(idx *wavepick.ProblemIndex, cfg wavepick.SubsolveConfig) (wavepick.Candidate, error)
}

func (m *mockEngine) Solve(idx *wavepick.ProblemIndex, cfg wavepick.SubsolveConfig) (wavepick.Candidate, error) {
	atomic.AddInt32(&m.calls, 1)
	m.mu.Lock()
	fn := m.solveFn
	m.mu.Unlock()
	return fn(idx, cfg)
}

func (m *mockEngine) callCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

// fixedKEngine answers every FIXED_K(k) sub-solve with a feasible
// candidate whose ratio is k-dependent, so tests can assert which k
// the tracker converges on without a real solver.
func fixedKEngine(ratioForK map[int]float64) *mockEngine {
	return &mockEngine{
		solveFn: func(idx *wavepick.ProblemIndex, cfg wavepick.SubsolveConfig) (wavepick.Candidate, error) {
			ratio, ok := ratioForK[cfg.TargetK]
			if !ok {
				return wavepick.Candidate{Feasible: false}, nil
			}
			corridors := make([]int, cfg.TargetK)
			for i := range corridors {
				corridors[i] = i
			}
			return wavepick.Candidate{
				Feasible:   true,
				Orders:     []int{0},
				Corridors:  corridors,
				TotalItems: int(ratio * float64(cfg.TargetK)),
				Ratio:      ratio,
			}, nil
		},
	}
}
