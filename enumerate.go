package wavepick

import (
	"math"
	"sync"
	"time"
)

// FixedKEnumerator runs the small-corridor branch (§4.E): one
// FIXED_K(k) sub-solve per k in 1..C, independent and run in parallel
// with bounded fan-out. Each candidate is offered to Tracker
// regardless of whether it improves the incumbent — Offer is
// responsible for the comparison.
type FixedKEnumerator struct {
	Engine  Engine
	Budget  *TimeBudget
	Tracker *SolutionTracker

	PoolSize             int
	PerSubsolveTimeSmall time.Duration
	TotalThreads         int

	// PruneDominated enables §4.A dominated-corridor pruning: every
	// FIXED_K(k) sub-solve fixes dominated corridors' Y_c to 0.
	PruneDominated bool
}

// Run launches FIXED_K(k) for every k in 1..idx.C, bounded to PoolSize
// concurrent sub-solves, and waits up to the heuristic join deadline of
// §4.E before discarding whatever has not finished.
func (e *FixedKEnumerator) Run(idx *ProblemIndex) {
	if idx.C == 0 {
		return
	}

	pool := e.PoolSize
	if pool < 1 {
		pool = 1
	}
	perSolveThreads := e.TotalThreads / pool
	if perSolveThreads < 1 {
		perSolveThreads = 1
	}

	timeLimitSec := e.PerSubsolveTimeSmall.Seconds()
	batches := int(math.Ceil(float64(idx.C) / float64(pool)))
	joinDeadline := time.Duration(timeLimitSec*float64(batches))*time.Second + time.Second
	if remaining := e.Budget.Remaining(); remaining < joinDeadline {
		joinDeadline = remaining
	}

	var fixedZero []bool
	if e.PruneDominated {
		fixedZero = idx.DominatedCorridors()
	}

	sem := make(chan struct{}, pool)
	var wg sync.WaitGroup
	done := make(chan struct{})

	for k := 1; k <= idx.C; k++ {
		k := k
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			limit := e.Budget.RemainingSec()
			if timeLimitSec > 0 && timeLimitSec < limit {
				limit = timeLimitSec
			}
			if limit <= 0 {
				return
			}

			cfg := SubsolveConfig{
				Variant:            VariantFixedK,
				TargetK:            k,
				TimeLimitSec:       limit,
				Threads:            perSolveThreads,
				FixedZeroCorridors: fixedZero,
			}
			res, err := e.Engine.Solve(idx, cfg)
			if err != nil || !res.Feasible {
				return
			}
			e.Tracker.Offer(res)
		}()
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(joinDeadline):
		// Unfinished sub-solves are discarded; whatever each already
		// offered stands (§5 Cancellation & timeouts).
	}
}
