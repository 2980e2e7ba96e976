package wavepick

import "math"

// DinkelbachDriver runs the large-corridor branch (§4.D): the outer
// parametric loop on the integer DINKELBACH(lambda) formulation,
// seeded by LPWarmStart and offering every iteration's candidate to
// tracker. It returns once the iteration cap is hit, the time budget
// is exhausted, lambda converges, or a sub-solve yields k=0 or goes
// infeasible.
type DinkelbachDriver struct {
	Engine  Engine
	Budget  *TimeBudget
	Tracker *SolutionTracker
	MaxIters  int
	LPIterCap int

	// PruneDominated enables §4.A dominated-corridor pruning: every
	// sub-solve this driver issues fixes dominated corridors' Y_c to 0.
	PruneDominated bool

	// Seed controls LPWarmStart's fallback draw (see LPWarmStart). Left
	// zero it defaults to fallbackSeed; SolveWithRestarts sets a
	// distinct value per restart.
	Seed int64
}

// Run executes the loop described in spec.md §4.D against idx.
func (d *DinkelbachDriver) Run(idx *ProblemIndex) {
	seedVal := d.Seed
	if seedVal == 0 {
		seedVal = fallbackSeed
	}
	var fixedZero []bool
	if d.PruneDominated {
		fixedZero = idx.DominatedCorridors()
	}

	seed := LPWarmStart(d.Engine, idx, d.Budget, d.LPIterCap, seedVal, fixedZero)
	lambda := seed.Lambda
	if math.IsInf(lambda, 1) {
		// Denominator collapsed during warm-start; nothing useful to
		// seed the integer loop with, fall back to 0.
		lambda = 0
	}
	prev := seed.X

	for iter := 0; iter < d.MaxIters && d.Budget.Remaining().Milliseconds() > 2000; iter++ {
		cfg := SubsolveConfig{
			Variant:            VariantDinkelbach,
			Lambda:             lambda,
			TimeLimitSec:       d.Budget.RemainingSec(),
			WarmStart:          prev,
			FixedZeroCorridors: fixedZero,
		}
		res, err := d.Engine.Solve(idx, cfg)
		if err != nil || !res.Feasible {
			break
		}

		d.Tracker.Offer(res)

		if len(res.Corridors) == 0 {
			break
		}

		newLambda := float64(res.TotalItems) / float64(len(res.Corridors))
		if math.Abs(newLambda-lambda) < 1e-3 {
			break
		}
		lambda = newLambda
		prev = &Assignment{Orders: res.Orders, Corridors: res.Corridors}
	}
}
