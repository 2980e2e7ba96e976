package wavepick

import (
	"log"
	"time"
)

// Solve is the §6 programmatic entry point. It dispatches to the
// enumeration branch (§4.E) when corridors are few, otherwise to the
// Dinkelbach branch (§4.D), and returns the best candidate's index
// sets, or (nil, nil) if nothing feasible was ever found (§7
// InstanceInfeasible).
//
// No error escapes Solve except programmer-contract violations; every
// solver-side failure mode (§7: InfeasibleSubsolve, SolverAbnormal,
// WarmStartRejected, DeadlineExceeded) is absorbed internally and
// reflected only in the returned selection being empty or not.
func Solve(engine Engine, orders, corridors []ItemQty, numItems, lBound, uBound int, cfg Config) (orderIdx, corridorIdx []int) {
	idx := NewProblemIndex(orders, corridors, numItems, lBound, uBound)
	budget := NewTimeBudget(cfg.MaxWallClock)
	tracker := NewSolutionTracker()

	runOnce(engine, idx, budget, tracker, cfg, fallbackSeed)

	best, ok := tracker.Best()
	if !ok {
		return nil, nil
	}
	if err := Validate(idx, best.Orders, best.Corridors); err != nil {
		log.Printf("wavepick: incumbent failed validation: %s\n", err.Error())
	}
	return best.Orders, best.Corridors
}

// SolveDetailed is Solve plus the bookkeeping cmd/solve needs for its
// report: which branch ran, how long, and a Validate outcome.
func SolveDetailed(engine Engine, orders, corridors []ItemQty, numItems, lBound, uBound int, cfg Config, sys SysInfo) ChallengeSolution {
	idx := NewProblemIndex(orders, corridors, numItems, lBound, uBound)
	budget := NewTimeBudget(cfg.MaxWallClock)
	tracker := NewSolutionTracker()

	branch := runOnce(engine, idx, budget, tracker, cfg, fallbackSeed)
	elapsed := budget.Elapsed()

	best, ok := tracker.Best()
	if !ok {
		sol := BuildChallengeSolution(idx, nil, nil, branch, elapsed, sys)
		sol.Comment = "no feasible wave found"
		return sol
	}
	sol := BuildChallengeSolution(idx, best.Orders, best.Corridors, branch, elapsed, sys)
	if err := Validate(idx, best.Orders, best.Corridors); err != nil {
		sol.Comment = "validation warning: " + err.Error()
	} else {
		sol.Optimal = true
	}
	return sol
}

// SolveWithRestarts reproduces the CPLEX "development" variant's
// MAX_RESTARTS outer loop (see SPEC_FULL.md, "Supplemented features"
// #3): it repeats branch selection up to n times, keeping the best
// candidate across all restarts. n=1 is equivalent to Solve.
//
// Each restart's Dinkelbach branch gets a distinct LPWarmStart fallback
// seed (fallbackSeed+restart) instead of always 2112, so repeated
// restarts don't all fall back to the identical lambda when the LP
// relaxation degenerates — see DESIGN.md's Open Questions. This only
// diversifies the fallback path: whenever the LP relaxation itself
// solves successfully, lambda is derived from its (deterministic)
// result regardless of seed, so a deterministic Engine converges on the
// same incumbent across restarts unless the fallback path is hit or
// the enumeration branch's bounded join deadline discards a different
// subset of sub-solves each time.
func SolveWithRestarts(engine Engine, orders, corridors []ItemQty, numItems, lBound, uBound, n int, cfg Config) (orderIdx, corridorIdx []int) {
	if n < 1 {
		n = 1
	}
	idx := NewProblemIndex(orders, corridors, numItems, lBound, uBound)
	budget := NewTimeBudget(cfg.MaxWallClock)
	tracker := NewSolutionTracker()

	for restart := 0; restart < n && budget.Remaining().Milliseconds() > 2000; restart++ {
		runOnce(engine, idx, budget, tracker, cfg, fallbackSeed+int64(restart))
	}

	best, ok := tracker.Best()
	if !ok {
		return nil, nil
	}
	return best.Orders, best.Corridors
}

func runOnce(engine Engine, idx *ProblemIndex, budget *TimeBudget, tracker *SolutionTracker, cfg Config, lambdaSeed int64) string {
	if idx.C <= cfg.SmallCorridorThreshold {
		(&FixedKEnumerator{
			Engine:               engine,
			Budget:               budget,
			Tracker:              tracker,
			PoolSize:             cfg.ParallelPoolSize,
			PerSubsolveTimeSmall: cfg.PerSubsolveTimeSmall,
			TotalThreads:         cfg.SolverThreads,
			PruneDominated:       cfg.PruneDominatedCorridors,
		}).Run(idx)
		return "enumerate"
	}

	(&DinkelbachDriver{
		Engine:         engine,
		Budget:         budget,
		Tracker:        tracker,
		MaxIters:       cfg.MaxDinkelbachIters,
		LPIterCap:      cfg.LPIterCap,
		PruneDominated: cfg.PruneDominatedCorridors,
		Seed:           lambdaSeed,
	}).Run(idx)
	return "dinkelbach"
}

// BuildChallengeSolution assembles the reportable ChallengeSolution
// from a Solve() result, attaching branch/time/system metadata the way
// the teacher's solver/main.go attaches sol.Time/sol.System/sol.Route.
func BuildChallengeSolution(idx *ProblemIndex, orders, corridors []int, branch string, elapsed time.Duration, sys SysInfo) ChallengeSolution {
	if orders == nil && corridors == nil {
		return ChallengeSolution{Branch: branch, Time: elapsed.String(), System: sys}
	}
	total := 0
	for _, o := range orders {
		total += idx.UnitsPerOrder(o)
	}
	ratio := 0.0
	if len(corridors) > 0 {
		ratio = float64(total) / float64(len(corridors))
	}
	return ChallengeSolution{
		Orders:     orders,
		Corridors:  corridors,
		TotalItems: total,
		Ratio:      ratio,
		Branch:     branch,
		Time:       elapsed.String(),
		System:     sys,
	}
}
