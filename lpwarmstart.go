package wavepick

import (
	"math"
	"math/rand"
)

// fallbackSeed is the literal value the Java source's MAX_RESTARTS loop
// seeds its Random with (`new Random(2112)`); we carry it over verbatim
// per §9's reproducibility note.
const fallbackSeed = 2112

// LPWarmStartResult is the seed produced by LPWarmStart: a Dinkelbach
// lambda and the fractional point it converged to (or started from, on
// failure).
type LPWarmStartResult struct {
	Lambda    float64
	X         *Assignment // fractional point reinterpreted as a 0/1 hint, may be nil
	FromSolve bool        // false when the LP solver failed and the fallback random lambda was used
}

// LPWarmStart runs the Dinkelbach recurrence against the LP relaxation
// (§4.C), reusing a single persistent LP model across iterations and
// swapping only its objective between solves — the constraints (wave
// size + item balance) never change across iterations, mirroring how
// lp-sym/main.go and lp-asym/main.go in the teacher repo reuse one
// Gurobi environment across writes instead of rebuilding it.
//
// fixedZero, when non-nil, is threaded into every LP_RELAX sub-solve as
// §4.A's dominated-corridor mask. seed controls the fallback draw below
// — SolveWithRestarts varies it per restart so repeated restarts over a
// deterministic Engine don't all collapse onto the identical fallback
// lambda.
//
// On any LP solve failure, LPWarmStart falls back to a pseudo-random
// lambda uniform on [0, U) seeded with seed, for reproducibility with
// the source (§4.C, §9).
func LPWarmStart(engine Engine, idx *ProblemIndex, budget *TimeBudget, lpIterCap int, seed int64, fixedZero []bool) LPWarmStartResult {
	lambda := 0.0
	var lastX, lastY []int

	for iter := 0; iter < lpIterCap && budget.Remaining().Milliseconds() > 100; iter++ {
		cfg := SubsolveConfig{
			Variant:            VariantLPRelax,
			Lambda:             lambda,
			TimeLimitSec:       budget.RemainingSec(),
			FixedZeroCorridors: fixedZero,
		}
		cand, err := engine.Solve(idx, cfg)
		if err != nil || !cand.Feasible {
			break
		}

		lastX, lastY = cand.Orders, cand.Corridors

		// The true fractional Σ Y_c (Candidate.CorridorSum), not the
		// thresholded count: an LP point whose Y_c are all below 0.5
		// still has a meaningful, nonzero sum, and reading the
		// thresholded count here would falsely trigger the
		// denominator-collapse path below.
		g := cand.CorridorSum
		if g < 1e-6 {
			return LPWarmStartResult{Lambda: math.Inf(1), FromSolve: true}
		}

		newLambda := cand.ItemSum / g
		if math.Abs(newLambda-lambda) < 1e-6 {
			lambda = newLambda
			break
		}
		lambda = newLambda
	}

	if lastX == nil && lastY == nil {
		return LPWarmStartResult{
			Lambda:    fallbackLambda(idx.U, seed),
			FromSolve: false,
		}
	}

	return LPWarmStartResult{
		Lambda:    lambda,
		X:         &Assignment{Orders: lastX, Corridors: lastY},
		FromSolve: true,
	}
}

// fallbackLambda draws uniformly from [0, u) using the given seed.
func fallbackLambda(u int, seed int64) float64 {
	if u <= 0 {
		return 0
	}
	r := rand.New(rand.NewSource(seed))
	return r.Float64() * float64(u)
}
