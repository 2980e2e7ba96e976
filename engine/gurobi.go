// Package engine provides the default §6 solver backend: a Gurobi-backed
// implementation of wavepick.Engine. It follows the teacher's
// tsp.SolveTSP/op.SolveOP lifecycle — one scoped environment and model
// per call, freed on every exit path — generalized from the OP's
// node/edge variables to the wave-picking problem's order/corridor
// binaries.
package engine

import (
	"fmt"
	"log"
	"math"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"git.solver4all.com/azaryc2s/wavepick"
)

// Gurobi is the default wavepick.Engine implementation.
type Gurobi struct {
	// LogFile names the Gurobi log file passed to gurobi.LoadEnv, one
	// per Engine the way op.SolveOP names its log "op-lp-sym.log".
	LogFile string
}

// NewGurobiEngine returns a Gurobi engine logging to the given file.
func NewGurobiEngine(logFile string) *Gurobi {
	if logFile == "" {
		logFile = "wavepick-gurobi.log"
	}
	return &Gurobi{LogFile: logFile}
}

// Solve builds and solves exactly one of the three §4.B MIP variants
// and extracts the candidate per §4.B's result-extraction rule. A
// solver exception or non-terminal status is mapped to
// (Candidate{Feasible:false}, nil) — never an escaping panic — except
// for genuine environment/model-construction failures, which are
// returned as errors corresponding to §7's SolverAbnormal.
func (g *Gurobi) Solve(idx *wavepick.ProblemIndex, cfg wavepick.SubsolveConfig) (wavepick.Candidate, error) {
	env, err := gurobi.LoadEnv(g.LogFile)
	if err != nil {
		return wavepick.Candidate{}, fmt.Errorf("engine: loading gurobi env: %w", err)
	}
	defer env.Free()
	env.SetIntParam("LogToConsole", int32(0))
	defer env.SetIntParam("LogToConsole", int32(1))

	model, err := env.NewModel("wavepick", 0, nil, nil, nil, nil, nil)
	if err != nil {
		return wavepick.Candidate{}, fmt.Errorf("engine: creating model: %w", err)
	}
	defer model.Free()

	continuous := cfg.Variant == wavepick.VariantLPRelax
	vtype := gurobi.BINARY
	if continuous {
		vtype = gurobi.CONTINUOUS
	}

	startX := 0
	for o := 0; o < idx.O; o++ {
		obj := float64(idx.UnitsPerOrder(o))
		if err := model.AddVar(nil, nil, obj, 0.0, 1.0, vtype, fmt.Sprintf("X_%d", o)); err != nil {
			log.Println(err)
			return wavepick.Candidate{}, nil
		}
	}
	startY := idx.O

	lambdaObj := 0.0
	if cfg.Variant == wavepick.VariantDinkelbach || cfg.Variant == wavepick.VariantLPRelax {
		lambdaObj = -cfg.Lambda
	}
	for c := 0; c < idx.C; c++ {
		// §4.A dominated-corridor pruning: a corridor some other
		// corridor strictly dominates is fixed to 0 by tightening its
		// upper bound rather than omitting the variable, so indices
		// into X/Y stay aligned with idx's.
		ub := 1.0
		if c < len(cfg.FixedZeroCorridors) && cfg.FixedZeroCorridors[c] {
			ub = 0.0
		}
		if err := model.AddVar(nil, nil, lambdaObj, 0.0, ub, vtype, fmt.Sprintf("Y_%d", c)); err != nil {
			log.Println(err)
			return wavepick.Candidate{}, nil
		}
	}
	varCount := idx.O + idx.C

	if err := model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MAXIMIZE); err != nil {
		log.Println(err)
		return wavepick.Candidate{}, nil
	}

	// Wave size: L <= sum unitsPerOrder[o]*X_o <= U
	{
		var ind []int32
		var val []float64
		for o := 0; o < idx.O; o++ {
			ind = append(ind, int32(startX+o))
			val = append(val, float64(idx.UnitsPerOrder(o)))
		}
		if err := model.AddConstr(ind, val, gurobi.GREATER_EQUAL, float64(idx.L), "wave_lb"); err != nil {
			log.Println(err)
			return wavepick.Candidate{}, nil
		}
		if err := model.AddConstr(ind, val, gurobi.LESS_EQUAL, float64(idx.U), "wave_ub"); err != nil {
			log.Println(err)
			return wavepick.Candidate{}, nil
		}
	}

	// Item balance: for every item with demand, Σ demand*X - Σ supply*Y <= 0
	for i := 0; i < idx.I; i++ {
		orders := idx.OrdersWithItem(i)
		if len(orders) == 0 {
			continue
		}
		var ind []int32
		var val []float64
		for _, o := range orders {
			ind = append(ind, int32(startX+o))
			val = append(val, float64(idx.Demand(o)[i]))
		}
		for _, c := range idx.CorridorsWithItem(i) {
			ind = append(ind, int32(startY+c))
			val = append(val, -float64(idx.Supply(c)[i]))
		}
		name := fmt.Sprintf("item_%d", i)
		if err := model.AddConstr(ind, val, gurobi.LESS_EQUAL, 0.0, name); err != nil {
			log.Println(err)
			return wavepick.Candidate{}, nil
		}
	}

	if cfg.Variant == wavepick.VariantFixedK {
		var ind []int32
		var val []float64
		for c := 0; c < idx.C; c++ {
			ind = append(ind, int32(startY+c))
			val = append(val, 1.0)
		}
		if err := model.AddConstr(ind, val, gurobi.EQUAL, float64(cfg.TargetK), "fixed_k"); err != nil {
			log.Println(err)
			return wavepick.Candidate{}, nil
		}
	}

	if cfg.TimeLimitSec > 0 {
		_ = model.SetDblParam("TimeLimit", cfg.TimeLimitSec)
	}
	if cfg.Threads > 0 {
		_ = model.SetIntParam("Threads", int32(cfg.Threads))
	}
	switch cfg.MipEmphasis {
	case wavepick.EmphasisFeasibility:
		_ = model.SetIntParam("MIPFocus", 1)
	case wavepick.EmphasisOptimality:
		_ = model.SetIntParam("MIPFocus", 2)
	}

	if cfg.WarmStart != nil {
		// Warm-start failure is non-fatal (§4.B, §7 WarmStartRejected):
		// swallow any error and proceed without it.
		start := make([]float64, varCount)
		for _, o := range cfg.WarmStart.Orders {
			if o >= 0 && o < idx.O {
				start[startX+o] = 1.0
			}
		}
		for _, c := range cfg.WarmStart.Corridors {
			if c >= 0 && c < idx.C {
				start[startY+c] = 1.0
			}
		}
		if err := model.SetDblAttrArray(gurobi.DBL_ATTR_START, 0, start); err != nil {
			log.Printf("engine: warm start rejected: %s\n", err.Error())
		}
	}

	if err := model.Optimize(); err != nil {
		log.Println(err)
		return wavepick.Candidate{}, nil
	}

	status, err := model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		log.Println(err)
		return wavepick.Candidate{}, nil
	}

	solCount, _ := model.GetIntAttr(gurobi.INT_ATTR_SOLCOUNT)
	if status != gurobi.OPTIMAL && solCount <= 0 {
		// INFEASIBLE, INF_OR_UNBD, ERROR, or a timeout with no
		// incumbent — all map to an infeasible result, distinct from a
		// feasible ratio of 0 (§4.B).
		return wavepick.Candidate{Feasible: false}, nil
	}

	vals, err := model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(varCount))
	if err != nil {
		log.Println(err)
		return wavepick.Candidate{}, nil
	}

	var selOrders, selCorridors []int
	totalF := 0.0
	itemSum := 0.0
	corridorSum := 0.0
	for o := 0; o < idx.O; o++ {
		itemSum += vals[startX+o] * float64(idx.UnitsPerOrder(o))
		if vals[startX+o] > 0.5 {
			selOrders = append(selOrders, o)
			totalF += float64(idx.UnitsPerOrder(o))
		}
	}
	for c := 0; c < idx.C; c++ {
		corridorSum += vals[startY+c]
		if vals[startY+c] > 0.5 {
			selCorridors = append(selCorridors, c)
		}
	}

	totalItems := int(math.Round(totalF))
	k := len(selCorridors)
	ratio := 0.0
	if k > 0 {
		ratio = float64(totalItems) / float64(k)
	}

	cand := wavepick.Candidate{
		Feasible:   true,
		Orders:     selOrders,
		Corridors:  selCorridors,
		TotalItems: totalItems,
		Ratio:      ratio,
	}
	if cfg.Variant == wavepick.VariantLPRelax {
		// The true fractional values, not the thresholded count/sum, so
		// the Dinkelbach λ update (LPWarmStart) reads a numerator and
		// denominator that actually match the LP point it solved,
		// instead of mixing a thresholded TotalItems with a fractional
		// CorridorSum.
		cand.CorridorSum = corridorSum
		cand.ItemSum = itemSum
	}
	return cand, nil
}
