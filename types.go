package wavepick

// ItemQty is a sparse item->quantity map, the unit of both order demand
// and corridor supply.
type ItemQty map[int]int

// Instance is the raw wave-picking problem as handed to Solve: a catalog
// of orders and corridors plus the wave-size bounds.
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`

	Orders    []ItemQty `json:"orders"`
	Corridors []ItemQty `json:"corridors"`
	NumItems  int       `json:"num_items"`
	LBound    int       `json:"l_bound"`
	UBound    int       `json:"u_bound"`

	Solution *ChallengeSolution `json:"solution,omitempty"`
}

// ChallengeSolution is the final, reportable outcome of Solve: the
// selected order/corridor index sets plus the derived scalars a caller
// cares about. An empty solution (Orders == Corridors == nil) signals
// that no feasible wave was found — see §7 InstanceInfeasible.
type ChallengeSolution struct {
	Orders    []int `json:"orders"`
	Corridors []int `json:"corridors"`

	TotalItems int     `json:"total_items"`
	Ratio      float64 `json:"ratio"`
	Optimal    bool    `json:"optimal"`

	Branch  string  `json:"branch"`
	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information a run executed under.
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// Candidate is one sub-solve's extracted result, feasible or not. It is
// the currency passed between MipFormulator/Engine calls and
// SolutionTracker.
type Candidate struct {
	Feasible   bool
	Orders     []int
	Corridors  []int
	TotalItems int
	Ratio      float64

	// CorridorSum is the true fractional Σ Y_c, set only by
	// VariantLPRelax solves. It exists alongside the thresholded
	// Corridors count because a fractional point can have every Y_c
	// below the 0.5 threshold (Corridors empty) while still summing to
	// a usable, nonzero denominator for the Dinkelbach recurrence.
	CorridorSum float64

	// ItemSum is the true fractional Σ unitsPerOrder[o]·x_o, set only by
	// VariantLPRelax solves. §4.C's λ update reads this as its numerator
	// rather than TotalItems, which is a thresholded integer (only
	// orders with x_o > 0.5 counted) and would otherwise mix a
	// thresholded numerator with CorridorSum's fractional denominator.
	ItemSum float64
}

// Assignment is a warm-start hint: order/corridor indices whose
// variable should start at 1. Values are interpreted per §4.B — a
// caller building one from a fractional LP point should only include
// indices above 0.5.
type Assignment struct {
	Orders    []int
	Corridors []int
}

// Emphasis is a solver hint; see §4.B MipFormulator parameters.
type Emphasis int

const (
	EmphasisBalanced Emphasis = iota
	EmphasisFeasibility
	EmphasisOptimality
)

// Variant selects which of the three MIP formulations in §4.B to build.
type Variant int

const (
	VariantFixedK Variant = iota
	VariantDinkelbach
	VariantLPRelax
)

// SubsolveConfig carries the per-sub-solve parameters of §4.B.
type SubsolveConfig struct {
	Variant      Variant
	Lambda       float64 // used by VariantDinkelbach, VariantLPRelax
	TargetK      int     // used by VariantFixedK
	TimeLimitSec float64
	Threads      int
	MipEmphasis  Emphasis
	WarmStart    *Assignment // nil => none

	// FixedZeroCorridors is the §4.A dominated-corridor mask: when
	// non-nil, FixedZeroCorridors[c] true means corridor c's Y_c is
	// fixed to 0 rather than left free in [0,1], since some other
	// corridor dominates its supply. nil means no pruning.
	FixedZeroCorridors []bool
}

// Engine is the §6 external solver contract: build one MIP/LP variant
// over a ProblemIndex, solve it synchronously under the given
// sub-solve configuration, and return the extracted candidate. An
// error return corresponds to SolverAbnormal (§7); an infeasible
// terminal status is reported as Candidate{Feasible: false}, not an
// error.
type Engine interface {
	Solve(idx *ProblemIndex, cfg SubsolveConfig) (Candidate, error)
}
