package wavepick

// ProblemIndex is the immutable sparse projection of an Instance used
// by every sub-solve. It is built once at solver construction (§3
// Lifecycle) and never mutated afterwards; MipFormulator calls consume
// it directly instead of re-walking the raw order/corridor maps,
// mirroring how the Java ProblemData precomputes itemToOrders /
// itemToCorridors once up front.
type ProblemIndex struct {
	O int // order count
	C int // corridor count
	I int // item-type count

	L, U int

	demand []ItemQty
	supply []ItemQty

	unitsPerOrder    []int
	ordersWithItem   [][]int
	corridorsWithItem [][]int

	dominatedCorridors []bool
}

// NewProblemIndex builds the index in §3 from the raw instance data.
// It rejects no inputs: empty order/corridor slices are valid and
// simply yield a degenerate or infeasible downstream subproblem.
func NewProblemIndex(orders, corridors []ItemQty, numItems, lBound, uBound int) *ProblemIndex {
	idx := &ProblemIndex{
		O:      len(orders),
		C:      len(corridors),
		I:      numItems,
		L:      lBound,
		U:      uBound,
		demand: orders,
		supply: corridors,

		unitsPerOrder:     make([]int, len(orders)),
		ordersWithItem:    make([][]int, numItems),
		corridorsWithItem: make([][]int, numItems),
	}

	for o, m := range orders {
		total := 0
		for item, qty := range m {
			total += qty
			if item >= 0 && item < numItems && qty > 0 {
				idx.ordersWithItem[item] = append(idx.ordersWithItem[item], o)
			}
		}
		idx.unitsPerOrder[o] = total
	}

	for c, m := range corridors {
		for item, qty := range m {
			if item >= 0 && item < numItems && qty > 0 {
				idx.corridorsWithItem[item] = append(idx.corridorsWithItem[item], c)
			}
		}
	}

	return idx
}

// UnitsPerOrder returns unitsPerOrder[o], the precomputed column
// activity/coefficient used both in the wave-size constraint and the
// objective.
func (idx *ProblemIndex) UnitsPerOrder(o int) int {
	return idx.unitsPerOrder[o]
}

// Demand returns order o's sparse item->qty map.
func (idx *ProblemIndex) Demand(o int) ItemQty { return idx.demand[o] }

// Supply returns corridor c's sparse item->qty map.
func (idx *ProblemIndex) Supply(c int) ItemQty { return idx.supply[c] }

// OrdersWithItem returns the ordered sequence of orders with nonzero
// demand for item i. Items appearing nowhere return nil.
func (idx *ProblemIndex) OrdersWithItem(i int) []int {
	if i < 0 || i >= len(idx.ordersWithItem) {
		return nil
	}
	return idx.ordersWithItem[i]
}

// CorridorsWithItem returns the ordered sequence of corridors with
// nonzero supply for item i.
func (idx *ProblemIndex) CorridorsWithItem(i int) []int {
	if i < 0 || i >= len(idx.corridorsWithItem) {
		return nil
	}
	return idx.corridorsWithItem[i]
}

// DominatedCorridors returns a boolean mask over corridor indices: mask[c]
// is true when some other corridor j makes c redundant, either because j
// strictly dominates c (supply[j] >= supply[c] component-wise, with some
// item strictly greater) or because j and c carry identical supply and
// j < c. The index tie-break keeps exactly one representative of every
// equal-supply equivalence class live — without it, two corridors with
// identical supply would dominate each other and both get masked,
// which can turn a feasible instance infeasible when that pair is the
// sole supplier of some item. The result is computed lazily and cached;
// callers opt into using it (see SPEC_FULL §4.A) — it is never applied
// automatically.
func (idx *ProblemIndex) DominatedCorridors() []bool {
	if idx.dominatedCorridors != nil {
		return idx.dominatedCorridors
	}
	mask := make([]bool, idx.C)
	for c := 0; c < idx.C; c++ {
		for j := 0; j < idx.C; j++ {
			if j == c || mask[c] {
				continue
			}
			if dominatedBy(idx.supply, c, j) {
				mask[c] = true
			}
		}
	}
	idx.dominatedCorridors = mask
	return mask
}

// dominatedBy reports whether corridor c is made redundant by corridor j:
// j's supply covers c's component-wise, and either j strictly exceeds c
// somewhere or the two are tied and j < c (so only the lower-indexed
// corridor of an equal-supply pair survives pruning).
func dominatedBy(supply []ItemQty, c, j int) bool {
	a, b := supply[j], supply[c]
	if !dominates(a, b) {
		return false
	}
	if dominates(b, a) {
		return j < c
	}
	return true
}

// dominates reports whether a's supply is component-wise >= b's supply.
func dominates(a, b ItemQty) bool {
	for item, qty := range b {
		if a[item] < qty {
			return false
		}
	}
	return true
}
