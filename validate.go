package wavepick

import (
	"fmt"
	"log"
)

// Validate checks invariants 1-3 of spec.md §8 against a non-empty
// candidate solution. It logs on violation and returns a descriptive
// error, but — mirroring the teacher's checkSolutionValidity in
// solver/main.go, which only logs and never aborts the run — callers
// in this module treat a Validate failure as diagnostic, not fatal.
func Validate(idx *ProblemIndex, orders, corridors []int) error {
	orderSet := make(map[int]bool, len(orders))
	total := 0
	for _, o := range orders {
		if o < 0 || o >= idx.O {
			err := fmt.Errorf("order index %d out of range [0,%d)", o, idx.O)
			log.Println(err)
			return err
		}
		orderSet[o] = true
		total += idx.UnitsPerOrder(o)
	}
	if total < idx.L || total > idx.U {
		err := fmt.Errorf("wave size %d outside bounds [%d,%d]", total, idx.L, idx.U)
		log.Println(err)
		return err
	}

	corridorSet := make(map[int]bool, len(corridors))
	for _, c := range corridors {
		if c < 0 || c >= idx.C {
			err := fmt.Errorf("corridor index %d out of range [0,%d)", c, idx.C)
			log.Println(err)
			return err
		}
		corridorSet[c] = true
	}

	for i := 0; i < idx.I; i++ {
		demand := 0
		for _, o := range idx.OrdersWithItem(i) {
			if orderSet[o] {
				demand += idx.Demand(o)[i]
			}
		}
		if demand == 0 {
			continue
		}
		supply := 0
		for _, c := range idx.CorridorsWithItem(i) {
			if corridorSet[c] {
				supply += idx.Supply(c)[i]
			}
		}
		if demand > supply {
			err := fmt.Errorf("item %d: demand %d exceeds supply %d", i, demand, supply)
			log.Println(err)
			return err
		}
	}

	return nil
}
