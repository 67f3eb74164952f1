// Package vrptw - Best-Route Crossover, BRX (spec.md §4.4 step 2).
//
// BRX builds a child by copying r whole routes from one parent and
// inserting everything the other parent's customers cover but the kept
// routes don't, via the same cheapest-feasible-insertion utility the
// repair path uses (insertion.go). Those insertions may land inside the
// kept routes; they never reorder the donor's customers within a route. Two children are produced by swapping
// which parent donates routes and which donates the remainder.
package vrptw

import "math/rand"

// crossoverBRX produces two children from parents p1 and p2. Each child
// keeps r = max(1, len(donor's non-empty routes)/3) whole routes sampled
// uniformly without replacement from one parent, then completes itself
// with the other parent's customers that aren't already covered, in that
// parent's route order, via insertRemaining.
func crossoverBRX(inst *Instance, p1, p2 *Solution, rng *rand.Rand) (*Solution, *Solution, error) {
	child1, err := brxChild(inst, p1, p2, rng)
	if err != nil {
		return nil, nil, err
	}
	child2, err := brxChild(inst, p2, p1, rng)
	if err != nil {
		return nil, nil, err
	}
	return child1, child2, nil
}

// brxChild builds a single BRX child: donor contributes r whole routes,
// other contributes everything not already routed. Returns
// ErrInternalInvariantViolation, named "brx", if the result does not cover
// every instance customer exactly once.
func brxChild(inst *Instance, donor, other *Solution, rng *rand.Rand) (*Solution, error) {
	donorRoutes := donor.nonEmptyRoutes()
	if len(donorRoutes) == 0 {
		// Degenerate donor (should not occur for a valid instance, but keeps
		// the operator total): fall back to a pure repair of other's customers.
		routes := insertRemaining(inst, nil, other.flattenCustomerIDs())
		child := NewSolution(inst, routes)
		if err := checkFullConservation(inst, child.flattenCustomerIDs(), "brx"); err != nil {
			return nil, err
		}
		return child, nil
	}

	r := len(donorRoutes) / 3
	if r < 1 {
		r = 1
	}
	if r > len(donorRoutes) {
		r = len(donorRoutes)
	}

	order := make([]int, len(donorRoutes))
	for i := range order {
		order[i] = i
	}
	shuffleIntsInPlace(order, rng)

	kept := make([]*Route, 0, r)
	used := make(map[int]bool)
	for _, idx := range order[:r] {
		kept = append(kept, donorRoutes[idx].Clone())
		for _, cid := range donorRoutes[idx].Customers {
			used[cid] = true
		}
	}

	remaining := make([]int, 0, len(other.flattenCustomerIDs()))
	for _, cid := range other.flattenCustomerIDs() {
		if !used[cid] {
			remaining = append(remaining, cid)
		}
	}

	routes := insertRemaining(inst, kept, remaining)
	child := NewSolution(inst, routes)
	if err := checkFullConservation(inst, child.flattenCustomerIDs(), "brx"); err != nil {
		return nil, err
	}
	return child, nil
}
