// Package vrptw - Solomon-I1 parallel insertion constructor (spec.md §4.2).
//
// For every empty vehicle slot while unrouted customers remain:
//
//  1. Seed the route with the unrouted customer farthest from the depot
//     (ties broken by smaller id).
//  2. Repeatedly insert the (customer, position) pair minimising
//     C(i,u,j) = alpha*c1 + lambda*c2, where
//     c1 = d(i,u) + d(u,j) - mu*d(i,j)   (geometric detour)
//     c2 = u.ReadyTime - arrival_time_at_u (temporal slack)
//     among pairs that pass the §4.1 feasibility+capacity check. Stop when
//     no feasible insertion remains; close the vehicle.
//  3. If the fleet is exhausted with customers remaining, return a partial
//     solution and report how many customers stayed unrouted. Run's
//     initial population completes such a seed with insertRemaining
//     (insertion.go) before using it.
//
// Complexity: O(N^3) on N customers; this runs once per seed, which the
// spec accepts.
package vrptw

import (
	"math/rand"
	"sort"
)

// SolomonInsertion builds a solution for inst using the Solomon-I1
// parallel insertion heuristic with the given (alpha, mu, lambda) weights.
// rng is accepted for API symmetry with the rest of the package (seed
// selection itself is deterministic — farthest customer, ties broken by
// id — so rng is unused by this function today, but keeping the parameter
// lets callers route every construction through the same signature the GA
// uses for its diversified initial population).
//
// Returns the constructed solution (with spec-default fitness weights —
// callers that need GA-configured weights should call Solution.withWeights)
// and a Diagnostics reporting how many customers, if any, could not be
// routed because the fleet was exhausted. Returns ErrNegativeParam, without
// building anything, if any of alpha/mu/lambda is negative.
func SolomonInsertion(inst *Instance, params ConstructionParams, rng *rand.Rand) (*Solution, Diagnostics, error) {
	_ = rng
	if params.Alpha < 0 || params.Mu < 0 || params.Lambda < 0 {
		return nil, Diagnostics{}, ErrNegativeParam
	}

	unrouted := make(map[int]bool, len(inst.Customers))
	for _, c := range inst.Customers {
		unrouted[c.ID] = true
	}

	var routes []*Route
	vehiclesOpened := 0

	for len(unrouted) > 0 && vehiclesOpened < inst.NumVehicles {
		seed := farthestUnrouted(inst, unrouted)
		route := []int{seed}
		delete(unrouted, seed)
		vehiclesOpened++

		for {
			bestU, bestPos, bestCost, found := bestInsertion(inst, route, unrouted, params)
			if !found {
				break
			}
			route = insertAt(route, bestPos, bestU)
			delete(unrouted, bestU)
			_ = bestCost
		}

		routes = append(routes, NewRoute(inst, route))
	}

	sol := NewSolution(inst, routes)
	if err := checkNoDuplicateRoutedCustomers(inst, sol.flattenCustomerIDs(), "solomon-insertion"); err != nil {
		return nil, Diagnostics{}, err
	}
	diag := Diagnostics{
		UnroutedCount:  len(unrouted),
		VehiclesOpened: sol.NumVehicles(),
		MSTLowerBound:  inst.MSTLowerBound(),
	}
	return sol, diag, nil
}

// farthestUnrouted returns the unrouted customer id farthest from the
// depot, ties broken by the smaller id.
func farthestUnrouted(inst *Instance, unrouted map[int]bool) int {
	best := -1
	bestDist := -1.0
	for id := range unrouted {
		d := inst.Dist(0, id)
		if d > bestDist || (d == bestDist && id < best) {
			best = id
			bestDist = d
		}
	}
	return best
}

// bestInsertion scans every (unrouted customer, insertion position) pair
// and returns the one minimising C(i,u,j) = alpha*c1 + lambda*c2 among
// pairs that keep the route capacity- and temporally-feasible. Positions
// range over every gap in route, including before the first and after the
// last customer (the depot stands in for the missing neighbour at the
// ends). Unrouted customers are visited in ascending id order rather than
// Go's randomized map order, so an exact cost tie (e.g. several customers
// coincident with the depot) always resolves to the smallest id, keeping
// the constructor's output independent of map iteration.
func bestInsertion(inst *Instance, route []int, unrouted map[int]bool, params ConstructionParams) (u int, pos int, cost float64, found bool) {
	bestCost := 0.0
	found = false

	ids := make([]int, 0, len(unrouted))
	for cid := range unrouted {
		ids = append(ids, cid)
	}
	sort.Ints(ids)

	for _, cid := range ids {
		for p := 0; p <= len(route); p++ {
			candidate := insertAt(route, p, cid)
			if !routeFeasible(inst, candidate) {
				continue
			}

			predID := 0
			if p > 0 {
				predID = route[p-1]
			}
			succID := 0
			if p < len(route) {
				succID = route[p]
			}

			dIU := inst.Dist(predID, cid)
			dUJ := inst.Dist(cid, succID)
			dIJ := inst.Dist(predID, succID)
			c1 := dIU + dUJ - params.Mu*dIJ

			arrival := arrivalAt(inst, candidate, p)
			cust, _ := inst.CustomerByID(cid)
			c2 := cust.ReadyTime - arrival

			insertionCost := params.Alpha*c1 + params.Lambda*c2
			if !found || insertionCost < bestCost {
				found = true
				bestCost = insertionCost
				u, pos, cost = cid, p, insertionCost
			}
		}
	}
	return u, pos, cost, found
}

// insertAt returns a new slice with customer u inserted at position pos
// (0 <= pos <= len(route)), leaving route untouched.
func insertAt(route []int, pos, u int) []int {
	out := make([]int, 0, len(route)+1)
	out = append(out, route[:pos]...)
	out = append(out, u)
	out = append(out, route[pos:]...)
	return out
}

// routeFeasible reports whether customerIDs, simulated from the depot, is
// both capacity- and temporally-feasible (spec.md §4.1).
func routeFeasible(inst *Instance, customerIDs []int) bool {
	return simulateRoute(inst, customerIDs).feasible
}
