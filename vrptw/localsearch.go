// Package vrptw - intra-route 2-opt local search (spec.md §4.4 step 4).
//
// Grounded on the teacher's deterministic first-improvement 2-opt
// (tsp/two_opt.go): scan candidate segment reversals in a fixed order,
// apply the first strictly-improving one, then restart the scan from the
// beginning. The teacher's tour is a closed Hamiltonian cycle; a VRPTW
// route is an open path with the depot as an implicit, unstored endpoint
// on both sides, so every boundary lookup below falls back to the depot
// (customer id 0) when a segment touches either end of the route.
//
// Unlike the teacher, reversing a segment can flip a feasible route into
// an infeasible one (arrival times are order-dependent, not just a sum of
// edge weights), so every candidate move is re-simulated in full
// (spec.md §4.1) before being accepted, not just cost-compared.
package vrptw

import "math/rand"

const twoOptMaxPasses = 50

// twoOptRoute runs deterministic first-improvement 2-opt on customerIDs,
// a single route's sequence (depot endpoints implicit). It returns the
// improved sequence and whether any move was applied. A candidate segment
// reversal [i..k] is accepted only if it is both strictly cheaper and
// still feasible under §4.1 — a cheaper but infeasible reversal is
// rejected outright rather than priced through the fitness penalty, since
// local search is meant to polish already-feasible routes.
func twoOptRoute(inst *Instance, customerIDs []int) ([]int, bool) {
	n := len(customerIDs)
	if n < 2 {
		return customerIDs, false
	}

	cur := make([]int, n)
	copy(cur, customerIDs)
	improvedAny := false

	for pass := 0; pass < twoOptMaxPasses; pass++ {
		improved := false

		for i := 0; i <= n-2 && !improved; i++ {
			a := 0
			if i > 0 {
				a = cur[i-1]
			}
			b := cur[i]

			for k := i + 1; k <= n-1; k++ {
				c := cur[k]
				d := 0
				if k < n-1 {
					d = cur[k+1]
				}

				delta := (inst.Dist(a, c) + inst.Dist(b, d)) - (inst.Dist(a, b) + inst.Dist(c, d))
				if delta >= 0 {
					continue
				}

				candidate := reversedCopy(cur, i, k)
				if !routeFeasible(inst, candidate) {
					continue
				}

				cur = candidate
				improved = true
				improvedAny = true
				break
			}
		}

		if !improved {
			break
		}
	}

	return cur, improvedAny
}

// reversedCopy returns a copy of seq with the [i..k] segment reversed.
func reversedCopy(seq []int, i, k int) []int {
	out := make([]int, len(seq))
	copy(out, seq)
	for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}

// twoOptMutation, the third mutation variant, picks one non-empty route
// uniformly at random and runs twoOptRoute on it alone — deliberately
// local in scope, to keep the mutation operators' blast radius comparable
// (a single route touched per call).
func twoOptMutation(inst *Instance, sol *Solution, rng *rand.Rand) error {
	nonEmpty := nonEmptyRouteIndices(sol)
	if len(nonEmpty) == 0 {
		return nil
	}
	idx := nonEmpty[rng.Intn(len(nonEmpty))]
	r := sol.Routes[idx]

	improved, did := twoOptRoute(inst, r.Customers)
	if !did {
		return nil
	}

	before := sol.flattenCustomerIDs()
	r.Customers = improved
	r.Recompute(inst)
	computeFitness(sol)

	return checkMutationConservation(before, sol, "local-search")
}

// localSearch applies twoOptRoute to every non-empty route of sol — the
// full sweep the GA's local-search rate (Config.LocalSearchRate) triggers
// on a whole child, as opposed to the single-route touch of twoOptMutation.
// Returns ErrInternalInvariantViolation if the sweep somehow changed the
// solution's customer multiset (a segment reversal can only reorder a
// route's own customers, so this can only fire on a programming error).
func localSearch(inst *Instance, sol *Solution) error {
	before := sol.flattenCustomerIDs()

	touched := false
	for _, r := range sol.Routes {
		if r.Empty() {
			continue
		}
		improved, did := twoOptRoute(inst, r.Customers)
		if !did {
			continue
		}
		r.Customers = improved
		r.Recompute(inst)
		touched = true
	}
	if touched {
		computeFitness(sol)
	}

	return checkMutationConservation(before, sol, "local-search")
}
