// Package vrptw - MST lower-bound diagnostic (spec.md §7, Diagnostics).
//
// Grounded on the teacher's dense Prim O(n^2) (tsp/mst.go, itself adapted
// from prim_kruskal/kruskal.go): start the tree at the depot, repeatedly
// pull in the cheapest-to-connect outside node, and sum accepted edge
// weights. Unlike the teacher, there is no matrix.Matrix indirection to
// dispatch on — Instance already holds a dense, complete, symmetric table
// (built once in buildDistanceTable), so there is exactly one code path.
//
// A spanning tree over depot+customers is a well-known optimistic lower
// bound on the total distance any feasible multi-route VRPTW solution can
// achieve: every route is itself a path touching the depot, and the union
// of all routes' edges, collapsed into a single connected multigraph over
// depot+customers, has total weight >= the MST's (a spanning tree is the
// cheapest way to connect that vertex set). It ignores capacity and time
// windows entirely, so it is a bound, not an achievable target.
package vrptw

import "math"

// MSTLowerBound returns the weight of a minimum spanning tree over the
// depot and every customer in inst, using the precomputed distance table.
// A single-customer instance has an MST of one edge, depot to customer.
func (inst *Instance) MSTLowerBound() float64 {
	n := len(inst.allNodes)
	if n <= 1 {
		return 0
	}

	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	for i := range bestCost {
		bestCost[i] = math.Inf(1)
	}
	bestCost[0] = 0

	var total float64
	for iter := 0; iter < n; iter++ {
		u := -1
		minCost := math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minCost {
				minCost = bestCost[v]
				u = v
			}
		}
		if u == -1 {
			break // unreachable (cannot happen: the table is complete)
		}

		inTree[u] = true
		total += bestCost[u]

		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w := inst.distance[u][v]; w < bestCost[v] {
				bestCost[v] = w
			}
		}
	}

	return total
}
