// Package vrptw - shared cheapest-feasible-insertion utility (spec.md §4.5).
//
// insertRemaining is used both by BRX (crossover.go, to complete a child
// from the customers a donor route set left out) and, in spirit, by the
// constructor's own per-vehicle loop (constructor.go inlines the
// Solomon-I1-specific scoring; this file is the simpler "cheapest
// delta-distance" variant BRX and repair need).
package vrptw

// insertRemaining inserts every customer in customerIDs, in the given
// order, at the position across all current routes with minimal
// delta-distance d(i,u)+d(u,j)-d(i,j) that is both capacity-feasible and
// temporally feasible (spec.md §4.1). If no such position exists in any
// existing route, a new route containing just that customer is appended.
// The operation is deterministic given the input order.
//
// routes is mutated in place (each *Route's Customers slice may grow) and
// caches are recomputed on every touched route before returning.
func insertRemaining(inst *Instance, routes []*Route, customerIDs []int) []*Route {
	for _, cid := range customerIDs {
		bestRouteIdx := -1
		bestPos := 0
		bestDelta := 0.0
		found := false

		for ri, r := range routes {
			for p := 0; p <= len(r.Customers); p++ {
				candidate := insertAt(r.Customers, p, cid)
				if !routeFeasible(inst, candidate) {
					continue
				}

				predID := 0
				if p > 0 {
					predID = r.Customers[p-1]
				}
				succID := 0
				if p < len(r.Customers) {
					succID = r.Customers[p]
				}
				delta := inst.Dist(predID, cid) + inst.Dist(cid, succID) - inst.Dist(predID, succID)

				if !found || delta < bestDelta {
					found = true
					bestDelta = delta
					bestRouteIdx = ri
					bestPos = p
				}
			}
		}

		if found {
			r := routes[bestRouteIdx]
			r.Customers = insertAt(r.Customers, bestPos, cid)
			r.Recompute(inst)
		} else {
			routes = append(routes, NewRoute(inst, []int{cid}))
		}
	}
	return routes
}
