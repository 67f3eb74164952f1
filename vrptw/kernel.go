// Package vrptw - geometry & feasibility kernel (spec.md §4.1).
//
// Every operator in this package that needs to know whether a route is
// still legal, or how long it takes, or how far it travels, goes through
// simulateRoute. It is the single place that encodes the forward-time
// simulation: waiting is free and never fails feasibility; a late arrival
// or an over-capacity load does.
package vrptw

// routeSimulation is the result of simulating a route from the depot,
// through each customer in order, and back to the depot.
type routeSimulation struct {
	load       float64
	distance   float64
	finishTime float64 // arrival back at the depot
	feasible   bool
}

// simulateRoute walks customerIDs in order starting and ending at the
// depot, accumulating load, distance, and elapsed time exactly as spec.md
// §4.1 describes:
//
//  1. t <- 0, loc <- depot, load <- 0.
//  2. For each customer c: arrival <- t + dist(loc, c); if arrival >
//     c.DueTime, infeasible. load <- load + c.Demand; if load > capacity,
//     infeasible. t <- max(arrival, c.ReadyTime) + c.ServiceTime; loc <- c.
//  3. t + dist(loc, depot) > depot.DueTime => infeasible.
//
// In addition, a return time above a positive Instance.MaxRouteTime is
// infeasible. Waiting (arrival < ready) is permitted and silently consumes slack; it
// never fails feasibility. A route with zero customers is trivially
// feasible with zero load, zero distance, and finish time zero (the
// vehicle never leaves the depot).
func simulateRoute(inst *Instance, customerIDs []int) routeSimulation {
	sim := routeSimulation{feasible: true}
	if len(customerIDs) == 0 {
		return sim
	}

	t := 0.0
	locID := 0 // depot
	load := 0.0
	dist := 0.0

	for _, cid := range customerIDs {
		c, _ := inst.CustomerByID(cid)
		leg := inst.Dist(locID, cid)
		dist += leg
		arrival := t + leg
		if arrival > c.DueTime {
			sim.feasible = false
		}
		load += c.Demand
		if load > inst.Capacity {
			sim.feasible = false
		}
		t = max(arrival, c.ReadyTime) + c.ServiceTime
		locID = cid
	}

	returnLeg := inst.Dist(locID, 0)
	dist += returnLeg
	t += returnLeg
	if t > inst.Depot.DueTime {
		sim.feasible = false
	}
	if inst.MaxRouteTime > 0 && t > inst.MaxRouteTime {
		sim.feasible = false
	}

	sim.load = load
	sim.distance = dist
	sim.finishTime = t
	return sim
}

// arrivalAt returns the simulated arrival time at the customer occupying
// position idx (0-based) in customerIDs, assuming customerIDs[:idx] were
// already visited in order from the depot. Used by the Solomon-I1
// constructor (bestInsertion) to evaluate a candidate insertion's
// temporal slack without re-simulating the whole route from scratch every
// time (still O(route length) per call, but avoids allocating a
// scratch slice).
func arrivalAt(inst *Instance, customerIDs []int, idx int) float64 {
	t := 0.0
	locID := 0
	for i := 0; i < idx; i++ {
		c, _ := inst.CustomerByID(customerIDs[i])
		arrival := t + inst.Dist(locID, customerIDs[i])
		t = max(arrival, c.ReadyTime) + c.ServiceTime
		locID = customerIDs[i]
	}
	return t + inst.Dist(locID, customerIDs[idx])
}
