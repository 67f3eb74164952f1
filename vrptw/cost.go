// Package vrptw - solution fitness (spec.md §4.3).
//
// fitness = w_d * total_distance + w_v * num_vehicles + w_p * penalty
//
// penalty accumulates, summed over every route:
//   1000 * max(0, load - capacity)            per route
//   1000 * max(0, arrival - due_time)          per customer visit (lateness)
//
// Waiting is never penalised. feasible <=> penalty == 0.
package vrptw

const (
	capacityPenaltyRate = 1000
	latenessPenaltyRate = 1000
)

// computeFitness recomputes every cached field on s from its routes:
// TotalDistance, NumVehicles, Fitness, and Feasible. Callers must have
// already called Route.Recompute on any route whose Customers changed.
func computeFitness(s *Solution) {
	weights := s.weights()

	var totalDistance float64
	var numVehicles int
	var penalty float64

	for _, r := range s.Routes {
		if r.Empty() {
			continue
		}
		numVehicles++
		totalDistance += r.Distance()
		penalty += routePenalty(s.Instance, r)
	}

	s.totalDistance = totalDistance
	s.numVehicles = numVehicles
	s.feasible = penalty == 0
	s.fitness = weights.d*totalDistance + weights.v*float64(numVehicles) + weights.p*penalty
}

// fitnessWeights bundles the three weight terms of the objective; a
// Solution without an explicit Config attached (e.g. one built directly
// by SolomonInsertion) uses the spec's stated defaults.
type fitnessWeights struct{ d, v, p float64 }

func (s *Solution) weights() fitnessWeights {
	if s.weightsOverride != nil {
		return *s.weightsOverride
	}
	return fitnessWeights{d: 1, v: 1000, p: 100000}
}

// routePenalty returns 1000*max(0, load-capacity) plus, for every customer
// visited, 1000*max(0, arrival-due_time) — recomputed independently of the
// route's cached finishTime/load so that recomputing fitness from scratch
// on a returned solution always matches its cached value exactly
// (spec.md §8, testable property 6).
func routePenalty(inst *Instance, r *Route) float64 {
	if r.Empty() {
		return 0
	}

	var penalty float64
	t := 0.0
	locID := 0
	load := 0.0

	for _, cid := range r.Customers {
		c, _ := inst.CustomerByID(cid)
		arrival := t + inst.Dist(locID, cid)
		if arrival > c.DueTime {
			penalty += (arrival - c.DueTime) * latenessPenaltyRate
		}
		load += c.Demand
		serviceStart := arrival
		if serviceStart < c.ReadyTime {
			serviceStart = c.ReadyTime
		}
		t = serviceStart + c.ServiceTime
		locID = cid
	}

	if load > inst.Capacity {
		penalty += (load - inst.Capacity) * capacityPenaltyRate
	}

	return penalty
}
