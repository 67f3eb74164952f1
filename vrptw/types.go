// Package vrptw - core data model: Customer, Instance, Route, Solution,
// Population, and the configuration structs threaded through the solver.
//
// Ownership rules (see DESIGN.md §Data Model for the rationale):
//   - An Instance is built once and is immutable and safely shared by every
//     Solution derived from it.
//   - Routes reference customers by stable integer id and dereference
//     through Instance.CustomerByID; they never copy a Customer value.
//   - A Solution owns its Routes exclusively; cloning a Solution deep-copies
//     its routes but shares the Instance pointer.
package vrptw

import (
	"fmt"
	"math"
)

// Customer is a single stop: a location with a demand, a service duration,
// and a hard time window [ReadyTime, DueTime] during which service must
// begin (arrival exactly at DueTime is on time). Customer id 0 is reserved for the depot (see Instance.Depot).
type Customer struct {
	ID          int
	X, Y        float64
	Demand      float64
	ReadyTime   float64
	DueTime     float64
	ServiceTime float64
}

// Instance is an immutable VRPTW problem: a depot, an ordered customer
// list, a fleet-size hint, and per-vehicle capacity and max route time.
//
// NumVehicles is a hint for fleet sizing, not a hard cap (spec §9, Open
// Question 3): SolomonInsertion opens at most NumVehicles routes and
// reports any customers it could not place, while insertRemaining (used by
// BRX, the randomized-greedy construction, and the repair of partial
// Solomon-I1 seeds) opens additional routes whenever no existing route can
// take a customer.
type Instance struct {
	Name         string
	Depot        Customer
	Customers    []Customer // ids 1..N, in the order BuildInstance received them
	NumVehicles  int
	Capacity     float64
	MaxRouteTime float64

	byID      map[int]Customer
	distance  [][]float64 // distance[i][j], indexed by position in allNodes (depot at 0)
	allNodes  []Customer  // allNodes[0] == Depot, allNodes[1:] == Customers in input order
	idToIndex map[int]int // customer/depot id -> position in allNodes/distance
}

// BuildInstance validates and constructs an Instance from caller-supplied
// data (the CSV/loader boundary is out of scope for this package; see
// spec.md §6.1). MaxRouteTime, if zero, defaults to depot.DueTime.
//
// Validation (returns the first violated InvalidInstance sentinel):
//   - customers must be non-empty,
//   - customer ids must be unique and none may be 0 (id 0 is the depot),
//   - every customer (and the depot) must satisfy ReadyTime < DueTime,
//   - every customer demand must be >= 0,
//   - capacity must be > 0,
//   - numVehicles must be > 0.
func BuildInstance(depot Customer, customers []Customer, numVehicles int, capacity, maxRouteTime float64) (*Instance, error) {
	if len(customers) == 0 {
		return nil, ErrEmptyCustomers
	}
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	if numVehicles <= 0 {
		return nil, ErrNonPositiveFleet
	}
	if depot.ReadyTime >= depot.DueTime {
		return nil, ErrBadTimeWindow
	}

	depot.ID = 0
	byID := make(map[int]Customer, len(customers)+1)
	byID[0] = depot

	ordered := make([]Customer, len(customers))
	for i, c := range customers {
		if c.ID == 0 {
			return nil, ErrDepotID
		}
		if _, dup := byID[c.ID]; dup {
			return nil, ErrDuplicateCustomerID
		}
		if c.ReadyTime >= c.DueTime {
			return nil, ErrBadTimeWindow
		}
		if c.Demand < 0 {
			return nil, ErrNegativeDemand
		}
		byID[c.ID] = c
		ordered[i] = c
	}

	if maxRouteTime <= 0 {
		maxRouteTime = depot.DueTime
	}

	inst := &Instance{
		Name:         "",
		Depot:        depot,
		Customers:    ordered,
		NumVehicles:  numVehicles,
		Capacity:     capacity,
		MaxRouteTime: maxRouteTime,
		byID:         byID,
	}
	inst.allNodes = make([]Customer, 0, len(ordered)+1)
	inst.allNodes = append(inst.allNodes, depot)
	inst.allNodes = append(inst.allNodes, ordered...)
	inst.distance = buildDistanceTable(inst.allNodes)

	inst.idToIndex = make(map[int]int, len(inst.allNodes))
	for i, c := range inst.allNodes {
		inst.idToIndex[c.ID] = i
	}

	return inst, nil
}

// buildDistanceTable precomputes the dense symmetric Euclidean distance
// table over depot+customers once, in node-array order. Every subsequent
// distance lookup in the package goes through Instance.Dist, never
// recomputing math.Sqrt for a pair already in the table.
//
// Complexity: O(n^2) time and space, computed once per Instance.
func buildDistanceTable(nodes []Customer) [][]float64 {
	n := len(nodes)
	table := make([][]float64, n)
	for i := range table {
		table[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := nodes[i].X - nodes[j].X
			dy := nodes[i].Y - nodes[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			table[i][j] = d
			table[j][i] = d
		}
	}
	return table
}

// indexOf returns the position of a customer id in Instance.allNodes
// (depot is index 0), via the idToIndex map built once in BuildInstance —
// O(1), so every Dist call on the hot path (simulateRoute, bestInsertion,
// insertRemaining, 2-opt) resolves both indices without scanning Customers.
// Returns -1 for an id not present in the instance.
func (inst *Instance) indexOf(id int) int {
	idx, ok := inst.idToIndex[id]
	if !ok {
		return -1
	}
	return idx
}

// Dist returns the Euclidean distance between two customers (or the
// depot, id 0) identified by id, served from the precomputed table.
func (inst *Instance) Dist(aID, bID int) float64 {
	return inst.distance[inst.indexOf(aID)][inst.indexOf(bID)]
}

// CustomerByID returns the customer (or depot) with the given id and
// whether it exists in the instance.
func (inst *Instance) CustomerByID(id int) (Customer, bool) {
	c, ok := inst.byID[id]
	return c, ok
}

// CustomerIDs returns the ids of every routable customer (excludes the
// depot), in the order BuildInstance received them.
func (inst *Instance) CustomerIDs() []int {
	ids := make([]int, len(inst.Customers))
	for i, c := range inst.Customers {
		ids[i] = c.ID
	}
	return ids
}

// Route is an ordered list of customer ids visited by one vehicle,
// implicitly preceded and followed by the depot. Caches are recomputed
// whenever the route is mutated through this package's operators; callers
// that splice Customers directly must call Recompute.
type Route struct {
	Customers []int // customer ids, depot implicit at both ends

	load       float64
	distance   float64
	finishTime float64
	feasible   bool
}

// NewRoute builds a Route from an ordered customer-id slice and computes
// its caches against inst.
func NewRoute(inst *Instance, customers []int) *Route {
	ids := make([]int, len(customers))
	copy(ids, customers)
	r := &Route{Customers: ids}
	r.Recompute(inst)
	return r
}

// Clone returns an independent copy of r; mutating the clone never affects r.
func (r *Route) Clone() *Route {
	ids := make([]int, len(r.Customers))
	copy(ids, r.Customers)
	return &Route{
		Customers:  ids,
		load:       r.load,
		distance:   r.distance,
		finishTime: r.finishTime,
		feasible:   r.feasible,
	}
}

// Load returns the cached total demand of the route.
func (r *Route) Load() float64 { return r.load }

// Distance returns the cached total travelled distance, depot-to-depot.
func (r *Route) Distance() float64 { return r.distance }

// FinishTime returns the cached arrival time back at the depot.
func (r *Route) FinishTime() float64 { return r.finishTime }

// Feasible reports whether the cached simulation found no capacity or
// temporal violation (see simulateRoute in kernel.go).
func (r *Route) Feasible() bool { return r.feasible }

// Empty reports whether the route visits no customers (an "unused vehicle").
func (r *Route) Empty() bool { return len(r.Customers) == 0 }

// Recompute re-simulates the route against inst and refreshes every cache.
// Must be called after any direct mutation of r.Customers.
func (r *Route) Recompute(inst *Instance) {
	sim := simulateRoute(inst, r.Customers)
	r.load = sim.load
	r.distance = sim.distance
	r.finishTime = sim.finishTime
	r.feasible = sim.feasible
}

// Solution is an ordered list of Routes over a shared Instance. Empty
// routes are permitted and count as an unused vehicle slot. Caches are
// recomputed by Recompute whenever routes are mutated.
type Solution struct {
	Instance *Instance
	Routes   []*Route

	totalDistance float64
	numVehicles   int
	fitness       float64
	feasible      bool

	weightsOverride *fitnessWeights // nil => spec's stated default weights
}

// NewSolution builds a Solution from routes already simulated against inst
// and computes its fitness.
func NewSolution(inst *Instance, routes []*Route) *Solution {
	s := &Solution{Instance: inst, Routes: routes}
	s.Recompute()
	return s
}

// Clone deep-copies every route; the Instance pointer is shared (the
// Instance is immutable, so sharing it is always safe).
func (s *Solution) Clone() *Solution {
	routes := make([]*Route, len(s.Routes))
	for i, r := range s.Routes {
		routes[i] = r.Clone()
	}
	return &Solution{
		Instance:        s.Instance,
		Routes:          routes,
		totalDistance:   s.totalDistance,
		numVehicles:     s.numVehicles,
		fitness:         s.fitness,
		feasible:        s.feasible,
		weightsOverride: s.weightsOverride,
	}
}

// withWeights attaches cfg's fitness weights to s and recomputes its
// cached fields under them. The GA threads this through every solution it
// creates so that Fitness() always reflects the run's configured weights;
// SolomonInsertion callers that never call this get the spec's defaults.
func (s *Solution) withWeights(cfg Config) *Solution {
	w := fitnessWeights{d: cfg.WeightDistance, v: cfg.WeightVehicles, p: cfg.WeightPenalty}
	s.weightsOverride = &w
	computeFitness(s)
	return s
}

// Recompute refreshes every route's caches (if the caller mutated
// Customers directly on any route) and recomputes the solution-level
// caches: TotalDistance, NumVehicles, Fitness, and Feasible. See cost.go
// for the fitness formula.
func (s *Solution) Recompute() {
	for _, r := range s.Routes {
		r.Recompute(s.Instance)
	}
	computeFitness(s)
}

// TotalDistance returns the cached sum of every route's distance.
func (s *Solution) TotalDistance() float64 { return s.totalDistance }

// NumVehicles returns the cached count of non-empty routes.
func (s *Solution) NumVehicles() int { return s.numVehicles }

// Fitness returns the cached weighted objective (lower is better).
func (s *Solution) Fitness() float64 { return s.fitness }

// Feasible reports whether the cached penalty term is exactly zero.
func (s *Solution) Feasible() bool { return s.feasible }

// String renders a compact one-line diagnostic summary, mirroring the
// informal repr of the reference implementation this package's semantics
// were distilled from.
func (s *Solution) String() string {
	return fmt.Sprintf("Solution(vehicles=%d, distance=%.2f, fitness=%.2f, feasible=%t)",
		s.NumVehicles(), s.TotalDistance(), s.Fitness(), s.Feasible())
}

// nonEmptyRoutes returns the routes of s that visit at least one customer.
func (s *Solution) nonEmptyRoutes() []*Route {
	out := make([]*Route, 0, len(s.Routes))
	for _, r := range s.Routes {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}

// flattenCustomerIDs returns every customer id across every route, in
// route order then within-route order — the "flattened sequence" used by
// the diversity metric (spec.md §4.4 step 5) and by conservation checks.
func (s *Solution) flattenCustomerIDs() []int {
	n := 0
	for _, r := range s.Routes {
		n += len(r.Customers)
	}
	out := make([]int, 0, n)
	for _, r := range s.Routes {
		out = append(out, r.Customers...)
	}
	return out
}

// SolutionExport is the stable, downstream-facing shape for a Solution,
// matching spec.md §6 exactly. Empty routes are omitted.
type SolutionExport struct {
	Method        string          `json:"method"`
	Fitness       float64         `json:"fitness"`
	TotalDistance float64         `json:"total_distance"`
	TotalTime     float64         `json:"total_time"`
	NumVehicles   int             `json:"num_vehicles"`
	Feasible      bool            `json:"feasible"`
	Routes        []RouteExport   `json:"routes"`
}

// RouteExport is one non-empty route's exported shape.
type RouteExport struct {
	VehicleID int     `json:"vehicle_id"`
	Customers []int   `json:"customers"`
	Load      float64 `json:"load"`
	Distance  float64 `json:"distance"`
	Time      float64 `json:"time"`
}

// Export converts s into its stable downstream shape. method names the
// algorithm that produced s (e.g. "solomon-i1" or "ga"); total_time sums
// each route's finish time (travel into and out of the depot, without any
// depot service time — spec.md §9, Open Question 2).
func (s *Solution) Export(method string) SolutionExport {
	out := SolutionExport{
		Method:        method,
		Fitness:       s.Fitness(),
		TotalDistance: s.TotalDistance(),
		NumVehicles:   s.NumVehicles(),
		Feasible:      s.Feasible(),
		Routes:        make([]RouteExport, 0, s.NumVehicles()),
	}
	vehicleID := 0
	for _, r := range s.Routes {
		vehicleID++
		if r.Empty() {
			continue
		}
		out.TotalTime += r.FinishTime()
		out.Routes = append(out.Routes, RouteExport{
			VehicleID: vehicleID,
			Customers: append([]int(nil), r.Customers...),
			Load:      r.Load(),
			Distance:  r.Distance(),
			Time:      r.FinishTime(),
		})
	}
	return out
}

// Population is a fixed-size multiset of Solutions with a monotonically
// non-increasing best-so-far reference.
type Population struct {
	Solutions []*Solution
	Best      *Solution
}

// ConstructionParams are the tunable Solomon-I1 weights: alpha scales the
// geometric-detour term, mu scales the "shortcut savings" subtraction, and
// lambda scales the temporal-slack term (spec.md §4.2).
type ConstructionParams struct {
	Alpha, Mu, Lambda float64
}

// DefaultConstructionParams returns the textbook Solomon-I1 weighting
// (alpha=1, mu=1, lambda=2), a reasonable single-call default; the genetic
// algorithm's diversified initial population instead samples these from
// the ranges given in spec.md §4.4.
func DefaultConstructionParams() ConstructionParams {
	return ConstructionParams{Alpha: 1, Mu: 1, Lambda: 2}
}

// Diagnostics reports non-fatal observations from construction; it is
// returned by SolomonInsertion (Run does not return one).
type Diagnostics struct {
	UnroutedCount  int     // customers left unrouted when the fleet was exhausted
	VehiclesOpened int     // number of non-empty routes in the returned solution
	MSTLowerBound  float64 // optimistic lower bound on achievable total distance (see mst.go)
}

// Trace is the (best_fitness, mean_fitness) sequence recorded once per
// generation by Run; len(Trace) == Config.Generations.
type Trace []GenerationStats

// GenerationStats is one generation's convergence snapshot.
type GenerationStats struct {
	BestFitness float64
	MeanFitness float64
}

// Config carries every tunable of the genetic algorithm (spec.md §4.4).
// The zero value is not meaningful; start from DefaultConfig.
type Config struct {
	PopulationSize  int     // P
	EliteSize       int     // E
	Generations     int     // G
	CrossoverRate   float64 // p_x
	MutationRate    float64 // p_m
	LocalSearchRate float64 // p_ls
	TournamentSize  int     // k
	Seed            int64
	StagnationLimit int // S

	// WeightDistance, WeightVehicles, and WeightPenalty are the fitness
	// weights w_d, w_v, w_p of spec.md §4.3.
	WeightDistance float64
	WeightVehicles float64
	WeightPenalty  float64
}

// DefaultConfig returns the spec's stated defaults: P=50, E=10, G=100,
// p_x=0.8, p_m=0.3, p_ls=0.5, k=5, S=50, and fitness weights
// w_d=1, w_v=1000, w_p=100000. Seed defaults to 42 (deterministic).
func DefaultConfig() Config {
	return Config{
		PopulationSize:  50,
		EliteSize:       10,
		Generations:     100,
		CrossoverRate:   0.8,
		MutationRate:    0.3,
		LocalSearchRate: 0.5,
		TournamentSize:  5,
		Seed:            42,
		StagnationLimit: 50,
		WeightDistance:  1,
		WeightVehicles:  1000,
		WeightPenalty:   100000,
	}
}

// validate checks Config for internal consistency, returning the first
// violated InvalidConfig sentinel.
func (cfg Config) validate() error {
	if cfg.PopulationSize < 2 {
		return ErrBadPopulationSize
	}
	if cfg.EliteSize < 0 || cfg.EliteSize >= cfg.PopulationSize {
		return ErrBadEliteSize
	}
	if cfg.Generations < 0 {
		return ErrBadGenerations
	}
	if !validRate(cfg.CrossoverRate) || !validRate(cfg.MutationRate) || !validRate(cfg.LocalSearchRate) {
		return ErrBadRate
	}
	if cfg.TournamentSize < 1 {
		return ErrBadTournamentSize
	}
	if cfg.StagnationLimit < 1 {
		return ErrBadStagnationLimit
	}
	return nil
}

func validRate(p float64) bool { return p >= 0 && p <= 1 }
