// Package vrptw implements a hybrid metaheuristic solver for the Vehicle
// Routing Problem with Time Windows (VRPTW): a single depot, a fleet of
// identical capacity-constrained vehicles, and a set of customers each with
// a location, a demand, a service duration, and a hard time window during
// which service must begin.
//
// Two algorithms cooperate:
//
//   - SolomonInsertion builds a feasible (or maximally feasible) seed tour
//     set using the classic Solomon-I1 parallel insertion heuristic.
//   - Run refines a population of such seeds with a genetic algorithm:
//     tournament selection, route-preserving crossover (BRX), inter-route
//     mutation (Relocate, Exchange), intra-route local search (2-opt), and
//     diversity-aware elitist replacement, with a stagnation-triggered
//     partial restart.
//
// Design principles (mirrored from the package this module is built in the
// style of):
//
//   - Determinism: every stochastic decision flows through an explicit
//     *rand.Rand; there is no package-level generator. Same (instance,
//     config, seed) always yields the same best fitness and convergence
//     trace.
//   - Strict sentinels: validation failures return package-level errors
//     (see errors.go), checked with errors.Is; no panics on user input.
//   - No I/O: the core is synchronous and single-threaded, touches no
//     files, network, or environment. CSV ingestion, CLI, plotting, and
//     persistence are the caller's concern.
//
// Entry points: BuildInstance, SolomonInsertion, and Run.
package vrptw
