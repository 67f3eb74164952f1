// Package vrptw - genetic algorithm driver loop (spec.md §4.4).
//
// Run wires together every operator built so far: a diversified initial
// population, tournament selection, BRX crossover, the three mutation
// operators, intra-route local search, diversity-aware elitist survivor
// selection, and a stagnation-triggered partial restart. The loop itself
// mirrors the teacher's style of a single deterministic top-level
// function driving smaller, independently-testable helpers (tsp.Solve's
// relationship to TwoOpt/NearestNeighbor/etc.), generalized from a single
// best-tour search to a population-based metaheuristic.
//
// Determinism: the only source of randomness is the *rand.Rand derived
// from Config.Seed. Per-generation, per-child-pair streams are pre-drawn
// with subSeeds before the generation's work begins (rng.go), so the
// generation loop's outcome does not depend on whether children are
// produced sequentially or concurrently — only on Config.Seed.
package vrptw

import (
	"math/rand"
	"sort"
)

// Run executes the full hybrid metaheuristic: a Solomon-I1/greedy/mutated
// diversified initial population, followed by Config.Generations rounds of
// tournament selection, BRX crossover, mutation, and local search, with
// diversity-aware elitist replacement and stagnation-triggered partial
// restarts. It returns the best solution found (by Config's configured
// fitness weights), a per-generation convergence Trace, and an error if
// cfg fails validation or an operator reports a broken conservation
// invariant (ErrInternalInvariantViolation — a bug in this package, never
// expected from valid input).
func Run(inst *Instance, cfg Config) (*Solution, Trace, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	rng := rngFromSeed(cfg.Seed)

	pop, err := initialPopulation(inst, cfg, rng)
	if err != nil {
		return nil, nil, err
	}
	best := fittest(pop)

	trace := make(Trace, 0, cfg.Generations)
	stagnation := 0

	for gen := 0; gen < cfg.Generations; gen++ {
		children, err := reproduceGeneration(inst, cfg, pop, rng)
		if err != nil {
			return nil, nil, err
		}

		combined := make([]*Solution, 0, len(pop)+len(children))
		combined = append(combined, pop...)
		combined = append(combined, children...)
		pop = selectSurvivors(combined, cfg.PopulationSize, cfg.EliteSize, rng)

		genBest := fittest(pop)
		var sumFitness float64
		for _, s := range pop {
			sumFitness += s.Fitness()
		}
		trace = append(trace, GenerationStats{
			BestFitness: genBest.Fitness(),
			MeanFitness: sumFitness / float64(len(pop)),
		})

		if genBest.Fitness() < best.Fitness() {
			best = genBest
			stagnation = 0
		} else {
			stagnation++
		}

		if stagnation >= cfg.StagnationLimit {
			pop, err = stagnationRestart(inst, cfg, pop, rng)
			if err != nil {
				return nil, nil, err
			}
			stagnation = 0
		}
	}

	return best, trace, nil
}

// fittest returns the lowest-fitness solution in pop.
func fittest(pop []*Solution) *Solution {
	best := pop[0]
	for _, s := range pop[1:] {
		if s.Fitness() < best.Fitness() {
			best = s
		}
	}
	return best
}

// reproduceGeneration produces Config.PopulationSize children from pop via
// tournament selection, BRX crossover (at CrossoverRate, else the parents
// are cloned through unchanged), per-child mutation (at MutationRate), and
// per-child local search (at LocalSearchRate). One *rand.Rand stream is
// pre-drawn per child pair so the result is independent of evaluation
// order (rng.go's subSeeds).
func reproduceGeneration(inst *Instance, cfg Config, pop []*Solution, rng *rand.Rand) ([]*Solution, error) {
	numPairs := (cfg.PopulationSize + 1) / 2
	seeds := subSeeds(rng, numPairs)

	children := make([]*Solution, 0, numPairs*2)
	for i := 0; i < numPairs; i++ {
		childRNG := rngFromSeed(seeds[i])

		p1 := tournamentSelect(pop, cfg.TournamentSize, childRNG)
		p2 := tournamentSelect(pop, cfg.TournamentSize, childRNG)

		var c1, c2 *Solution
		if childRNG.Float64() < cfg.CrossoverRate {
			var err error
			c1, c2, err = crossoverBRX(inst, p1, p2, childRNG)
			if err != nil {
				return nil, err
			}
		} else {
			c1, c2 = p1.Clone(), p2.Clone()
		}
		c1.withWeights(cfg)
		c2.withWeights(cfg)

		if childRNG.Float64() < cfg.MutationRate {
			if err := applyMutation(inst, c1, chooseMutationKind(childRNG), childRNG); err != nil {
				return nil, err
			}
		}
		if childRNG.Float64() < cfg.MutationRate {
			if err := applyMutation(inst, c2, chooseMutationKind(childRNG), childRNG); err != nil {
				return nil, err
			}
		}
		if childRNG.Float64() < cfg.LocalSearchRate {
			if err := localSearch(inst, c1); err != nil {
				return nil, err
			}
		}
		if childRNG.Float64() < cfg.LocalSearchRate {
			if err := localSearch(inst, c2); err != nil {
				return nil, err
			}
		}

		children = append(children, c1, c2)
	}

	if len(children) > cfg.PopulationSize {
		children = children[:cfg.PopulationSize]
	}
	return children, nil
}

// initialPopulation builds a diversified starting population: 40% from
// Solomon-I1 with randomized (alpha, mu, lambda) in [0.5,2.0]x[0.5,2.0]x
// [0.5,3.0], 40% from a randomized-greedy construction (insertRemaining
// over a shuffled customer order), and the remainder as mutated clones of
// the fittest member of that seeded pool (2-4 random mutations each),
// matching the reference driver's best.copy()-per-slot fill (spec.md §4.4;
// original_source/src/genetic_algorithm.py). A Solomon-I1 seed that left
// customers unrouted is completed with insertRemaining before it joins the
// pool. Returns the first error any constructor or mutation reports.
func initialPopulation(inst *Instance, cfg Config, rng *rand.Rand) ([]*Solution, error) {
	pop := make([]*Solution, 0, cfg.PopulationSize)

	numSolomon := int(0.4 * float64(cfg.PopulationSize))
	for i := 0; i < numSolomon; i++ {
		params := ConstructionParams{
			Alpha:  0.5 + rng.Float64()*1.5,
			Mu:     0.5 + rng.Float64()*1.5,
			Lambda: 0.5 + rng.Float64()*2.5,
		}
		s, diag, err := SolomonInsertion(inst, params, rng)
		if err != nil {
			return nil, err
		}
		if diag.UnroutedCount > 0 {
			routed := make(map[int]bool)
			for _, id := range s.flattenCustomerIDs() {
				routed[id] = true
			}
			var missing []int
			for _, id := range inst.CustomerIDs() {
				if !routed[id] {
					missing = append(missing, id)
				}
			}
			s = NewSolution(inst, insertRemaining(inst, s.Routes, missing))
		}
		s.withWeights(cfg)
		pop = append(pop, s)
	}

	numGreedy := int(0.4 * float64(cfg.PopulationSize))
	for i := 0; i < numGreedy; i++ {
		s := randomizedGreedyConstruct(inst, rng)
		s.withWeights(cfg)
		pop = append(pop, s)
	}

	if len(pop) == 0 {
		// Guards the mutated-clone loop below against an empty base pool on
		// very small population sizes, where 40% rounds down to zero twice.
		s := randomizedGreedyConstruct(inst, rng)
		s.withWeights(cfg)
		pop = append(pop, s)
	}

	seededBest := fittest(pop)
	for len(pop) < cfg.PopulationSize {
		clone := seededBest.Clone()
		if err := mutateRandomTimes(inst, clone, rng); err != nil {
			return nil, err
		}
		pop = append(pop, clone)
	}

	return pop, nil
}

// randomizedGreedyConstruct builds a solution by shuffling the customer
// visiting order and handing it to insertRemaining, the same
// cheapest-feasible-insertion utility BRX and repair use — a simpler,
// unweighted alternative to Solomon-I1's scored insertion, used purely to
// diversify the initial population.
func randomizedGreedyConstruct(inst *Instance, rng *rand.Rand) *Solution {
	ids := append([]int(nil), inst.CustomerIDs()...)
	shuffleIntsInPlace(ids, rng)
	routes := insertRemaining(inst, nil, ids)
	return NewSolution(inst, routes)
}

// mutateRandomTimes applies 2 to 4 randomly-chosen mutation operators to
// sol in sequence, in place. A conservation violation on any of them
// aborts the remaining applications and is returned immediately.
func mutateRandomTimes(inst *Instance, sol *Solution, rng *rand.Rand) error {
	times := 2 + rng.Intn(3)
	for i := 0; i < times; i++ {
		if err := applyMutation(inst, sol, chooseMutationKind(rng), rng); err != nil {
			return err
		}
	}
	return nil
}

// stagnationRestart retains the fittest half of pop and refills the rest:
// 70% as a mutated clone of a uniformly-chosen retained solution (2-4
// mutations), 30% as a fresh randomized-greedy construction — triggered
// when the best-so-far fitness has not improved for Config.StagnationLimit
// consecutive generations.
func stagnationRestart(inst *Instance, cfg Config, pop []*Solution, rng *rand.Rand) ([]*Solution, error) {
	sorted := make([]*Solution, len(pop))
	copy(sorted, pop)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Fitness() < sorted[j].Fitness() })

	keep := cfg.PopulationSize / 2
	if keep < 1 {
		keep = 1
	}
	if keep > len(sorted) {
		keep = len(sorted)
	}
	retained := sorted[:keep]

	next := make([]*Solution, 0, cfg.PopulationSize)
	next = append(next, retained...)

	for len(next) < cfg.PopulationSize {
		if rng.Float64() < 0.7 {
			base := retained[rng.Intn(len(retained))]
			clone := base.Clone()
			if err := mutateRandomTimes(inst, clone, rng); err != nil {
				return nil, err
			}
			next = append(next, clone)
		} else {
			s := randomizedGreedyConstruct(inst, rng)
			s.withWeights(cfg)
			next = append(next, s)
		}
	}

	return next, nil
}
