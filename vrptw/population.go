// Package vrptw - population-level operators: diversity, selection
// (spec.md §4.4 steps 1 and 5).
package vrptw

import (
	"math/rand"
	"sort"
)

// sequenceDistance is the diversity metric fixed by the spec: the
// fraction of positions at which two equal-length flattened customer-id
// sequences disagree, or 1.0 (maximally diverse) if the sequences differ
// in length — two solutions with a different number of routed stops are
// never considered equal-length-comparable.
func sequenceDistance(a, b *Solution) float64 {
	seqA := a.flattenCustomerIDs()
	seqB := b.flattenCustomerIDs()
	if len(seqA) != len(seqB) {
		return 1.0
	}
	if len(seqA) == 0 {
		return 0
	}

	disagree := 0
	for i := range seqA {
		if seqA[i] != seqB[i] {
			disagree++
		}
	}
	return float64(disagree) / float64(len(seqA))
}

// diversityScore is a candidate's mean sequenceDistance against the
// solutions already chosen as survivors; an empty selected set scores 0,
// so the first non-elite pick is driven purely by fitness.
func diversityScore(candidate *Solution, selected []*Solution) float64 {
	if len(selected) == 0 {
		return 0
	}
	var sum float64
	for _, s := range selected {
		sum += sequenceDistance(candidate, s)
	}
	return sum / float64(len(selected))
}

// tournamentSelect draws k distinct solutions uniformly from pop (without
// replacement within the tournament; k is capped at len(pop)) and returns
// the fittest (lowest fitness).
func tournamentSelect(pop []*Solution, k int, rng *rand.Rand) *Solution {
	if k > len(pop) {
		k = len(pop)
	}
	order := rng.Perm(len(pop))
	best := pop[order[0]]
	for _, idx := range order[1:k] {
		cand := pop[idx]
		if cand.Fitness() < best.Fitness() {
			best = cand
		}
	}
	return best
}

// selectSurvivors implements the diversity-aware elitist replacement: sort
// the combined parents+children pool ascending by fitness, keep the top
// eliteSize unconditionally, then fill the remaining populationSize-
// eliteSize slots with a weighted random draw without replacement, each
// candidate's weight being 1/(fitness+1) + 0.3*diversityScore(candidate,
// survivors-so-far).
func selectSurvivors(combined []*Solution, populationSize, eliteSize int, rng *rand.Rand) []*Solution {
	sorted := make([]*Solution, len(combined))
	copy(sorted, combined)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness() < sorted[j].Fitness()
	})

	elite := eliteSize
	if elite > len(sorted) {
		elite = len(sorted)
	}

	survivors := make([]*Solution, 0, populationSize)
	survivors = append(survivors, sorted[:elite]...)

	pool := make([]*Solution, len(sorted)-elite)
	copy(pool, sorted[elite:])

	for len(survivors) < populationSize && len(pool) > 0 {
		weights := make([]float64, len(pool))
		total := 0.0
		for i, cand := range pool {
			w := 1/(cand.Fitness()+1) + 0.3*diversityScore(cand, survivors)
			weights[i] = w
			total += w
		}

		pick := rng.Float64() * total
		chosen := len(pool) - 1
		cum := 0.0
		for i, w := range weights {
			cum += w
			if pick <= cum {
				chosen = i
				break
			}
		}

		survivors = append(survivors, pool[chosen])
		pool = append(pool[:chosen], pool[chosen+1:]...)
	}

	return survivors
}
