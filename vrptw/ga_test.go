package vrptw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solveware/vrptw"
)

func TestRun_DeterministicGivenSameSeed(t *testing.T) {
	inst := sixCustomerInstance(t)
	cfg := smallConfig(42)

	best1, trace1, err := vrptw.Run(inst, cfg)
	require.NoError(t, err)
	best2, trace2, err := vrptw.Run(inst, cfg)
	require.NoError(t, err)

	require.Equal(t, best1.Fitness(), best2.Fitness())
	require.Equal(t, trace1, trace2)
}

func TestRun_DifferentSeedsCanDiffer(t *testing.T) {
	inst := sixCustomerInstance(t)

	_, traceA, err := vrptw.Run(inst, smallConfig(1))
	require.NoError(t, err)
	_, traceB, err := vrptw.Run(inst, smallConfig(2))
	require.NoError(t, err)

	// Not a hard requirement of any invariant, but with distinct seeds and a
	// handful of generations the two traces are overwhelmingly unlikely to
	// be byte-identical; a spurious failure here would flag a determinism
	// bug (e.g. an accidental shared RNG) worth investigating.
	require.NotEqual(t, traceA, traceB)
}

func TestRun_TraceHasOneEntryPerGeneration(t *testing.T) {
	inst := sixCustomerInstance(t)
	cfg := smallConfig(7)

	_, trace, err := vrptw.Run(inst, cfg)
	require.NoError(t, err)
	require.Len(t, trace, cfg.Generations)
}

func TestRun_BestFitnessIsMonotoneNonIncreasing(t *testing.T) {
	inst := sixCustomerInstance(t)
	cfg := smallConfig(7)
	cfg.Generations = 15

	_, trace, err := vrptw.Run(inst, cfg)
	require.NoError(t, err)

	for i := 1; i < len(trace); i++ {
		require.LessOrEqual(t, trace[i].BestFitness, trace[i-1].BestFitness)
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	inst := sixCustomerInstance(t)
	cfg := smallConfig(1)
	cfg.PopulationSize = 1

	_, _, err := vrptw.Run(inst, cfg)
	require.ErrorIs(t, err, vrptw.ErrBadPopulationSize)
}

func TestRun_ZeroGenerationsReturnsInitialBest(t *testing.T) {
	inst := sixCustomerInstance(t)
	cfg := smallConfig(1)
	cfg.Generations = 0

	best, trace, err := vrptw.Run(inst, cfg)
	require.NoError(t, err)
	require.Empty(t, trace)
	require.NotNil(t, best)
}

func TestRun_ProducesAFeasibleSolutionOnAnEasyInstance(t *testing.T) {
	inst := sixCustomerInstance(t)
	cfg := smallConfig(42)
	cfg.Generations = 20

	best, _, err := vrptw.Run(inst, cfg)
	require.NoError(t, err)
	require.True(t, best.Feasible())
	require.ElementsMatch(t, inst.CustomerIDs(), func() []int {
		exported := best.Export("ga")
		var ids []int
		for _, r := range exported.Routes {
			ids = append(ids, r.Customers...)
		}
		return ids
	}())
}
