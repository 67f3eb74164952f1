package vrptw

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func twoRouteSolution(t *testing.T) (*Instance, *Solution) {
	t.Helper()
	inst := starInstance(t)
	sol := NewSolution(inst, []*Route{
		NewRoute(inst, []int{1, 5}),
		NewRoute(inst, []int{2, 3}),
		NewRoute(inst, []int{4}),
	})
	return inst, sol
}

func TestRelocateMutation_ConservesCustomers(t *testing.T) {
	inst, sol := twoRouteSolution(t)
	before := append([]int(nil), sol.flattenCustomerIDs()...)

	err := relocateMutation(inst, sol, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.ElementsMatch(t, before, sol.flattenCustomerIDs())
}

func TestRelocateMutation_NoopOnSingleRoute(t *testing.T) {
	inst := starInstance(t)
	sol := NewSolution(inst, []*Route{NewRoute(inst, inst.CustomerIDs())})
	before := append([]int(nil), sol.flattenCustomerIDs()...)

	err := relocateMutation(inst, sol, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, before, sol.flattenCustomerIDs())
}

func TestRelocateMutation_RespectsCapacity(t *testing.T) {
	depot := Customer{ReadyTime: 0, DueTime: 1000}
	customers := []Customer{
		{ID: 1, X: 10, Demand: 30, ReadyTime: 0, DueTime: 1000},
		{ID: 2, X: 20, Demand: 30, ReadyTime: 0, DueTime: 1000},
	}
	inst := mustInstance(t, depot, customers, 2, 30, 0)
	sol := NewSolution(inst, []*Route{
		NewRoute(inst, []int{1}),
		NewRoute(inst, []int{2}),
	})

	// Every relocate draw should be rejected as a no-op: moving either
	// customer into the other's route would exceed capacity (30+30 > 30).
	for seed := int64(0); seed < 20; seed++ {
		before := append([]int(nil), sol.flattenCustomerIDs()...)
		err := relocateMutation(inst, sol, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Equal(t, 30.0, sol.Routes[0].Load())
		require.Equal(t, 30.0, sol.Routes[1].Load())
		require.ElementsMatch(t, before, sol.flattenCustomerIDs())
	}
}

func TestExchangeMutation_ConservesCustomers(t *testing.T) {
	inst, sol := twoRouteSolution(t)
	before := append([]int(nil), sol.flattenCustomerIDs()...)

	err := exchangeMutation(inst, sol, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.ElementsMatch(t, before, sol.flattenCustomerIDs())
}

func TestExchangeMutation_NoopWithFewerThanTwoNonEmptyRoutes(t *testing.T) {
	inst := starInstance(t)
	sol := NewSolution(inst, []*Route{NewRoute(inst, inst.CustomerIDs()), NewRoute(inst, nil)})
	before := append([]int(nil), sol.flattenCustomerIDs()...)

	err := exchangeMutation(inst, sol, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, before, sol.flattenCustomerIDs())
}

func TestBestInsertPositionByDistance_PicksMinimalDelta(t *testing.T) {
	inst := starInstance(t)
	// existing route [1, 2]; inserting 5 (close to 1) should be cheaper near the front.
	pos, delta, found := bestInsertPositionByDistance(inst, []int{1, 2}, 5)
	require.True(t, found)
	require.GreaterOrEqual(t, pos, 0)
	require.LessOrEqual(t, pos, 2)
	require.GreaterOrEqual(t, delta, -1e-9)
}

func TestBestInsertPositionByDistance_EmptyExisting(t *testing.T) {
	inst := starInstance(t)
	pos, delta, found := bestInsertPositionByDistance(inst, nil, 1)
	require.True(t, found)
	require.Equal(t, 0, pos)
	require.InDelta(t, 2*inst.Dist(0, 1), delta, 1e-9) // out-and-back to an otherwise-empty route
}

func TestRemoveAt(t *testing.T) {
	route := []int{1, 2, 3}
	out := removeAt(route, 1)
	require.Equal(t, []int{1, 3}, out)
	require.Equal(t, []int{1, 2, 3}, route) // untouched
}

func TestChooseMutationKind_CoversAllVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	seen := map[mutationKind]bool{}
	for i := 0; i < 500; i++ {
		seen[chooseMutationKind(rng)] = true
	}
	require.True(t, seen[mutRelocate])
	require.True(t, seen[mutExchange])
	require.True(t, seen[mutTwoOpt])
}
