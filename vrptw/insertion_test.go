package vrptw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertRemaining_FillsExistingRouteWhenFeasible(t *testing.T) {
	inst := starInstance(t)
	routes := []*Route{NewRoute(inst, []int{1})}

	routes = insertRemaining(inst, routes, []int{5})
	require.Len(t, routes, 1)
	require.ElementsMatch(t, []int{1, 5}, routes[0].Customers)
	require.True(t, routes[0].Feasible())
}

func TestInsertRemaining_AppendsNewRouteWhenNoneFits(t *testing.T) {
	depot := Customer{ReadyTime: 0, DueTime: 1000}
	customers := []Customer{
		{ID: 1, X: 10, Demand: 25, ReadyTime: 0, DueTime: 1000},
		{ID: 2, X: 20, Demand: 25, ReadyTime: 0, DueTime: 1000},
	}
	inst := mustInstance(t, depot, customers, 2, 30, 0)

	routes := []*Route{NewRoute(inst, []int{1})}
	routes = insertRemaining(inst, routes, []int{2}) // 25+25 > 30 capacity, needs a new route
	require.Len(t, routes, 2)
}

func TestInsertRemaining_ConservesEveryCustomer(t *testing.T) {
	inst := starInstance(t)
	routes := insertRemaining(inst, nil, inst.CustomerIDs())

	var flattened []int
	for _, r := range routes {
		flattened = append(flattened, r.Customers...)
	}
	require.ElementsMatch(t, inst.CustomerIDs(), flattened)
}

func TestInsertRemaining_IsDeterministicGivenInputOrder(t *testing.T) {
	inst := starInstance(t)
	order := []int{3, 1, 4, 2, 5}

	routesA := insertRemaining(inst, nil, order)
	routesB := insertRemaining(inst, nil, order)

	require.Equal(t, flattenRoutes(routesA), flattenRoutes(routesB))
}

func flattenRoutes(routes []*Route) []int {
	var out []int
	for _, r := range routes {
		out = append(out, r.Customers...)
	}
	return out
}
