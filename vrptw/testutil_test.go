// Package vrptw_test exercises the package's public API end-to-end. Shared
// fixtures live here; individual scenarios live in their own *_test.go files,
// mirroring the teacher package's tsp_test convention.
package vrptw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solveware/vrptw"
)

// sixCustomerInstance builds a small, hand-crafted VRPTW instance with wide
// time windows and a capacity that forces at least two vehicles (60 total
// demand over a capacity of 30), used across the external test files.
func sixCustomerInstance(t *testing.T) *vrptw.Instance {
	t.Helper()
	depot := vrptw.Customer{ReadyTime: 0, DueTime: 1000}
	customers := []vrptw.Customer{
		{ID: 1, X: 10, Y: 0, Demand: 10, ReadyTime: 0, DueTime: 1000, ServiceTime: 5},
		{ID: 2, X: 20, Y: 0, Demand: 10, ReadyTime: 0, DueTime: 1000, ServiceTime: 5},
		{ID: 3, X: 0, Y: 10, Demand: 10, ReadyTime: 0, DueTime: 1000, ServiceTime: 5},
		{ID: 4, X: 0, Y: 20, Demand: 10, ReadyTime: 0, DueTime: 1000, ServiceTime: 5},
		{ID: 5, X: -10, Y: 0, Demand: 10, ReadyTime: 0, DueTime: 1000, ServiceTime: 5},
		{ID: 6, X: 0, Y: -10, Demand: 10, ReadyTime: 0, DueTime: 1000, ServiceTime: 5},
	}
	inst, err := vrptw.BuildInstance(depot, customers, 4, 30, 0)
	require.NoError(t, err)
	return inst
}

// smallConfig returns a Config sized for fast, deterministic tests rather
// than production-quality convergence: a handful of generations over a
// handful of individuals.
func smallConfig(seed int64) vrptw.Config {
	cfg := vrptw.DefaultConfig()
	cfg.PopulationSize = 8
	cfg.EliteSize = 2
	cfg.Generations = 5
	cfg.TournamentSize = 3
	cfg.StagnationLimit = 3
	cfg.Seed = seed
	return cfg
}
