// Package vrptw - deterministic synthetic instance generator for
// benchmarks and property tests.
//
// Grounded on the teacher's builder.RandomSparse (builder/impl_random_
// sparse.go): an explicit *rand.Rand is always required (no package-level
// randomness), the customer count is checked before any allocation and the
// remaining parameters are validated by BuildInstance, and generated ids are assigned in a fixed, deterministic order (depot is
// 0, customers are 1..N in generation order) so that two calls with the
// same (cfg, rng-state) produce byte-identical instances.
package vrptw

import "math/rand"

// GeneratorConfig parametrizes GenerateInstance's synthetic-instance
// distribution: the depot sits at the centre of a square grid, customers
// are placed uniformly at random in it, demand is uniform, and each customer's time window is a
// uniformly-placed sub-window of the depot's horizon.
type GeneratorConfig struct {
	NumCustomers                   int
	GridSize                       float64 // customers and depot live in [0,GridSize]^2
	MaxDemand                      float64 // demand is drawn uniformly from [1, MaxDemand]
	Capacity                       float64
	NumVehicles                    int
	Horizon                        float64 // depot's time window is [0, Horizon]
	MinWindowWidth, MaxWindowWidth float64
	ServiceTime                    float64
}

// DefaultGeneratorConfig returns a modestly-sized instance (25 customers,
// a 100x100 grid, a 5-vehicle fleet of capacity 100) suitable for
// exercising the full construction+GA pipeline in tests without the
// runtime of a full Solomon benchmark instance.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumCustomers:   25,
		GridSize:       100,
		MaxDemand:      20,
		Capacity:       100,
		NumVehicles:    5,
		Horizon:        1000,
		MinWindowWidth: 50,
		MaxWindowWidth: 200,
		ServiceTime:    10,
	}
}

// GenerateInstance builds a deterministic synthetic VRPTW instance from
// cfg, consuming rng. The depot is placed at the grid's center with the
// full [0, Horizon] window; each customer gets a uniformly-sampled
// location, demand, and time window (clamped so ReadyTime < DueTime even
// at the horizon's edge). Validation failures are reported exactly as
// BuildInstance itself would report them, by delegating construction to it.
func GenerateInstance(cfg GeneratorConfig, rng *rand.Rand) (*Instance, error) {
	if cfg.NumCustomers <= 0 {
		return nil, ErrEmptyCustomers
	}

	depot := Customer{
		ID:        0,
		X:         cfg.GridSize / 2,
		Y:         cfg.GridSize / 2,
		ReadyTime: 0,
		DueTime:   cfg.Horizon,
	}

	customers := make([]Customer, cfg.NumCustomers)
	for i := 0; i < cfg.NumCustomers; i++ {
		ready := rng.Float64() * cfg.Horizon
		width := cfg.MinWindowWidth + rng.Float64()*(cfg.MaxWindowWidth-cfg.MinWindowWidth)
		due := ready + width
		if due > cfg.Horizon {
			due = cfg.Horizon
		}
		if due <= ready {
			due = ready + 1
		}

		customers[i] = Customer{
			ID:          i + 1,
			X:           rng.Float64() * cfg.GridSize,
			Y:           rng.Float64() * cfg.GridSize,
			Demand:      1 + rng.Float64()*(cfg.MaxDemand-1),
			ReadyTime:   ready,
			DueTime:     due,
			ServiceTime: cfg.ServiceTime,
		}
	}

	return BuildInstance(depot, customers, cfg.NumVehicles, cfg.Capacity, cfg.Horizon)
}
