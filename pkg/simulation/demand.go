package simulation

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// DemandGenerator produces the daily demand quantity for a product.
// Implementations must be deterministic in (product, day index) so that every
// strategy sees the identical demand stream and outcome differences are
// attributable to the replenishment policy alone.
type DemandGenerator interface {
	Daily(product *entities.Product, dayIndex int) entities.Quantity
}

// NormalDemandGenerator draws truncated-normal integer demand from each
// product's (mean, stddev) parameters. The realization for a given
// (seed, product, day) is fixed regardless of how many instances consume it
// or in which order, because each draw gets its own derived source.
type NormalDemandGenerator struct {
	seed int64
}

// Verify interface compliance
var _ DemandGenerator = (*NormalDemandGenerator)(nil)

// NewNormalDemandGenerator creates a seeded demand generator
func NewNormalDemandGenerator(seed int64) *NormalDemandGenerator {
	return &NormalDemandGenerator{seed: seed}
}

// Daily returns the demand for one product on one simulated day
func (g *NormalDemandGenerator) Daily(product *entities.Product, dayIndex int) entities.Quantity {
	r := rand.New(rand.NewSource(g.sourceFor(product.ID, dayIndex)))

	demand := r.NormFloat64()*product.DemandStdDev + product.DemandMean
	quantity := entities.Quantity(math.Round(demand))
	if quantity < 0 {
		quantity = 0
	}
	return quantity
}

// sourceFor mixes the run seed, product identifier and day index into a
// single source seed. The multiplier spreads consecutive day indexes across
// the seed space (splitmix64 increment constant).
func (g *NormalDemandGenerator) sourceFor(id entities.ProductID, dayIndex int) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	mixed := uint64(g.seed) ^ h.Sum64() ^ (uint64(dayIndex)+1)*0x9e3779b97f4a7c15
	return int64(mixed)
}

// FixedDemandGenerator returns the same quantity every day for every product
type FixedDemandGenerator struct {
	Quantity entities.Quantity
}

// Verify interface compliance
var _ DemandGenerator = (*FixedDemandGenerator)(nil)

// Daily returns the fixed quantity
func (g *FixedDemandGenerator) Daily(product *entities.Product, dayIndex int) entities.Quantity {
	return g.Quantity
}
