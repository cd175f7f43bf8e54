package simulation

import (
	"context"
	"fmt"
	"sort"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// Driver runs the state machine independently for every product, warehouse
// and strategy combination over the full calendar. Instances never share
// state: one product's stockout cannot affect another's stock, and upstream
// supply is treated as unlimited.
type Driver struct {
	demand DemandGenerator
}

// NewDriver creates a simulation driver using the given demand generator
func NewDriver(demand DemandGenerator) *Driver {
	return &Driver{demand: demand}
}

// Run produces the product-level dataset for all combinations. Iteration
// order is sorted by strategy, product and warehouse so output is
// deterministic for a fixed seed.
func (d *Driver) Run(
	ctx context.Context,
	products []*entities.Product,
	warehouses []*entities.Warehouse,
	strategies []*entities.Strategy,
	calendar *entities.Calendar,
) ([]entities.SimulationDay, error) {
	sortedProducts := make([]*entities.Product, len(products))
	copy(sortedProducts, products)
	sort.Slice(sortedProducts, func(i, j int) bool {
		return sortedProducts[i].ID < sortedProducts[j].ID
	})

	sortedWarehouses := make([]*entities.Warehouse, len(warehouses))
	copy(sortedWarehouses, warehouses)
	sort.Slice(sortedWarehouses, func(i, j int) bool {
		return sortedWarehouses[i].ID < sortedWarehouses[j].ID
	})

	rows := make([]entities.SimulationDay, 0,
		len(strategies)*len(sortedProducts)*len(sortedWarehouses)*calendar.Len())

	for _, strategy := range strategies {
		for _, product := range sortedProducts {
			policy, err := PolicyForClass(strategy, product.Class)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve policy for product %s: %w", product.ID, err)
			}

			for _, warehouse := range sortedWarehouses {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				machine := NewStateMachine(product, warehouse.ID, strategy.Name, policy, d.demand)
				rows = append(rows, machine.Run(calendar)...)
			}
		}
	}

	return rows, nil
}
