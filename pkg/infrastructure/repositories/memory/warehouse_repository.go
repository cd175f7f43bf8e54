package memory

import (
	"fmt"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/repositories"
)

// WarehouseRepository provides in-memory warehouse storage
type WarehouseRepository struct {
	warehouses    []entities.Warehouse
	warehousesMap map[entities.WarehouseID]int
}

// NewWarehouseRepository creates a new in-memory warehouse repository
func NewWarehouseRepository(expectedWarehouses int) *WarehouseRepository {
	return &WarehouseRepository{
		warehouses:    make([]entities.Warehouse, 0, expectedWarehouses),
		warehousesMap: make(map[entities.WarehouseID]int, expectedWarehouses),
	}
}

// Verify interface compliance
var _ repositories.WarehouseRepository = (*WarehouseRepository)(nil)

// LoadWarehouses loads warehouses into the repository
func (r *WarehouseRepository) LoadWarehouses(warehouses []*entities.Warehouse) error {
	for _, warehouse := range warehouses {
		r.AddWarehouse(*warehouse)
	}
	return nil
}

// AddWarehouse adds a warehouse to the repository
func (r *WarehouseRepository) AddWarehouse(warehouse entities.Warehouse) {
	r.warehousesMap[warehouse.ID] = len(r.warehouses)
	r.warehouses = append(r.warehouses, warehouse)
}

// GetWarehouse returns reference data for a warehouse ID
func (r *WarehouseRepository) GetWarehouse(id entities.WarehouseID) (*entities.Warehouse, error) {
	index, exists := r.warehousesMap[id]
	if !exists {
		return nil, fmt.Errorf("warehouse not found: %s", id)
	}
	return &r.warehouses[index], nil
}

// GetAllWarehouses returns all warehouses
func (r *WarehouseRepository) GetAllWarehouses() ([]*entities.Warehouse, error) {
	var warehouses []*entities.Warehouse
	for i := range r.warehouses {
		warehouses = append(warehouses, &r.warehouses[i])
	}
	return warehouses, nil
}
