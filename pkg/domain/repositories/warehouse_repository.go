package repositories

import "github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"

// WarehouseRepository provides access to warehouse reference data
type WarehouseRepository interface {
	GetWarehouse(id entities.WarehouseID) (*entities.Warehouse, error)
	GetAllWarehouses() ([]*entities.Warehouse, error)
	LoadWarehouses(warehouses []*entities.Warehouse) error
}
