package entities

import "fmt"

// Warehouse represents a physical storage location with a fixed unit capacity
type Warehouse struct {
	ID       WarehouseID
	Name     string
	Capacity Quantity
}

// NewWarehouse creates a validated Warehouse
func NewWarehouse(id WarehouseID, name string, capacity Quantity) (*Warehouse, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("warehouse ID cannot be empty")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("warehouse capacity must be positive, got %d", capacity)
	}

	return &Warehouse{
		ID:       id,
		Name:     name,
		Capacity: capacity,
	}, nil
}
