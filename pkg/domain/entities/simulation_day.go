package entities

import "time"

// SimulationDay is one product's simulated outcome for one day under one
// strategy. Rows are immutable once emitted; the ordered sequence over the
// calendar is the simulation's primary output.
type SimulationDay struct {
	Date           time.Time
	ProductID      ProductID
	WarehouseID    WarehouseID
	Strategy       string
	Demand         Quantity
	InboundUnits   Quantity
	ActualOutbound Quantity
	InventoryLevel Quantity
	UnmetDemand    Quantity
	Stockout       bool
}

// SimulationKey is the composite key under which at most one SimulationDay
// row may exist. It is the idempotence boundary for persistence.
type SimulationKey struct {
	Date        time.Time
	ProductID   ProductID
	WarehouseID WarehouseID
	Strategy    string
}

// Key returns the row's composite key
func (d *SimulationDay) Key() SimulationKey {
	return SimulationKey{
		Date:        d.Date,
		ProductID:   d.ProductID,
		WarehouseID: d.WarehouseID,
		Strategy:    d.Strategy,
	}
}
