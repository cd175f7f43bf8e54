package entities

import "time"

// OperationsDay is one warehouse's aggregated operational picture for one
// day under one strategy. Summed fields come straight from the product-level
// rows; derived fields are pure functions of the sums and fixed capacities.
type OperationsDay struct {
	Date            time.Time
	WarehouseID     WarehouseID
	Strategy        string
	InboundUnits    Quantity
	OrdersFulfilled Quantity
	InventoryLevel  Quantity
	MissedSales     Quantity

	OutboundShipments    int
	VanUtilization       float64
	InboundShipments     int
	TruckUtilization     float64
	WarehouseUtilization float64
	StaffCount           int
	Errors               int
}

// OperationsKey is the composite key under which at most one OperationsDay
// row may exist
type OperationsKey struct {
	Date        time.Time
	WarehouseID WarehouseID
	Strategy    string
}

// Key returns the row's composite key
func (d *OperationsDay) Key() OperationsKey {
	return OperationsKey{
		Date:        d.Date,
		WarehouseID: d.WarehouseID,
		Strategy:    d.Strategy,
	}
}
