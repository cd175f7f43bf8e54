package gormdb

import (
	"time"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// SimulationRecord is the relational shape of one product-level row. The
// composite primary key makes re-inserts of the same (date, product,
// warehouse, strategy) a no-op under ON CONFLICT handling.
type SimulationRecord struct {
	Date           time.Time `gorm:"primaryKey;type:date" json:"date"`
	ProductID      string    `gorm:"primaryKey;size:64;index" json:"product_id"`
	WarehouseID    string    `gorm:"primaryKey;size:64;index" json:"warehouse_id"`
	Strategy       string    `gorm:"primaryKey;size:32" json:"strategy"`
	Demand         int64     `gorm:"not null" json:"demand"`
	InboundUnits   int64     `gorm:"not null" json:"inbound_units"`
	ActualOutbound int64     `gorm:"not null" json:"actual_outbound"`
	InventoryLevel int64     `gorm:"not null" json:"inventory_level"`
	UnmetDemand    int64     `gorm:"not null" json:"unmet_demand"`
	StockoutFlag   bool      `gorm:"not null" json:"stockout_flag"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName overrides the default table name
func (SimulationRecord) TableName() string {
	return "simulation_days"
}

// OperationsRecord is the relational shape of one warehouse-level row
type OperationsRecord struct {
	Date                 time.Time `gorm:"primaryKey;type:date" json:"date"`
	WarehouseID          string    `gorm:"primaryKey;size:64;index" json:"warehouse_id"`
	Strategy             string    `gorm:"primaryKey;size:32" json:"strategy"`
	InboundUnits         int64     `gorm:"not null" json:"inbound_units"`
	OrdersFulfilled      int64     `gorm:"not null" json:"orders_fulfilled"`
	InventoryLevel       int64     `gorm:"not null" json:"inventory_level"`
	MissedSales          int64     `gorm:"not null" json:"missed_sales"`
	OutboundShipments    int       `gorm:"not null" json:"outbound_shipments"`
	VanUtilization       float64   `gorm:"not null" json:"van_utilization"`
	InboundShipments     int       `gorm:"not null" json:"inbound_shipments"`
	TruckUtilization     float64   `gorm:"not null" json:"truck_utilization"`
	WarehouseUtilization float64   `gorm:"not null" json:"warehouse_utilization"`
	StaffCount           int       `gorm:"not null" json:"staff_count"`
	Errors               int       `gorm:"not null" json:"errors"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName overrides the default table name
func (OperationsRecord) TableName() string {
	return "operations_days"
}

func toSimulationRecord(row entities.SimulationDay) SimulationRecord {
	return SimulationRecord{
		Date:           row.Date,
		ProductID:      string(row.ProductID),
		WarehouseID:    string(row.WarehouseID),
		Strategy:       row.Strategy,
		Demand:         int64(row.Demand),
		InboundUnits:   int64(row.InboundUnits),
		ActualOutbound: int64(row.ActualOutbound),
		InventoryLevel: int64(row.InventoryLevel),
		UnmetDemand:    int64(row.UnmetDemand),
		StockoutFlag:   row.Stockout,
	}
}

func toOperationsRecord(row entities.OperationsDay) OperationsRecord {
	return OperationsRecord{
		Date:                 row.Date,
		WarehouseID:          string(row.WarehouseID),
		Strategy:             row.Strategy,
		InboundUnits:         int64(row.InboundUnits),
		OrdersFulfilled:      int64(row.OrdersFulfilled),
		InventoryLevel:       int64(row.InventoryLevel),
		MissedSales:          int64(row.MissedSales),
		OutboundShipments:    row.OutboundShipments,
		VanUtilization:       row.VanUtilization,
		InboundShipments:     row.InboundShipments,
		TruckUtilization:     row.TruckUtilization,
		WarehouseUtilization: row.WarehouseUtilization,
		StaffCount:           row.StaffCount,
		Errors:               row.Errors,
	}
}
