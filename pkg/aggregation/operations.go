package aggregation

import (
	"fmt"
	"math"
	"sort"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// Fixed capacity constants for derived operational metrics
const (
	DefaultVanCapacity entities.Quantity = 100

	ordersPerWorker = 50
	minStaff        = 2
	maxStaff        = 5

	baseErrorRate = 0.01
	maxErrorRate  = 0.05
)

// Config holds the outbound capacity constant. Inbound truck capacity is
// per-strategy and comes from the strategy configuration itself.
type Config struct {
	VanCapacity entities.Quantity
}

// DefaultConfig returns the standard capacity configuration
func DefaultConfig() Config {
	return Config{VanCapacity: DefaultVanCapacity}
}

// Shipments returns the number of whole vehicles needed to move the given
// units (ceiling division); zero units need zero vehicles
func Shipments(units, vehicleCapacity entities.Quantity) int {
	if units <= 0 {
		return 0
	}
	return int((units + vehicleCapacity - 1) / vehicleCapacity)
}

// VehicleUtilization returns the fraction of dispatched vehicle capacity
// actually used. With zero shipments the ratio is undefined; it is reported
// as 0 throughout this package.
func VehicleUtilization(units entities.Quantity, shipments int, vehicleCapacity entities.Quantity) float64 {
	if shipments == 0 {
		return 0
	}
	return float64(units) / float64(int64(shipments)*int64(vehicleCapacity))
}

// StaffCount returns the staffing level for a day's fulfilled orders:
// one worker per 50 orders rounded down, clamped to [2, 5]
func StaffCount(ordersFulfilled entities.Quantity) int {
	staff := int(ordersFulfilled / ordersPerWorker)
	if staff < minStaff {
		return minStaff
	}
	if staff > maxStaff {
		return maxStaff
	}
	return staff
}

// ExpectedErrors estimates picking errors for a day. The error rate grows
// with orders per worker and is capped at 5%; zero orders or zero staff
// produce zero errors.
func ExpectedErrors(ordersFulfilled entities.Quantity, staffCount int) int {
	if ordersFulfilled == 0 || staffCount == 0 {
		return 0
	}

	rate := baseErrorRate * (float64(ordersFulfilled) / float64(staffCount)) / ordersPerWorker
	if rate > maxErrorRate {
		rate = maxErrorRate
	}
	return int(math.Floor(rate * float64(ordersFulfilled)))
}

// Aggregate groups product-level rows by (date, warehouse, strategy), sums
// the flow quantities and derives the operational metrics. It is a pure
// transform: the same rows always produce the same output, and aggregating
// disjoint subsets then summing equals aggregating everything at once.
func Aggregate(
	rows []entities.SimulationDay,
	warehouses []*entities.Warehouse,
	strategies []*entities.Strategy,
	config Config,
) ([]entities.OperationsDay, error) {
	if config.VanCapacity <= 0 {
		return nil, fmt.Errorf("van capacity must be positive, got %d", config.VanCapacity)
	}

	capacityByWarehouse := make(map[entities.WarehouseID]entities.Quantity, len(warehouses))
	for _, warehouse := range warehouses {
		capacityByWarehouse[warehouse.ID] = warehouse.Capacity
	}
	truckByStrategy := make(map[string]entities.Quantity, len(strategies))
	for _, strategy := range strategies {
		truckByStrategy[strategy.Name] = strategy.TruckCapacity
	}

	groups := make(map[entities.OperationsKey]*entities.OperationsDay)
	for _, row := range rows {
		key := entities.OperationsKey{
			Date:        row.Date,
			WarehouseID: row.WarehouseID,
			Strategy:    row.Strategy,
		}
		group, ok := groups[key]
		if !ok {
			group = &entities.OperationsDay{
				Date:        row.Date,
				WarehouseID: row.WarehouseID,
				Strategy:    row.Strategy,
			}
			groups[key] = group
		}
		group.InboundUnits += row.InboundUnits
		group.OrdersFulfilled += row.ActualOutbound
		group.InventoryLevel += row.InventoryLevel
		group.MissedSales += row.UnmetDemand
	}

	result := make([]entities.OperationsDay, 0, len(groups))
	for _, group := range groups {
		warehouseCapacity, ok := capacityByWarehouse[group.WarehouseID]
		if !ok {
			return nil, fmt.Errorf("unknown warehouse in simulation rows: %s", group.WarehouseID)
		}
		truckCapacity, ok := truckByStrategy[group.Strategy]
		if !ok {
			return nil, fmt.Errorf("unknown strategy in simulation rows: %s", group.Strategy)
		}

		group.OutboundShipments = Shipments(group.OrdersFulfilled, config.VanCapacity)
		group.VanUtilization = VehicleUtilization(group.OrdersFulfilled, group.OutboundShipments, config.VanCapacity)
		group.InboundShipments = Shipments(group.InboundUnits, truckCapacity)
		group.TruckUtilization = VehicleUtilization(group.InboundUnits, group.InboundShipments, truckCapacity)
		// Deliberately uncapped: values above 1 surface an over-capacity day
		group.WarehouseUtilization = float64(group.InventoryLevel) / float64(warehouseCapacity)
		group.StaffCount = StaffCount(group.OrdersFulfilled)
		group.Errors = ExpectedErrors(group.OrdersFulfilled, group.StaffCount)

		result = append(result, *group)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		if result[i].WarehouseID != result[j].WarehouseID {
			return result[i].WarehouseID < result[j].WarehouseID
		}
		return result[i].Strategy < result[j].Strategy
	})

	return result, nil
}
