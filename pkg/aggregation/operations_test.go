package aggregation

import (
	"math"
	"testing"
	"time"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

func TestShipments(t *testing.T) {
	testCases := []struct {
		units    entities.Quantity
		capacity entities.Quantity
		expected int
	}{
		{0, 100, 0},
		{1, 100, 1},
		{100, 100, 1},
		{101, 100, 2},
		{223, 100, 3},
		{300, 100, 3},
	}

	for _, tc := range testCases {
		if got := Shipments(tc.units, tc.capacity); got != tc.expected {
			t.Errorf("Shipments(%d, %d): expected %d, got %d",
				tc.units, tc.capacity, tc.expected, got)
		}
	}
}

func TestVehicleUtilization(t *testing.T) {
	// 223 fulfilled orders in 3 vans of 100: 223/300
	shipments := Shipments(223, 100)
	utilization := VehicleUtilization(223, shipments, 100)
	if math.Abs(utilization-223.0/300.0) > 1e-9 {
		t.Errorf("Expected utilization %.4f, got %.4f", 223.0/300.0, utilization)
	}

	// Zero shipments: undefined ratio reported as 0
	if got := VehicleUtilization(0, 0, 100); got != 0 {
		t.Errorf("Expected 0 utilization for zero shipments, got %.4f", got)
	}

	// A full vehicle is exactly 1.0
	if got := VehicleUtilization(200, 2, 100); got != 1.0 {
		t.Errorf("Expected utilization 1.0, got %.4f", got)
	}
}

func TestStaffCount(t *testing.T) {
	testCases := []struct {
		fulfilled entities.Quantity
		expected  int
	}{
		{0, 2},   // floor(0/50)=0, clamped to min 2
		{99, 2},  // floor(99/50)=1, clamped to min 2
		{100, 2},
		{150, 3},
		{223, 4},
		{250, 5},
		{10000, 5}, // clamped to max 5
	}

	for _, tc := range testCases {
		if got := StaffCount(tc.fulfilled); got != tc.expected {
			t.Errorf("StaffCount(%d): expected %d, got %d", tc.fulfilled, tc.expected, got)
		}
	}

	// Always within [2,5] for any non-negative input
	for fulfilled := entities.Quantity(0); fulfilled <= 2000; fulfilled += 17 {
		staff := StaffCount(fulfilled)
		if staff < 2 || staff > 5 {
			t.Fatalf("StaffCount(%d) = %d outside [2,5]", fulfilled, staff)
		}
	}
}

func TestExpectedErrors(t *testing.T) {
	if got := ExpectedErrors(0, 2); got != 0 {
		t.Errorf("Expected 0 errors for zero orders, got %d", got)
	}
	if got := ExpectedErrors(100, 0); got != 0 {
		t.Errorf("Expected 0 errors for zero staff, got %d", got)
	}

	// 223 orders, 4 staff: rate = 0.01 * (223/4)/50 = 0.01115 -> floor(2.486) = 2
	if got := ExpectedErrors(223, 4); got != 2 {
		t.Errorf("Expected 2 errors for 223 orders / 4 staff, got %d", got)
	}

	// Monotonic non-decreasing in orders for fixed staff
	previous := 0
	for fulfilled := entities.Quantity(0); fulfilled <= 5000; fulfilled += 25 {
		errors := ExpectedErrors(fulfilled, 3)
		if errors < previous {
			t.Fatalf("ExpectedErrors(%d, 3) = %d decreased from %d", fulfilled, errors, previous)
		}
		previous = errors
	}

	// Rate cap: at extreme load errors never exceed 5% of orders
	if got := ExpectedErrors(100000, 2); got > 5000 {
		t.Errorf("Expected error cap at 5%% (5000), got %d", got)
	}
}

func aggregationFixtures(t *testing.T) ([]*entities.Warehouse, []*entities.Strategy) {
	t.Helper()
	warehouse, err := entities.NewWarehouse("WH-1", "Central", 1000)
	if err != nil {
		t.Fatalf("Failed to create warehouse: %v", err)
	}
	return []*entities.Warehouse{warehouse}, entities.DefaultStrategies()
}

func simRow(date time.Time, productID string, strategy string, inbound, fulfilled, inventory, unmet entities.Quantity) entities.SimulationDay {
	return entities.SimulationDay{
		Date:           date,
		ProductID:      entities.ProductID(productID),
		WarehouseID:    "WH-1",
		Strategy:       strategy,
		Demand:         fulfilled + unmet,
		InboundUnits:   inbound,
		ActualOutbound: fulfilled,
		InventoryLevel: inventory,
		UnmetDemand:    unmet,
		Stockout:       unmet > 0,
	}
}

func TestAggregate_SumsAndDerives(t *testing.T) {
	warehouses, strategies := aggregationFixtures(t)
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	rows := []entities.SimulationDay{
		simRow(date, "SKU-001", "jit", 150, 120, 400, 0),
		simRow(date, "SKU-002", "jit", 0, 103, 350, 12),
		simRow(date, "SKU-003", "jit", 0, 0, 450, 0),
	}

	result, err := Aggregate(rows, warehouses, strategies, DefaultConfig())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("Expected 1 operations row, got %d", len(result))
	}

	ops := result[0]
	if ops.InboundUnits != 150 {
		t.Errorf("Expected inbound 150, got %d", ops.InboundUnits)
	}
	if ops.OrdersFulfilled != 223 {
		t.Errorf("Expected fulfilled 223, got %d", ops.OrdersFulfilled)
	}
	if ops.InventoryLevel != 1200 {
		t.Errorf("Expected inventory 1200, got %d", ops.InventoryLevel)
	}
	if ops.MissedSales != 12 {
		t.Errorf("Expected missed sales 12, got %d", ops.MissedSales)
	}

	if ops.OutboundShipments != 3 {
		t.Errorf("Expected 3 outbound shipments, got %d", ops.OutboundShipments)
	}
	if math.Abs(ops.VanUtilization-223.0/300.0) > 1e-9 {
		t.Errorf("Expected van utilization %.4f, got %.4f", 223.0/300.0, ops.VanUtilization)
	}
	// JIT trucks hold 150: one full truck
	if ops.InboundShipments != 1 {
		t.Errorf("Expected 1 inbound shipment, got %d", ops.InboundShipments)
	}
	if ops.TruckUtilization != 1.0 {
		t.Errorf("Expected truck utilization 1.0, got %.4f", ops.TruckUtilization)
	}
	// 1200 units in a 1000-unit warehouse: over capacity, not an error
	if math.Abs(ops.WarehouseUtilization-1.2) > 1e-9 {
		t.Errorf("Expected warehouse utilization 1.2, got %.4f", ops.WarehouseUtilization)
	}
	if ops.StaffCount != 4 {
		t.Errorf("Expected staff count 4, got %d", ops.StaffCount)
	}
	if ops.Errors != 2 {
		t.Errorf("Expected 2 errors, got %d", ops.Errors)
	}
}

func TestAggregate_QuietDay(t *testing.T) {
	warehouses, strategies := aggregationFixtures(t)
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	rows := []entities.SimulationDay{
		simRow(date, "SKU-001", "weekly", 0, 0, 500, 0),
	}

	result, err := Aggregate(rows, warehouses, strategies, DefaultConfig())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	ops := result[0]
	if ops.OutboundShipments != 0 {
		t.Errorf("Expected 0 shipments, got %d", ops.OutboundShipments)
	}
	if ops.VanUtilization != 0 {
		t.Errorf("Expected 0 van utilization, got %.4f", ops.VanUtilization)
	}
	if ops.StaffCount != 2 {
		t.Errorf("Expected minimum staff 2, got %d", ops.StaffCount)
	}
	if ops.Errors != 0 {
		t.Errorf("Expected 0 errors, got %d", ops.Errors)
	}
}

func TestAggregate_AssociativeOverProducts(t *testing.T) {
	warehouses, strategies := aggregationFixtures(t)
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	subsetA := []entities.SimulationDay{
		simRow(date, "SKU-001", "jit", 150, 120, 400, 0),
		simRow(date, "SKU-002", "jit", 0, 103, 350, 12),
	}
	subsetB := []entities.SimulationDay{
		simRow(date, "SKU-003", "jit", 75, 40, 450, 3),
	}

	all, err := Aggregate(append(append([]entities.SimulationDay{}, subsetA...), subsetB...),
		warehouses, strategies, DefaultConfig())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	partialA, err := Aggregate(subsetA, warehouses, strategies, DefaultConfig())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	partialB, err := Aggregate(subsetB, warehouses, strategies, DefaultConfig())
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	sumInbound := partialA[0].InboundUnits + partialB[0].InboundUnits
	sumFulfilled := partialA[0].OrdersFulfilled + partialB[0].OrdersFulfilled
	sumInventory := partialA[0].InventoryLevel + partialB[0].InventoryLevel
	sumMissed := partialA[0].MissedSales + partialB[0].MissedSales

	if all[0].InboundUnits != sumInbound {
		t.Errorf("Inbound not associative: %d vs %d", all[0].InboundUnits, sumInbound)
	}
	if all[0].OrdersFulfilled != sumFulfilled {
		t.Errorf("Fulfilled not associative: %d vs %d", all[0].OrdersFulfilled, sumFulfilled)
	}
	if all[0].InventoryLevel != sumInventory {
		t.Errorf("Inventory not associative: %d vs %d", all[0].InventoryLevel, sumInventory)
	}
	if all[0].MissedSales != sumMissed {
		t.Errorf("Missed sales not associative: %d vs %d", all[0].MissedSales, sumMissed)
	}
}

func TestAggregate_UnknownReferences(t *testing.T) {
	warehouses, strategies := aggregationFixtures(t)
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	unknownWarehouse := simRow(date, "SKU-001", "jit", 0, 10, 100, 0)
	unknownWarehouse.WarehouseID = "WH-GHOST"
	if _, err := Aggregate([]entities.SimulationDay{unknownWarehouse}, warehouses, strategies, DefaultConfig()); err == nil {
		t.Error("Expected error for unknown warehouse")
	}

	unknownStrategy := simRow(date, "SKU-001", "monthly", 0, 10, 100, 0)
	if _, err := Aggregate([]entities.SimulationDay{unknownStrategy}, warehouses, strategies, DefaultConfig()); err == nil {
		t.Error("Expected error for unknown strategy")
	}

	if _, err := Aggregate(nil, warehouses, strategies, Config{VanCapacity: 0}); err == nil {
		t.Error("Expected error for zero van capacity")
	}
}
