package simulation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

func driverFixtures(t *testing.T) ([]*entities.Product, []*entities.Warehouse) {
	t.Helper()

	makeProduct := func(id string, class entities.ProductClass) *entities.Product {
		product, err := entities.NewProduct(entities.ProductID(id), "Fixture", class,
			25, 6, 40, 150, 180, 2,
			decimal.NewFromFloat(0.04), decimal.NewFromFloat(2.80), decimal.NewFromFloat(5.49))
		if err != nil {
			t.Fatalf("Failed to create product %s: %v", id, err)
		}
		return product
	}

	makeWarehouse := func(id string) *entities.Warehouse {
		warehouse, err := entities.NewWarehouse(entities.WarehouseID(id), id, 5000)
		if err != nil {
			t.Fatalf("Failed to create warehouse %s: %v", id, err)
		}
		return warehouse
	}

	products := []*entities.Product{
		makeProduct("SKU-003", entities.ClassC),
		makeProduct("SKU-001", entities.ClassA),
		makeProduct("SKU-002", entities.ClassB),
	}
	warehouses := []*entities.Warehouse{
		makeWarehouse("WH-SOUTH"),
		makeWarehouse("WH-NORTH"),
	}
	return products, warehouses
}

func TestDriver_RowCountAndTagging(t *testing.T) {
	products, warehouses := driverFixtures(t)
	strategies := entities.DefaultStrategies()
	calendar := testCalendar(t, 30)

	driver := NewDriver(NewNormalDemandGenerator(42))
	rows, err := driver.Run(context.Background(), products, warehouses, strategies, calendar)
	if err != nil {
		t.Fatalf("Driver run failed: %v", err)
	}

	expected := len(strategies) * len(products) * len(warehouses) * calendar.Len()
	if len(rows) != expected {
		t.Fatalf("Expected %d rows, got %d", expected, len(rows))
	}

	// Every (date, product, warehouse, strategy) key appears exactly once
	seen := make(map[entities.SimulationKey]bool, len(rows))
	perStrategy := make(map[string]int)
	for _, row := range rows {
		key := row.Key()
		if seen[key] {
			t.Fatalf("Duplicate row for key %+v", key)
		}
		seen[key] = true
		perStrategy[row.Strategy]++
	}

	for _, strategy := range strategies {
		if perStrategy[strategy.Name] != expected/len(strategies) {
			t.Errorf("Strategy %s: expected %d rows, got %d",
				strategy.Name, expected/len(strategies), perStrategy[strategy.Name])
		}
	}
}

func TestDriver_IdenticalDemandAcrossStrategies(t *testing.T) {
	products, warehouses := driverFixtures(t)
	strategies := entities.DefaultStrategies()
	calendar := testCalendar(t, 30)

	driver := NewDriver(NewNormalDemandGenerator(42))
	rows, err := driver.Run(context.Background(), products, warehouses, strategies, calendar)
	if err != nil {
		t.Fatalf("Driver run failed: %v", err)
	}

	type demandKey struct {
		date      string
		productID entities.ProductID
	}
	demands := make(map[demandKey]entities.Quantity)

	for _, row := range rows {
		key := demandKey{row.Date.Format("2006-01-02"), row.ProductID}
		if previous, ok := demands[key]; ok {
			if previous != row.Demand {
				t.Fatalf("Product %s on %s: demand differs across instances (%d vs %d)",
					row.ProductID, key.date, previous, row.Demand)
			}
		} else {
			demands[key] = row.Demand
		}
	}
}

func TestDriver_DeterministicAcrossRuns(t *testing.T) {
	products, warehouses := driverFixtures(t)
	strategies := []*entities.Strategy{entities.JITStrategy()}
	calendar := testCalendar(t, 30)

	first, err := NewDriver(NewNormalDemandGenerator(42)).
		Run(context.Background(), products, warehouses, strategies, calendar)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := NewDriver(NewNormalDemandGenerator(42)).
		Run(context.Background(), products, warehouses, strategies, calendar)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Row count differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Row %d differs between identically seeded runs", i)
		}
	}
}

func TestDriver_CancelledContext(t *testing.T) {
	products, warehouses := driverFixtures(t)
	calendar := testCalendar(t, 30)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDriver(NewNormalDemandGenerator(42)).
		Run(ctx, products, warehouses, entities.DefaultStrategies(), calendar)
	if err == nil {
		t.Fatal("Expected error from cancelled context")
	}
}
