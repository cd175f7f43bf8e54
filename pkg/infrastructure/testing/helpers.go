package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/infrastructure/repositories/memory"
)

// BuildRetailTestData builds a small grocery distribution scenario: six
// products across the three ABC classes, two warehouses and a 90-day
// calendar, loaded into in-memory repositories.
func BuildRetailTestData() (*memory.ProductRepository, *memory.WarehouseRepository, *memory.CalendarRepository) {
	productRepo := memory.NewProductRepository(6)
	warehouseRepo := memory.NewWarehouseRepository(2)
	calendarRepo := memory.NewCalendarRepository()

	products := []*entities.Product{
		{
			ID:              "SKU-COFFEE",
			Description:     "Ground Coffee 500g",
			Class:           entities.ClassA,
			DemandMean:      45,
			DemandStdDev:    12,
			ReorderPoint:    120,
			ReorderQty:      300,
			TargetStock:     350,
			LeadTimeDays:    2,
			UnitStorageCost: decimal.NewFromFloat(0.06),
			WholesaleCost:   decimal.NewFromFloat(5.10),
			RetailPrice:     decimal.NewFromFloat(8.99),
		},
		{
			ID:              "SKU-OLIVEOIL",
			Description:     "Olive Oil 1L",
			Class:           entities.ClassA,
			DemandMean:      32,
			DemandStdDev:    9,
			ReorderPoint:    90,
			ReorderQty:      250,
			TargetStock:     280,
			LeadTimeDays:    3,
			UnitStorageCost: decimal.NewFromFloat(0.08),
			WholesaleCost:   decimal.NewFromFloat(6.40),
			RetailPrice:     decimal.NewFromFloat(11.49),
		},
		{
			ID:              "SKU-PASTA",
			Description:     "Spaghetti 500g",
			Class:           entities.ClassB,
			DemandMean:      28,
			DemandStdDev:    7,
			ReorderPoint:    70,
			ReorderQty:      200,
			TargetStock:     220,
			LeadTimeDays:    2,
			UnitStorageCost: decimal.NewFromFloat(0.02),
			WholesaleCost:   decimal.NewFromFloat(0.90),
			RetailPrice:     decimal.NewFromFloat(1.99),
		},
		{
			ID:              "SKU-RICE",
			Description:     "Basmati Rice 1kg",
			Class:           entities.ClassB,
			DemandMean:      20,
			DemandStdDev:    6,
			ReorderPoint:    55,
			ReorderQty:      150,
			TargetStock:     180,
			LeadTimeDays:    4,
			UnitStorageCost: decimal.NewFromFloat(0.03),
			WholesaleCost:   decimal.NewFromFloat(1.80),
			RetailPrice:     decimal.NewFromFloat(3.49),
		},
		{
			ID:              "SKU-CAPERS",
			Description:     "Capers 200g Jar",
			Class:           entities.ClassC,
			DemandMean:      4,
			DemandStdDev:    2,
			ReorderPoint:    12,
			ReorderQty:      40,
			TargetStock:     50,
			LeadTimeDays:    5,
			UnitStorageCost: decimal.NewFromFloat(0.04),
			WholesaleCost:   decimal.NewFromFloat(2.30),
			RetailPrice:     decimal.NewFromFloat(4.79),
		},
		{
			ID:              "SKU-SAFFRON",
			Description:     "Saffron 1g",
			Class:           entities.ClassC,
			DemandMean:      2,
			DemandStdDev:    1,
			ReorderPoint:    6,
			ReorderQty:      20,
			TargetStock:     25,
			LeadTimeDays:    7,
			UnitStorageCost: decimal.NewFromFloat(0.01),
			WholesaleCost:   decimal.NewFromFloat(4.50),
			RetailPrice:     decimal.NewFromFloat(9.99),
		},
	}

	for _, product := range products {
		productRepo.AddProduct(*product)
	}

	warehouses := []*entities.Warehouse{
		{ID: "WH-NORTH", Name: "North Distribution Center", Capacity: 5000},
		{ID: "WH-SOUTH", Name: "South Distribution Center", Capacity: 3500},
	}
	for _, warehouse := range warehouses {
		warehouseRepo.AddWarehouse(*warehouse)
	}

	calendar, err := entities.NewDateRange(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 90)
	if err != nil {
		panic(err)
	}
	if err := calendarRepo.LoadCalendar(calendar); err != nil {
		panic(err)
	}

	return productRepo, warehouseRepo, calendarRepo
}
