package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// Loader handles loading reference data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts loads products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open products file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read products CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("products CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"product_id", "description", "class", "demand_mean", "demand_stddev",
		"reorder_point", "reorder_qty", "target_stock", "lead_time_days",
		"unit_storage_cost", "wholesale_cost", "retail_price"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// LoadWarehouses loads warehouses from a CSV file
func (l *Loader) LoadWarehouses(filename string) ([]*entities.Warehouse, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouses file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read warehouses CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("warehouses CSV must have header and at least one data row")
	}

	expectedHeader := []string{"warehouse_id", "name", "capacity"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("warehouses CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var warehouses []*entities.Warehouse
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("warehouses CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		capacity, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("warehouses CSV row %d: invalid capacity: %s", i+2, record[2])
		}

		warehouse, err := entities.NewWarehouse(entities.WarehouseID(record[0]), record[1], entities.Quantity(capacity))
		if err != nil {
			return nil, fmt.Errorf("warehouses CSV row %d: %w", i+2, err)
		}

		warehouses = append(warehouses, warehouse)
	}

	return warehouses, nil
}

// LoadCalendar loads the simulation date range from a CSV file
func (l *Loader) LoadCalendar(filename string) (*entities.Calendar, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open calendar file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("calendar CSV must have header and at least one data row")
	}

	expectedHeader := []string{"date"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("calendar CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var dates []time.Time
	for i, record := range records[1:] {
		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("calendar CSV row %d: invalid date %s (expected YYYY-MM-DD)", i+2, record[0])
		}
		dates = append(dates, date)
	}

	calendar, err := entities.NewCalendar(dates)
	if err != nil {
		return nil, fmt.Errorf("calendar CSV: %w", err)
	}
	return calendar, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseProduct(record []string) (*entities.Product, error) {
	class, err := entities.ParseProductClass(record[2])
	if err != nil {
		return nil, err
	}

	demandMean, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid demand_mean: %s", record[3])
	}
	demandStdDev, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid demand_stddev: %s", record[4])
	}

	reorderPoint, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid reorder_point: %s", record[5])
	}
	reorderQty, err := strconv.ParseInt(record[6], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid reorder_qty: %s", record[6])
	}
	targetStock, err := strconv.ParseInt(record[7], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid target_stock: %s", record[7])
	}
	leadTimeDays, err := strconv.Atoi(record[8])
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[8])
	}

	unitStorageCost, err := decimal.NewFromString(record[9])
	if err != nil {
		return nil, fmt.Errorf("invalid unit_storage_cost: %s", record[9])
	}
	wholesaleCost, err := decimal.NewFromString(record[10])
	if err != nil {
		return nil, fmt.Errorf("invalid wholesale_cost: %s", record[10])
	}
	retailPrice, err := decimal.NewFromString(record[11])
	if err != nil {
		return nil, fmt.Errorf("invalid retail_price: %s", record[11])
	}

	return entities.NewProduct(
		entities.ProductID(record[0]),
		record[1],
		class,
		demandMean,
		demandStdDev,
		entities.Quantity(reorderPoint),
		entities.Quantity(reorderQty),
		entities.Quantity(targetStock),
		leadTimeDays,
		unitStorageCost,
		wholesaleCost,
		retailPrice,
	)
}
