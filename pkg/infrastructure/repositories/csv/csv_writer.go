package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// Writer exports simulation results to CSV files
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteSimulationDays writes the product-level result set
func (w *Writer) WriteSimulationDays(filename string, rows []entities.SimulationDay) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "product_id", "warehouse_id", "strategy",
		"demand", "inbound_units", "actual_outbound", "inventory_level", "unmet_demand", "stockout_flag"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			string(row.ProductID),
			string(row.WarehouseID),
			row.Strategy,
			strconv.FormatInt(int64(row.Demand), 10),
			strconv.FormatInt(int64(row.InboundUnits), 10),
			strconv.FormatInt(int64(row.ActualOutbound), 10),
			strconv.FormatInt(int64(row.InventoryLevel), 10),
			strconv.FormatInt(int64(row.UnmetDemand), 10),
			strconv.FormatBool(row.Stockout),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// WriteOperationsDays writes the warehouse-level result set
func (w *Writer) WriteOperationsDays(filename string, rows []entities.OperationsDay) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"date", "warehouse_id", "strategy",
		"inbound_units", "orders_fulfilled", "inventory_level", "missed_sales",
		"outbound_shipments", "van_utilization", "inbound_shipments", "truck_utilization",
		"warehouse_utilization", "staff_count", "errors"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			string(row.WarehouseID),
			row.Strategy,
			strconv.FormatInt(int64(row.InboundUnits), 10),
			strconv.FormatInt(int64(row.OrdersFulfilled), 10),
			strconv.FormatInt(int64(row.InventoryLevel), 10),
			strconv.FormatInt(int64(row.MissedSales), 10),
			strconv.Itoa(row.OutboundShipments),
			strconv.FormatFloat(row.VanUtilization, 'f', 4, 64),
			strconv.Itoa(row.InboundShipments),
			strconv.FormatFloat(row.TruckUtilization, 'f', 4, 64),
			strconv.FormatFloat(row.WarehouseUtilization, 'f', 4, 64),
			strconv.Itoa(row.StaffCount),
			strconv.Itoa(row.Errors),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}
