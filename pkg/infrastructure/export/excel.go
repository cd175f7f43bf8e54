package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

var operationsHeader = []string{
	"Date", "Warehouse", "Strategy",
	"InboundUnits", "OrdersFulfilled", "InventoryLevel", "MissedSales",
	"OutboundShipments", "VanUtilization", "InboundShipments", "TruckUtilization",
	"WarehouseUtilization", "StaffCount", "Errors",
}

// WriteOperationsWorkbook exports the warehouse-level result set as an XLSX
// workbook with one row per (date, warehouse, strategy)
func WriteOperationsWorkbook(filename string, rows []entities.OperationsDay) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Operations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range operationsHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date.Format("2006-01-02"),
			string(row.WarehouseID),
			row.Strategy,
			int64(row.InboundUnits),
			int64(row.OrdersFulfilled),
			int64(row.InventoryLevel),
			int64(row.MissedSales),
			row.OutboundShipments,
			row.VanUtilization,
			row.InboundShipments,
			row.TruckUtilization,
			row.WarehouseUtilization,
			row.StaffCount,
			row.Errors,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell for row %d: %w", i+2, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", filename, err)
	}
	return nil
}
