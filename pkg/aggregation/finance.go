package aggregation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// FinancialSummary totals the monetary impact of one strategy at one
// warehouse over the simulated horizon
type FinancialSummary struct {
	WarehouseID    entities.WarehouseID
	Strategy       string
	HoldingCost    decimal.Decimal
	LostRevenue    decimal.Decimal
	RealizedMargin decimal.Decimal
}

// Summarize computes per-warehouse, per-strategy financials from the
// product-level dataset: holding cost from daily inventory levels, lost
// revenue from unmet demand at retail price, and realized margin on
// fulfilled orders.
func Summarize(rows []entities.SimulationDay, products []*entities.Product) ([]FinancialSummary, error) {
	productByID := make(map[entities.ProductID]*entities.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	type summaryKey struct {
		warehouseID entities.WarehouseID
		strategy    string
	}
	summaries := make(map[summaryKey]*FinancialSummary)

	for _, row := range rows {
		product, ok := productByID[row.ProductID]
		if !ok {
			return nil, fmt.Errorf("unknown product in simulation rows: %s", row.ProductID)
		}

		key := summaryKey{row.WarehouseID, row.Strategy}
		summary, ok := summaries[key]
		if !ok {
			summary = &FinancialSummary{
				WarehouseID:    row.WarehouseID,
				Strategy:       row.Strategy,
				HoldingCost:    decimal.Zero,
				LostRevenue:    decimal.Zero,
				RealizedMargin: decimal.Zero,
			}
			summaries[key] = summary
		}

		inventory := decimal.NewFromInt(int64(row.InventoryLevel))
		unmet := decimal.NewFromInt(int64(row.UnmetDemand))
		fulfilled := decimal.NewFromInt(int64(row.ActualOutbound))
		margin := product.RetailPrice.Sub(product.WholesaleCost)

		summary.HoldingCost = summary.HoldingCost.Add(product.UnitStorageCost.Mul(inventory))
		summary.LostRevenue = summary.LostRevenue.Add(product.RetailPrice.Mul(unmet))
		summary.RealizedMargin = summary.RealizedMargin.Add(margin.Mul(fulfilled))
	}

	result := make([]FinancialSummary, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].WarehouseID != result[j].WarehouseID {
			return result[i].WarehouseID < result[j].WarehouseID
		}
		return result[i].Strategy < result[j].Strategy
	})

	return result, nil
}
