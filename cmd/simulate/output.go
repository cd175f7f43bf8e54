package main

import (
	"fmt"

	"github.com/markus-pettersen/logistics-simulation/pkg/application/services"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// printSummary prints a human-readable run summary to stdout
func printSummary(result *services.RunResult) {
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("               REPLENISHMENT SIMULATION RESULTS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Product-level rows:   %d\n", len(result.SimulationDays))
	fmt.Printf("  Operations rows:      %d\n", len(result.OperationsDays))
	fmt.Println()

	type strategyTotals struct {
		stockoutDays int
		missedSales  entities.Quantity
		fulfilled    entities.Quantity
	}
	totals := make(map[string]*strategyTotals)
	var order []string

	for _, row := range result.SimulationDays {
		total, ok := totals[row.Strategy]
		if !ok {
			total = &strategyTotals{}
			totals[row.Strategy] = total
			order = append(order, row.Strategy)
		}
		if row.Stockout {
			total.stockoutDays++
		}
		total.missedSales += row.UnmetDemand
		total.fulfilled += row.ActualOutbound
	}

	fmt.Println("STRATEGY COMPARISON")
	fmt.Println("────────────────────────────────────────────────────────────────")
	for _, name := range order {
		total := totals[name]
		fmt.Printf("%-12s fulfilled: %8d  missed: %6d  stockout days: %d\n",
			name, total.fulfilled, total.missedSales, total.stockoutDays)
	}
	fmt.Println()

	if len(result.Financials) > 0 {
		fmt.Println("FINANCIAL SUMMARY")
		fmt.Println("────────────────────────────────────────────────────────────────")
		for _, summary := range result.Financials {
			fmt.Printf("%-10s %-12s holding: %12s  lost revenue: %12s  margin: %12s\n",
				summary.WarehouseID, summary.Strategy,
				summary.HoldingCost.StringFixed(2),
				summary.LostRevenue.StringFixed(2),
				summary.RealizedMargin.StringFixed(2))
		}
	}
}
