package aggregation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

func TestSummarize(t *testing.T) {
	product, err := entities.NewProduct("SKU-001", "Olive Oil", entities.ClassA,
		30, 5, 50, 200, 200, 2,
		decimal.NewFromFloat(0.10),  // storage per unit-day
		decimal.NewFromFloat(4.00),  // wholesale
		decimal.NewFromFloat(10.00)) // retail
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	rows := []entities.SimulationDay{
		simRow(date, "SKU-001", "jit", 0, 25, 100, 5),
		simRow(date.AddDate(0, 0, 1), "SKU-001", "jit", 0, 30, 70, 0),
	}

	summaries, err := Summarize(rows, []*entities.Product{product})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(summaries))
	}

	summary := summaries[0]

	// Holding: (100 + 70) * 0.10 = 17.00
	if !summary.HoldingCost.Equal(decimal.NewFromFloat(17.00)) {
		t.Errorf("Expected holding cost 17.00, got %s", summary.HoldingCost)
	}
	// Lost revenue: 5 * 10.00 = 50.00
	if !summary.LostRevenue.Equal(decimal.NewFromFloat(50.00)) {
		t.Errorf("Expected lost revenue 50.00, got %s", summary.LostRevenue)
	}
	// Margin: (25 + 30) * (10.00 - 4.00) = 330.00
	if !summary.RealizedMargin.Equal(decimal.NewFromFloat(330.00)) {
		t.Errorf("Expected realized margin 330.00, got %s", summary.RealizedMargin)
	}
}

func TestSummarize_GroupsByWarehouseAndStrategy(t *testing.T) {
	product, err := entities.NewProduct("SKU-001", "Olive Oil", entities.ClassA,
		30, 5, 50, 200, 200, 2,
		decimal.NewFromFloat(0.10), decimal.NewFromFloat(4.00), decimal.NewFromFloat(10.00))
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	north := simRow(date, "SKU-001", "jit", 0, 25, 100, 0)
	north.WarehouseID = "WH-NORTH"
	south := simRow(date, "SKU-001", "weekly", 0, 25, 100, 0)
	south.WarehouseID = "WH-SOUTH"

	summaries, err := Summarize([]entities.SimulationDay{north, south}, []*entities.Product{product})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}

	// Sorted by warehouse then strategy
	if summaries[0].WarehouseID != "WH-NORTH" || summaries[0].Strategy != "jit" {
		t.Errorf("Unexpected first summary: %s/%s", summaries[0].WarehouseID, summaries[0].Strategy)
	}
	if summaries[1].WarehouseID != "WH-SOUTH" || summaries[1].Strategy != "weekly" {
		t.Errorf("Unexpected second summary: %s/%s", summaries[1].WarehouseID, summaries[1].Strategy)
	}
}

func TestSummarize_UnknownProduct(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	rows := []entities.SimulationDay{
		simRow(date, "SKU-GHOST", "jit", 0, 25, 100, 0),
	}

	if _, err := Summarize(rows, nil); err == nil {
		t.Error("Expected error for unknown product")
	}
}
