package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductID represents a unique product identifier
type ProductID string

// WarehouseID represents a unique warehouse identifier
type WarehouseID string

// Quantity represents an integer quantity value for discrete stock units
type Quantity int64

// ProductClass represents the ABC classification of a product
type ProductClass int

const (
	ClassA ProductClass = iota
	ClassB
	ClassC
)

// String method for ProductClass enum
func (c ProductClass) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	default:
		return "Unknown"
	}
}

// ParseProductClass parses an A/B/C class label
func ParseProductClass(s string) (ProductClass, error) {
	switch s {
	case "A":
		return ClassA, nil
	case "B":
		return ClassB, nil
	case "C":
		return ClassC, nil
	default:
		return 0, fmt.Errorf("unknown product class: %q", s)
	}
}

// Product represents a stocked product with its replenishment parameters
type Product struct {
	ID              ProductID
	Description     string
	Class           ProductClass
	DemandMean      float64
	DemandStdDev    float64
	ReorderPoint    Quantity
	ReorderQty      Quantity
	TargetStock     Quantity
	LeadTimeDays    int
	UnitStorageCost decimal.Decimal
	WholesaleCost   decimal.Decimal
	RetailPrice     decimal.Decimal
}

// NewProduct creates a validated Product. Invalid demand or replenishment
// parameters are configuration errors and must stop a run before it starts.
func NewProduct(
	id ProductID,
	description string,
	class ProductClass,
	demandMean, demandStdDev float64,
	reorderPoint, reorderQty, targetStock Quantity,
	leadTimeDays int,
	unitStorageCost, wholesaleCost, retailPrice decimal.Decimal,
) (*Product, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("product ID cannot be empty")
	}
	if demandMean < 0 {
		return nil, fmt.Errorf("demand mean cannot be negative, got %v", demandMean)
	}
	if demandStdDev < 0 {
		return nil, fmt.Errorf("demand standard deviation cannot be negative, got %v", demandStdDev)
	}
	if reorderPoint < 0 {
		return nil, fmt.Errorf("reorder point cannot be negative, got %d", reorderPoint)
	}
	if reorderQty <= 0 {
		return nil, fmt.Errorf("reorder quantity must be positive, got %d", reorderQty)
	}
	if targetStock <= 0 {
		return nil, fmt.Errorf("target stock must be positive, got %d", targetStock)
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("lead time cannot be negative, got %d", leadTimeDays)
	}
	if unitStorageCost.IsNegative() {
		return nil, fmt.Errorf("unit storage cost cannot be negative, got %s", unitStorageCost)
	}
	if wholesaleCost.IsNegative() {
		return nil, fmt.Errorf("wholesale cost cannot be negative, got %s", wholesaleCost)
	}
	if retailPrice.IsNegative() {
		return nil, fmt.Errorf("retail price cannot be negative, got %s", retailPrice)
	}

	return &Product{
		ID:              id,
		Description:     description,
		Class:           class,
		DemandMean:      demandMean,
		DemandStdDev:    demandStdDev,
		ReorderPoint:    reorderPoint,
		ReorderQty:      reorderQty,
		TargetStock:     targetStock,
		LeadTimeDays:    leadTimeDays,
		UnitStorageCost: unitStorageCost,
		WholesaleCost:   wholesaleCost,
		RetailPrice:     retailPrice,
	}, nil
}
