package simulation

import (
	"fmt"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// Policy decides how much stock to order on a given day. The returned
// quantity is never negative; zero means no order.
type Policy interface {
	OrderQuantity(dayIndex int, onHand, outstanding entities.Quantity, product *entities.Product) entities.Quantity
}

// PeriodicPolicy reviews stock on a fixed cadence: it orders up to the
// product's target stock level on review days and always orders zero in
// between, accepting stockout risk between cycles in exchange for batched
// deliveries.
type PeriodicPolicy struct {
	IntervalDays int
}

// Verify interface compliance
var _ Policy = (*PeriodicPolicy)(nil)

// OrderQuantity returns the shortfall to target stock on review days
func (p *PeriodicPolicy) OrderQuantity(dayIndex int, onHand, outstanding entities.Quantity, product *entities.Product) entities.Quantity {
	if dayIndex%p.IntervalDays != 0 {
		return 0
	}

	shortfall := product.TargetStock - (onHand + outstanding)
	if shortfall < 0 {
		return 0
	}
	return shortfall
}

// ThresholdPolicy reorders a fixed batch whenever projected stock (on hand
// plus outstanding orders) falls below the product's reorder point. It may
// fire on any day, including consecutive days.
type ThresholdPolicy struct{}

// Verify interface compliance
var _ Policy = (*ThresholdPolicy)(nil)

// OrderQuantity returns the product's reorder quantity below the threshold
func (p *ThresholdPolicy) OrderQuantity(dayIndex int, onHand, outstanding entities.Quantity, product *entities.Product) entities.Quantity {
	if onHand+outstanding < product.ReorderPoint {
		return product.ReorderQty
	}
	return 0
}

// PolicyForClass resolves the policy a product class runs under a strategy
func PolicyForClass(strategy *entities.Strategy, class entities.ProductClass) (Policy, error) {
	kind, err := strategy.Policy(class)
	if err != nil {
		return nil, err
	}

	switch kind {
	case entities.PeriodicReview:
		return &PeriodicPolicy{IntervalDays: strategy.IntervalDays}, nil
	case entities.ContinuousReview:
		return &ThresholdPolicy{}, nil
	default:
		return nil, fmt.Errorf("unsupported policy kind: %s", kind)
	}
}
