package entities

import "fmt"

// PolicyKind selects which replenishment policy a product class runs under
type PolicyKind int

const (
	// PeriodicReview orders on a fixed calendar cadence regardless of stock
	PeriodicReview PolicyKind = iota
	// ContinuousReview orders whenever projected stock falls below the
	// product's reorder point (just-in-time behavior)
	ContinuousReview
)

// String method for PolicyKind enum
func (k PolicyKind) String() string {
	switch k {
	case PeriodicReview:
		return "PeriodicReview"
	case ContinuousReview:
		return "ContinuousReview"
	default:
		return "Unknown"
	}
}

// Strategy is a named assignment of a replenishment policy to each product
// class, plus the per-strategy inbound truck capacity. The class mapping is
// supplied by configuration; the state machine only sees the resolved policy.
type Strategy struct {
	Name          string
	PolicyFor     map[ProductClass]PolicyKind
	IntervalDays  int
	TruckCapacity Quantity
}

// NewStrategy creates a validated Strategy. Every product class must be
// mapped; a missing class is a configuration error, fatal at setup.
func NewStrategy(name string, policyFor map[ProductClass]PolicyKind, intervalDays int, truckCapacity Quantity) (*Strategy, error) {
	if name == "" {
		return nil, fmt.Errorf("strategy name cannot be empty")
	}
	if truckCapacity <= 0 {
		return nil, fmt.Errorf("truck capacity must be positive, got %d", truckCapacity)
	}

	usesPeriodic := false
	for _, class := range []ProductClass{ClassA, ClassB, ClassC} {
		kind, ok := policyFor[class]
		if !ok {
			return nil, fmt.Errorf("strategy %s has no policy for class %s", name, class)
		}
		if kind == PeriodicReview {
			usesPeriodic = true
		}
	}
	if usesPeriodic && intervalDays <= 0 {
		return nil, fmt.Errorf("strategy %s uses periodic review but has interval %d", name, intervalDays)
	}

	copied := make(map[ProductClass]PolicyKind, len(policyFor))
	for class, kind := range policyFor {
		copied[class] = kind
	}

	return &Strategy{
		Name:          name,
		PolicyFor:     copied,
		IntervalDays:  intervalDays,
		TruckCapacity: truckCapacity,
	}, nil
}

// Policy returns the policy kind assigned to a product class
func (s *Strategy) Policy(class ProductClass) (PolicyKind, error) {
	kind, ok := s.PolicyFor[class]
	if !ok {
		return 0, fmt.Errorf("strategy %s has no policy for class %s", s.Name, class)
	}
	return kind, nil
}

// Default truck capacities: continuous-review strategies restock in small
// frequent deliveries, periodic strategies batch into larger trucks.
const (
	DefaultWeeklyTruckCapacity Quantity = 400
	DefaultJITTruckCapacity    Quantity = 150
	DefaultHybridTruckCapacity Quantity = 250
	DefaultReviewIntervalDays           = 7
)

// WeeklyStrategy is the scheduled-interval baseline: every class reviews on
// a weekly cadence
func WeeklyStrategy() *Strategy {
	s, _ := NewStrategy("weekly", map[ProductClass]PolicyKind{
		ClassA: PeriodicReview,
		ClassB: PeriodicReview,
		ClassC: PeriodicReview,
	}, DefaultReviewIntervalDays, DefaultWeeklyTruckCapacity)
	return s
}

// JITStrategy is the threshold-triggered baseline: every class reorders on
// its reorder point
func JITStrategy() *Strategy {
	s, _ := NewStrategy("jit", map[ProductClass]PolicyKind{
		ClassA: ContinuousReview,
		ClassB: ContinuousReview,
		ClassC: ContinuousReview,
	}, DefaultReviewIntervalDays, DefaultJITTruckCapacity)
	return s
}

// HybridABStrategy runs classes A and B on continuous review and class C on
// the weekly cadence
func HybridABStrategy() *Strategy {
	s, _ := NewStrategy("hybrid-ab", map[ProductClass]PolicyKind{
		ClassA: ContinuousReview,
		ClassB: ContinuousReview,
		ClassC: PeriodicReview,
	}, DefaultReviewIntervalDays, DefaultHybridTruckCapacity)
	return s
}

// HybridAStrategy runs only class A on continuous review
func HybridAStrategy() *Strategy {
	s, _ := NewStrategy("hybrid-a", map[ProductClass]PolicyKind{
		ClassA: ContinuousReview,
		ClassB: PeriodicReview,
		ClassC: PeriodicReview,
	}, DefaultReviewIntervalDays, DefaultHybridTruckCapacity)
	return s
}

// DefaultStrategies returns the four standard strategy configurations
func DefaultStrategies() []*Strategy {
	return []*Strategy{
		WeeklyStrategy(),
		JITStrategy(),
		HybridABStrategy(),
		HybridAStrategy(),
	}
}

// StrategyByName resolves a strategy label against the standard set
func StrategyByName(name string) (*Strategy, error) {
	for _, s := range DefaultStrategies() {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown strategy: %q", name)
}
