package entities

import "testing"

func TestStrategy_Validation(t *testing.T) {
	full := map[ProductClass]PolicyKind{
		ClassA: ContinuousReview,
		ClassB: ContinuousReview,
		ClassC: PeriodicReview,
	}

	strategy, err := NewStrategy("hybrid-ab", full, 7, 250)
	if err != nil {
		t.Fatalf("Expected valid strategy creation to succeed: %v", err)
	}
	if strategy.Name != "hybrid-ab" {
		t.Errorf("Expected name hybrid-ab, got %s", strategy.Name)
	}

	// Missing class mapping is fatal
	partial := map[ProductClass]PolicyKind{
		ClassA: ContinuousReview,
	}
	if _, err := NewStrategy("partial", partial, 7, 250); err == nil {
		t.Error("Expected error for strategy missing class mappings")
	}

	// Periodic review requires a positive interval
	allPeriodic := map[ProductClass]PolicyKind{
		ClassA: PeriodicReview,
		ClassB: PeriodicReview,
		ClassC: PeriodicReview,
	}
	if _, err := NewStrategy("weekly", allPeriodic, 0, 400); err == nil {
		t.Error("Expected error for periodic strategy with zero interval")
	}

	if _, err := NewStrategy("", full, 7, 250); err == nil {
		t.Error("Expected error for empty strategy name")
	}
	if _, err := NewStrategy("weekly", full, 7, 0); err == nil {
		t.Error("Expected error for zero truck capacity")
	}
}

func TestStrategy_DefaultSet(t *testing.T) {
	strategies := DefaultStrategies()
	if len(strategies) != 4 {
		t.Fatalf("Expected 4 default strategies, got %d", len(strategies))
	}

	testCases := []struct {
		name     string
		expected map[ProductClass]PolicyKind
	}{
		{"weekly", map[ProductClass]PolicyKind{ClassA: PeriodicReview, ClassB: PeriodicReview, ClassC: PeriodicReview}},
		{"jit", map[ProductClass]PolicyKind{ClassA: ContinuousReview, ClassB: ContinuousReview, ClassC: ContinuousReview}},
		{"hybrid-ab", map[ProductClass]PolicyKind{ClassA: ContinuousReview, ClassB: ContinuousReview, ClassC: PeriodicReview}},
		{"hybrid-a", map[ProductClass]PolicyKind{ClassA: ContinuousReview, ClassB: PeriodicReview, ClassC: PeriodicReview}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			strategy, err := StrategyByName(tc.name)
			if err != nil {
				t.Fatalf("StrategyByName(%s) failed: %v", tc.name, err)
			}
			for class, expected := range tc.expected {
				kind, err := strategy.Policy(class)
				if err != nil {
					t.Fatalf("Policy(%s) failed: %v", class, err)
				}
				if kind != expected {
					t.Errorf("Strategy %s class %s: expected %s, got %s",
						tc.name, class, expected, kind)
				}
			}
		})
	}

	if _, err := StrategyByName("monthly"); err == nil {
		t.Error("Expected error for unknown strategy name")
	}
}

func TestStrategy_TruckCapacities(t *testing.T) {
	weekly := WeeklyStrategy()
	jit := JITStrategy()

	// JIT restocks with smaller, more frequent deliveries
	if jit.TruckCapacity >= weekly.TruckCapacity {
		t.Errorf("Expected JIT truck capacity (%d) below weekly (%d)",
			jit.TruckCapacity, weekly.TruckCapacity)
	}
}
