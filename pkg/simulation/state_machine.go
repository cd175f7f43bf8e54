package simulation

import (
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// Arrival is an outstanding inbound order: a quantity due on a day index
type Arrival struct {
	DayIndex int
	Quantity entities.Quantity
}

// InventoryState captures everything one (product, warehouse, strategy)
// instance carries between days: current on-hand stock and the orders still
// in transit. It is owned by exactly one StateMachine run and discarded when
// the calendar ends.
type InventoryState struct {
	OnHand  entities.Quantity
	Pending []Arrival
}

// Outstanding returns the total quantity still in transit
func (s *InventoryState) Outstanding() entities.Quantity {
	var total entities.Quantity
	for _, arrival := range s.Pending {
		total += arrival.Quantity
	}
	return total
}

// receiveDue moves arrivals due on dayIndex into on-hand stock and returns
// the received quantity
func (s *InventoryState) receiveDue(dayIndex int) entities.Quantity {
	var received entities.Quantity
	remaining := s.Pending[:0]
	for _, arrival := range s.Pending {
		if arrival.DayIndex == dayIndex {
			received += arrival.Quantity
		} else {
			remaining = append(remaining, arrival)
		}
	}
	s.Pending = remaining
	s.OnHand += received
	return received
}

// StateMachine advances one product's inventory through the calendar one day
// at a time under a single strategy. Days are strictly ordered: each day's
// transition depends on the pending arrivals left by earlier days, so a run
// can never be reordered or split.
type StateMachine struct {
	product     *entities.Product
	warehouseID entities.WarehouseID
	strategy    string
	policy      Policy
	demand      DemandGenerator
}

// NewStateMachine creates a state machine for one product, warehouse and
// strategy combination
func NewStateMachine(
	product *entities.Product,
	warehouseID entities.WarehouseID,
	strategy string,
	policy Policy,
	demand DemandGenerator,
) *StateMachine {
	return &StateMachine{
		product:     product,
		warehouseID: warehouseID,
		strategy:    strategy,
		policy:      policy,
		demand:      demand,
	}
}

// Run simulates the full calendar and returns one row per day.
//
// The per-day transition order is fixed: (1) receive arrivals due today,
// (2) generate demand, (3) fulfill capped at on-hand stock, (4) consult the
// policy and schedule any order for day+leadTime. An order with zero lead
// time is received immediately in step 4, after today's demand has already
// been fulfilled, and counts toward today's inbound units.
func (m *StateMachine) Run(calendar *entities.Calendar) []entities.SimulationDay {
	state := InventoryState{OnHand: m.product.TargetStock}
	rows := make([]entities.SimulationDay, 0, calendar.Len())

	for dayIndex := 0; dayIndex < calendar.Len(); dayIndex++ {
		inbound := state.receiveDue(dayIndex)

		demand := m.demand.Daily(m.product, dayIndex)

		fulfilled := demand
		if state.OnHand < fulfilled {
			fulfilled = state.OnHand
		}
		unmet := demand - fulfilled
		state.OnHand -= fulfilled

		orderQty := m.policy.OrderQuantity(dayIndex, state.OnHand, state.Outstanding(), m.product)
		if orderQty > 0 {
			if m.product.LeadTimeDays == 0 {
				state.OnHand += orderQty
				inbound += orderQty
			} else {
				state.Pending = append(state.Pending, Arrival{
					DayIndex: dayIndex + m.product.LeadTimeDays,
					Quantity: orderQty,
				})
			}
		}

		rows = append(rows, entities.SimulationDay{
			Date:           calendar.Day(dayIndex),
			ProductID:      m.product.ID,
			WarehouseID:    m.warehouseID,
			Strategy:       m.strategy,
			Demand:         demand,
			InboundUnits:   inbound,
			ActualOutbound: fulfilled,
			InventoryLevel: state.OnHand,
			UnmetDemand:    unmet,
			Stockout:       unmet > 0,
		})
	}

	return rows
}
