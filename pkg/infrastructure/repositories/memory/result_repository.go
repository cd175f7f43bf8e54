package memory

import (
	"context"
	"sort"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/repositories"
)

// ResultRepository stores simulation output in memory with the same
// idempotence contract as the relational store: at most one row per
// composite key, conflicting rewrites silently ignored.
type ResultRepository struct {
	simulationDays map[entities.SimulationKey]entities.SimulationDay
	operationsDays map[entities.OperationsKey]entities.OperationsDay
}

// NewResultRepository creates a new in-memory result repository
func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		simulationDays: make(map[entities.SimulationKey]entities.SimulationDay),
		operationsDays: make(map[entities.OperationsKey]entities.OperationsDay),
	}
}

// Verify interface compliance
var _ repositories.ResultRepository = (*ResultRepository)(nil)

// UpsertSimulationDays stores product-level rows, keeping the first row
// written for each composite key
func (r *ResultRepository) UpsertSimulationDays(ctx context.Context, rows []entities.SimulationDay) error {
	for _, row := range rows {
		key := row.Key()
		if _, exists := r.simulationDays[key]; !exists {
			r.simulationDays[key] = row
		}
	}
	return nil
}

// UpsertOperationsDays stores warehouse-level rows, keeping the first row
// written for each composite key
func (r *ResultRepository) UpsertOperationsDays(ctx context.Context, rows []entities.OperationsDay) error {
	for _, row := range rows {
		key := row.Key()
		if _, exists := r.operationsDays[key]; !exists {
			r.operationsDays[key] = row
		}
	}
	return nil
}

// GetSimulationDays returns all stored product-level rows sorted by date,
// product, warehouse and strategy
func (r *ResultRepository) GetSimulationDays() []entities.SimulationDay {
	rows := make([]entities.SimulationDay, 0, len(r.simulationDays))
	for _, row := range r.simulationDays {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		if rows[i].WarehouseID != rows[j].WarehouseID {
			return rows[i].WarehouseID < rows[j].WarehouseID
		}
		return rows[i].Strategy < rows[j].Strategy
	})
	return rows
}

// GetOperationsDays returns all stored warehouse-level rows sorted by date,
// warehouse and strategy
func (r *ResultRepository) GetOperationsDays() []entities.OperationsDay {
	rows := make([]entities.OperationsDay, 0, len(r.operationsDays))
	for _, row := range r.operationsDays {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		if rows[i].WarehouseID != rows[j].WarehouseID {
			return rows[i].WarehouseID < rows[j].WarehouseID
		}
		return rows[i].Strategy < rows[j].Strategy
	})
	return rows
}
