package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/repositories"
)

const batchSize = 500

// Store persists simulation results to the relational database. Writes are
// idempotent on the composite keys: rows that already exist are skipped, so
// repeated runs over the same horizon are safe.
type Store struct {
	db *gorm.DB
}

// NewStore creates a result store and migrates its tables
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&SimulationRecord{}, &OperationsRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate result tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Verify interface compliance
var _ repositories.ResultRepository = (*Store)(nil)

// UpsertSimulationDays batch-writes product-level rows, ignoring composite
// key conflicts
func (s *Store) UpsertSimulationDays(ctx context.Context, rows []entities.SimulationDay) error {
	if len(rows) == 0 {
		return nil
	}

	records := make([]SimulationRecord, len(rows))
	for i, row := range rows {
		records[i] = toSimulationRecord(row)
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(records, batchSize).Error; err != nil {
		return fmt.Errorf("failed to upsert simulation rows: %w", err)
	}
	return nil
}

// UpsertOperationsDays batch-writes warehouse-level rows, ignoring composite
// key conflicts
func (s *Store) UpsertOperationsDays(ctx context.Context, rows []entities.OperationsDay) error {
	if len(rows) == 0 {
		return nil
	}

	records := make([]OperationsRecord, len(rows))
	for i, row := range rows {
		records[i] = toOperationsRecord(row)
	}

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(records, batchSize).Error; err != nil {
		return fmt.Errorf("failed to upsert operations rows: %w", err)
	}
	return nil
}
