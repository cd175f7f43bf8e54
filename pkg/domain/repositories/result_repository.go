package repositories

import (
	"context"

	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
)

// ResultRepository persists simulation output. Both upserts are idempotent
// on the rows' composite keys: re-writing a batch that overlaps an earlier
// run must neither error nor duplicate.
type ResultRepository interface {
	UpsertSimulationDays(ctx context.Context, rows []entities.SimulationDay) error
	UpsertOperationsDays(ctx context.Context, rows []entities.OperationsDay) error
}
