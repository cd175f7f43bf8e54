package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/markus-pettersen/logistics-simulation/pkg/aggregation"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/repositories"
	"github.com/markus-pettersen/logistics-simulation/pkg/simulation"
)

// Config holds the run parameters for a simulation
type Config struct {
	Strategies  []*entities.Strategy
	Seed        int64
	Aggregation aggregation.Config
}

// RunResult contains the complete output of a simulation run
type RunResult struct {
	SimulationDays []entities.SimulationDay
	OperationsDays []entities.OperationsDay
	Financials     []aggregation.FinancialSummary
}

// SimulationService orchestrates a full run: load reference data, simulate
// every (product, warehouse, strategy) combination, aggregate to warehouse
// level and persist both result sets.
type SimulationService struct {
	products   repositories.ProductRepository
	warehouses repositories.WarehouseRepository
	calendar   repositories.CalendarRepository
	results    repositories.ResultRepository
	config     Config
	logger     *logrus.Logger
}

// NewSimulationService creates a simulation service
func NewSimulationService(
	products repositories.ProductRepository,
	warehouses repositories.WarehouseRepository,
	calendar repositories.CalendarRepository,
	results repositories.ResultRepository,
	config Config,
	logger *logrus.Logger,
) *SimulationService {
	if logger == nil {
		logger = logrus.New()
	}
	return &SimulationService{
		products:   products,
		warehouses: warehouses,
		calendar:   calendar,
		results:    results,
		config:     config,
		logger:     logger,
	}
}

// Run executes the simulation over the configured strategies and persists
// the product-level and warehouse-level datasets
func (s *SimulationService) Run(ctx context.Context) (*RunResult, error) {
	products, err := s.products.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products loaded")
	}

	warehouses, err := s.warehouses.GetAllWarehouses()
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouses: %w", err)
	}
	if len(warehouses) == 0 {
		return nil, fmt.Errorf("no warehouses loaded")
	}

	calendar, err := s.calendar.GetCalendar()
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}

	strategies := s.config.Strategies
	if len(strategies) == 0 {
		strategies = entities.DefaultStrategies()
	}

	s.logger.WithFields(logrus.Fields{
		"products":   len(products),
		"warehouses": len(warehouses),
		"strategies": len(strategies),
		"days":       calendar.Len(),
		"seed":       s.config.Seed,
	}).Info("starting simulation run")

	driver := simulation.NewDriver(simulation.NewNormalDemandGenerator(s.config.Seed))
	rows, err := driver.Run(ctx, products, warehouses, strategies, calendar)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}

	aggConfig := s.config.Aggregation
	if aggConfig.VanCapacity == 0 {
		aggConfig = aggregation.DefaultConfig()
	}
	operations, err := aggregation.Aggregate(rows, warehouses, strategies, aggConfig)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}

	financials, err := aggregation.Summarize(rows, products)
	if err != nil {
		return nil, fmt.Errorf("financial summary failed: %w", err)
	}

	if err := s.results.UpsertSimulationDays(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to persist simulation rows: %w", err)
	}
	if err := s.results.UpsertOperationsDays(ctx, operations); err != nil {
		return nil, fmt.Errorf("failed to persist operations rows: %w", err)
	}

	s.logRunSummary(rows, strategies)

	return &RunResult{
		SimulationDays: rows,
		OperationsDays: operations,
		Financials:     financials,
	}, nil
}

// logRunSummary logs per-strategy totals: row count, stockout days and the
// overall fill rate (fulfilled demand / total demand)
func (s *SimulationService) logRunSummary(rows []entities.SimulationDay, strategies []*entities.Strategy) {
	type totals struct {
		rows      int
		stockouts int
		demand    entities.Quantity
		fulfilled entities.Quantity
	}
	byStrategy := make(map[string]*totals, len(strategies))
	for _, strategy := range strategies {
		byStrategy[strategy.Name] = &totals{}
	}

	for _, row := range rows {
		total := byStrategy[row.Strategy]
		if total == nil {
			continue
		}
		total.rows++
		if row.Stockout {
			total.stockouts++
		}
		total.demand += row.Demand
		total.fulfilled += row.ActualOutbound
	}

	for _, strategy := range strategies {
		total := byStrategy[strategy.Name]
		fillRate := 1.0
		if total.demand > 0 {
			fillRate = float64(total.fulfilled) / float64(total.demand)
		}
		s.logger.WithFields(logrus.Fields{
			"strategy":  strategy.Name,
			"rows":      total.rows,
			"stockouts": total.stockouts,
			"fill_rate": fillRate,
		}).Info("strategy complete")
	}
}
