package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/markus-pettersen/logistics-simulation/pkg/application/services"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/entities"
	"github.com/markus-pettersen/logistics-simulation/pkg/domain/repositories"
	"github.com/markus-pettersen/logistics-simulation/pkg/infrastructure/export"
	csvrepo "github.com/markus-pettersen/logistics-simulation/pkg/infrastructure/repositories/csv"
	"github.com/markus-pettersen/logistics-simulation/pkg/infrastructure/repositories/gormdb"
	"github.com/markus-pettersen/logistics-simulation/pkg/infrastructure/repositories/memory"
)

func main() {
	// Command line flags
	var (
		productsFile   = flag.String("products", "", "Path to products CSV file (required)")
		warehousesFile = flag.String("warehouses", "", "Path to warehouses CSV file (required)")
		calendarFile   = flag.String("calendar", "", "Path to calendar CSV file (optional)")
		startDate      = flag.String("start", "2024-01-01", "Simulation start date when no calendar file is given")
		days           = flag.Int("days", 365, "Simulation length in days when no calendar file is given")
		seed           = flag.Int64("seed", 42, "Random seed for demand generation")
		strategyList   = flag.String("strategies", "", "Comma-separated strategy names (default: all)")
		outputDir      = flag.String("output", "", "Output directory for CSV results (optional)")
		xlsxFile       = flag.String("xlsx", "", "Path for XLSX operations report (optional)")
		useDB          = flag.Bool("db", false, "Persist results to MySQL (connection from environment)")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	)

	flag.Parse()

	config := runConfig{
		ProductsFile:   *productsFile,
		WarehousesFile: *warehousesFile,
		CalendarFile:   *calendarFile,
		StartDate:      *startDate,
		Days:           *days,
		Seed:           *seed,
		Strategies:     *strategyList,
		OutputDir:      *outputDir,
		XLSXFile:       *xlsxFile,
		UseDB:          *useDB,
		Verbose:        *verbose,
	}

	if err := run(context.Background(), config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runConfig struct {
	ProductsFile   string
	WarehousesFile string
	CalendarFile   string
	StartDate      string
	Days           int
	Seed           int64
	Strategies     string
	OutputDir      string
	XLSXFile       string
	UseDB          bool
	Verbose        bool
}

func run(ctx context.Context, config runConfig) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if config.ProductsFile == "" || config.WarehousesFile == "" {
		return fmt.Errorf("both -products and -warehouses are required")
	}

	loader := csvrepo.NewLoader()

	products, err := loader.LoadProducts(config.ProductsFile)
	if err != nil {
		return err
	}
	warehouses, err := loader.LoadWarehouses(config.WarehousesFile)
	if err != nil {
		return err
	}

	var calendar *entities.Calendar
	if config.CalendarFile != "" {
		calendar, err = loader.LoadCalendar(config.CalendarFile)
		if err != nil {
			return err
		}
	} else {
		start, err := time.Parse("2006-01-02", config.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start date %s (expected YYYY-MM-DD)", config.StartDate)
		}
		calendar, err = entities.NewDateRange(start, config.Days)
		if err != nil {
			return err
		}
	}

	strategies, err := resolveStrategies(config.Strategies)
	if err != nil {
		return err
	}

	productRepo := memory.NewProductRepository(len(products))
	if err := productRepo.LoadProducts(products); err != nil {
		return err
	}
	warehouseRepo := memory.NewWarehouseRepository(len(warehouses))
	if err := warehouseRepo.LoadWarehouses(warehouses); err != nil {
		return err
	}
	calendarRepo := memory.NewCalendarRepository()
	if err := calendarRepo.LoadCalendar(calendar); err != nil {
		return err
	}

	var results repositories.ResultRepository
	if config.UseDB {
		db, err := gormdb.Open()
		if err != nil {
			return err
		}
		store, err := gormdb.NewStore(db)
		if err != nil {
			return err
		}
		results = store
	} else {
		results = memory.NewResultRepository()
	}

	service := services.NewSimulationService(productRepo, warehouseRepo, calendarRepo, results,
		services.Config{Strategies: strategies, Seed: config.Seed}, logger)

	result, err := service.Run(ctx)
	if err != nil {
		return err
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		writer := csvrepo.NewWriter()
		if err := writer.WriteSimulationDays(filepath.Join(config.OutputDir, "simulation_days.csv"), result.SimulationDays); err != nil {
			return err
		}
		if err := writer.WriteOperationsDays(filepath.Join(config.OutputDir, "operations_days.csv"), result.OperationsDays); err != nil {
			return err
		}
		logger.WithField("dir", config.OutputDir).Info("CSV results written")
	}

	if config.XLSXFile != "" {
		if err := export.WriteOperationsWorkbook(config.XLSXFile, result.OperationsDays); err != nil {
			return err
		}
		logger.WithField("file", config.XLSXFile).Info("XLSX report written")
	}

	printSummary(result)
	return nil
}

func resolveStrategies(list string) ([]*entities.Strategy, error) {
	if list == "" {
		return entities.DefaultStrategies(), nil
	}

	var strategies []*entities.Strategy
	for _, name := range strings.Split(list, ",") {
		strategy, err := entities.StrategyByName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}
	return strategies, nil
}
