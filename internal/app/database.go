// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/packline/packaging-service/config"
	"github.com/packline/packaging-service/internal/circuitbreaker"
	"github.com/packline/packaging-service/internal/repository"
	"github.com/packline/packaging-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	ProductRepo        repository.ProductRepositoryInterface
	OptionRepo         repository.PackagingOptionRepositoryInterface
	OrderRepo          repository.OrderRepositoryInterface
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories and the
// log persistence service. The catalog and order repositories are mandatory;
// a failed connection is a startup error, not a degraded mode.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	return &DatabaseComponents{
		DB:                 db,
		ProductRepo:        repository.NewProductRepository(db),
		OptionRepo:         repository.NewPackagingOptionRepository(db),
		OrderRepo:          repository.NewOrderRepository(db),
		LoggingService:     loggingService,
		LogsCircuitBreaker: logsCB,
	}, nil
}
