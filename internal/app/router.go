// Package app provides router configuration.
package app

import (
	"context"

	"github.com/packline/packaging-service/config"
	"github.com/packline/packaging-service/internal/http"
	"github.com/packline/packaging-service/internal/repository"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoHealthChecker adapts the MongoDB handle to the health endpoint.
type mongoHealthChecker struct {
	db *repository.MongoDB
}

func (c *mongoHealthChecker) Check() error {
	return c.db.HealthCheck(context.Background())
}

// InitializeRouter builds the HTTP router configuration from the wired
// services and registers health monitoring for the database.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.AddChecker("database", &mongoHealthChecker{db: db.DB})
	if db.LogsCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    db.LoggingService,
		ProductService:    services.ProductService,
		OptionService:     services.OptionService,
		OrderService:      services.OrderService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
