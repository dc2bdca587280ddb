// Package app provides application initialization and dependency injection.
package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/packline/packaging-service/config"
	"github.com/packline/packaging-service/internal/http"
	"github.com/packline/packaging-service/internal/logger"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and log service)
	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize business services
	serviceComponents := InitializeServices(dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), nil
}

// InitializeLogger configures the global logger from LOG_LEVEL and
// LOG_PRETTY. These stay plain environment reads rather than config fields
// so logging is usable before config.Load runs.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
