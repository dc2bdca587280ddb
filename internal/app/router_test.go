//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/packline/packaging-service/config"
	"github.com/packline/packaging-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	db := &DatabaseComponents{
		ProductRepo: new(mocks.MockProductRepositoryInterface),
		OptionRepo:  new(mocks.MockPackagingOptionRepositoryInterface),
		OrderRepo:   new(mocks.MockOrderRepositoryInterface),
	}
	services := InitializeServices(db)

	cfg := config.Config{
		Server: config.ServerConfig{
			Port:        "8080",
			RateLimit:   50,
			RateWindow:  30 * time.Second,
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Auth: config.AuthConfig{
			Enabled: true,
			APIKeys: map[string]bool{"secret": true},
		},
	}

	components := InitializeRouter(services, db, cfg)
	require.NotNil(t, components)
	require.NotNil(t, components.HealthHandler)

	assert.Equal(t, 50, components.Config.RateLimit)
	assert.Equal(t, 30*time.Second, components.Config.RateWindow)
	assert.True(t, components.Config.EnableAuth)
	assert.Equal(t, map[string]bool{"secret": true}, components.Config.APIKeys)
	assert.True(t, components.Config.EnableIdempotency)
	assert.Equal(t, []string{"http://localhost:3000"}, components.Config.CORSOrigins)
	assert.Same(t, services.ProductService, components.Config.ProductService)
	assert.Same(t, services.OptionService, components.Config.OptionService)
	assert.Same(t, services.OrderService, components.Config.OrderService)
}
