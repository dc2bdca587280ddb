// Package main is the entry point for the packaging-service application.
//
// @title           Packaging Service API
// @version         1.0.0
// @description     API for a product catalog with bundle packaging options and order pricing.
//
//	Orders are priced with greedy largest-bundle-first packing and stored with
//	the prices in effect at creation time.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/packline/packaging-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Products
// @tag.description Product catalog operations
//
// @tag.name        PackagingOptions
// @tag.description Bundle packaging option operations
//
// @tag.name        Orders
// @tag.description Order placement and retrieval
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/packline/packaging-service/docs" // swagger docs

	"github.com/packline/packaging-service/config"
	"github.com/packline/packaging-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
