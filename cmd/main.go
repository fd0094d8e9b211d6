// Package main is the entry point for the pizzeria-service application.
//
// @title           Pizzeria Service API
// @version         1.0.0
// @description     API for managing a pizzeria: the catalog of ingredients,
//
//	pizzas, and sizes, and the orders composed and priced against it.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/ovenline/pizzeria-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Catalog
// @tag.description Ingredient, pizza, and pizza size management
//
// @tag.name        Orders
// @tag.description Order placement and management
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/ovenline/pizzeria-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/ovenline/pizzeria-service/config"
	"github.com/ovenline/pizzeria-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
