// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ovenline/pizzeria-service/config"
	"github.com/ovenline/pizzeria-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	services := InitializeServices(dbComponents, cfg.Auth)

	SeedCatalog(dbComponents, services, cfg.Seed)

	routerComponents := InitializeRouter(services, dbComponents, cfg)

	router := http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
	return router, dbComponents.Cleanup(), nil
}
