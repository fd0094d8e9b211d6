// Package app provides router configuration.
package app

import (
	"context"

	"github.com/ovenline/pizzeria-service/config"
	"github.com/ovenline/pizzeria-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.AddChecker("mongodb", http.HealthCheckerFunc(func() error {
		return dbComponents.DB.HealthCheck(context.Background())
	}))

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		AuthService:       services.AuthService,
		IngredientService: services.IngredientService,
		PizzaService:      services.PizzaService,
		SizeService:       services.SizeService,
		OrderService:      services.OrderService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
