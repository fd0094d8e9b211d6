// Package app provides service initialization.
package app

import (
	"github.com/ovenline/pizzeria-service/config"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	IngredientService service.IngredientService
	PizzaService      service.PizzaService
	SizeService       service.SizeService
	OrderService      service.OrderService
	AuthService       service.AuthService
}

// InitializeServices wires the catalog, order, and auth services on top of
// the repositories.
func InitializeServices(db *DatabaseComponents, authCfg config.AuthConfig) *ServiceComponents {
	resolver := service.NewIngredientResolver(db.IngredientRepo)

	return &ServiceComponents{
		IngredientService: service.NewIngredientService(db.IngredientRepo),
		PizzaService:      service.NewPizzaService(db.PizzaRepo, resolver),
		SizeService:       service.NewSizeService(db.SizeRepo),
		OrderService: service.NewOrderService(
			db.OrderRepo,
			db.PizzaRepo,
			db.SizeRepo,
			db.IngredientRepo,
			resolver,
		),
		AuthService: service.NewAuthService(db.UserRepo, db.TokenRepo, authCfg),
	}
}
