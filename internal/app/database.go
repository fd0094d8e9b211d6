// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ovenline/pizzeria-service/config"
	"github.com/ovenline/pizzeria-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	IngredientRepo repository.IngredientRepositoryInterface
	PizzaRepo      repository.PizzaRepositoryInterface
	SizeRepo       repository.SizeRepositoryInterface
	OrderRepo      repository.OrderRepositoryInterface
	UserRepo       repository.UserRepositoryInterface
	TokenRepo      repository.TokenRepositoryInterface
}

// InitializeDatabase connects to MongoDB and creates the repositories. The
// connection is mandatory: the catalog and orders live there.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ingredientRepo := repository.NewIngredientRepository(db)
	pizzaRepo := repository.NewPizzaRepository(db, ingredientRepo)
	sizeRepo := repository.NewSizeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	return &DatabaseComponents{
		DB:             db,
		IngredientRepo: ingredientRepo,
		PizzaRepo:      pizzaRepo,
		SizeRepo:       sizeRepo,
		OrderRepo:      orderRepo,
		UserRepo:       userRepo,
		TokenRepo:      tokenRepo,
	}, nil
}

// Cleanup returns a function that releases the database connection.
func (d *DatabaseComponents) Cleanup() func() {
	return func() {
		if err := d.DB.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
