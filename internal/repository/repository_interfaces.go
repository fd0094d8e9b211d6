// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

// IngredientRepositoryInterface defines the interface for ingredient repository operations.
type IngredientRepositoryInterface interface {
	Create(ctx context.Context, ingredient *model.Ingredient) error
	FindAll(ctx context.Context) ([]model.Ingredient, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error)
	FindByName(ctx context.Context, name string) (*model.Ingredient, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Ingredient, error)
	Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// PizzaRepositoryInterface defines the interface for pizza repository operations.
// FindBy* methods return pizzas with their ingredient references hydrated.
type PizzaRepositoryInterface interface {
	Create(ctx context.Context, doc *model.PizzaDocument) error
	FindAll(ctx context.Context) ([]model.Pizza, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pizza, error)
	FindByName(ctx context.Context, name string) (*model.Pizza, error)
	FindByIngredientIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Pizza, error)
	Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// SizeRepositoryInterface defines the interface for pizza size repository operations.
type SizeRepositoryInterface interface {
	Create(ctx context.Context, size *model.PizzaSize) error
	FindAll(ctx context.Context) ([]model.PizzaSize, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PizzaSize, error)
	FindByName(ctx context.Context, name string) (*model.PizzaSize, error)
	Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

// OrderRepositoryInterface defines the interface for order repository
// operations. Orders are persisted with catalog references (see
// model.OrderDocument); hydration happens in the order service.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, doc *model.OrderDocument) error
	FindAll(ctx context.Context) ([]model.OrderDocument, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrderDocument, error)
	Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}
