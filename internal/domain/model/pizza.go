package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pizza represents a catalog pizza with its base composition.
// Ingredients are fully resolved catalog records; the stored document keeps
// references only (see PizzaDocument).
//
// @Description Catalog pizza with resolved ingredients
type Pizza struct {
	ID primitive.ObjectID `bson:"-" json:"id"`
	// Name is unique across the catalog.
	Name string `bson:"-" json:"name" example:"margarita"`
	// Ingredients is the base composition. A pizza needs at least one.
	Ingredients []Ingredient `bson:"-" json:"ingredients"`
	// BasicPrice is the pizza price before extras and size adjustment.
	BasicPrice float64 `bson:"-" json:"basicPrice" example:"12"`
} // @name Pizza

// PizzaDocument is the persisted shape of a pizza: ingredient references,
// not copies, so catalog renames show up on later reads.
type PizzaDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Name          string               `bson:"name"`
	IngredientIDs []primitive.ObjectID `bson:"ingredients"`
	BasicPrice    float64              `bson:"basic_price"`
}
