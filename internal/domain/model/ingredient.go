// Package model defines the core domain entities for the pizzeria service.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// SpicyLevelMin is the lowest allowed spicy level.
	SpicyLevelMin = 0
	// SpicyLevelMax is the highest allowed spicy level.
	SpicyLevelMax = 5
)

// Ingredient represents a catalog ingredient that can compose a pizza or be
// added to an order line as an extra.
//
// @Description Catalog ingredient with dietary flags and pricing
type Ingredient struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Name is unique across the catalog.
	Name          string  `bson:"name" json:"name" example:"basil"`
	IsGlutenFree  bool    `bson:"is_gluten_free" json:"isGlutenFree"`
	IsNutFree     bool    `bson:"is_nut_free" json:"isNutFree"`
	IsLactoseFree bool    `bson:"is_lactose_free" json:"isLactoseFree"`
	IsFishFree    bool    `bson:"is_fish_free" json:"isFishFree"`
	IsVegetarian  bool    `bson:"is_vegetarian" json:"isVegetarian"`
	IsVegan       bool    `bson:"is_vegan" json:"isVegan"`
	// SpicyLevel is an integer in [0, 5].
	SpicyLevel int `bson:"spicy_level" json:"spicyLevel" example:"2"`
	// ExtraPrice is charged when the ingredient is ordered as an extra.
	ExtraPrice float64 `bson:"extra_price" json:"extraPrice" example:"1"`
} // @name Ingredient

// SpicyLevelInRange reports whether the ingredient's spicy level is within
// the allowed [SpicyLevelMin, SpicyLevelMax] bounds.
func (i Ingredient) SpicyLevelInRange() bool {
	return i.SpicyLevel >= SpicyLevelMin && i.SpicyLevel <= SpicyLevelMax
}
