package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PizzaSize represents a catalog pizza size. Both the name and the
// centimeters value are unique across the catalog.
//
// @Description Catalog pizza size with its price increase percentage
type PizzaSize struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name" example:"medium"`
	// Centimeters is the pizza diameter.
	Centimeters int `bson:"centimeters" json:"centimeters" example:"30"`
	// PriceIncPct is applied multiplicatively to the summed base+extras
	// price: total * (1 + PriceIncPct/100).
	PriceIncPct float64 `bson:"price_inc_pct" json:"priceIncPct" example:"15"`
} // @name PizzaSize
