package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderState is the lifecycle state of an order. Any declared state may be
// set via update; transition legality is not validated.
type OrderState int

const (
	// OrderStateReceived is the initial state of every new order.
	OrderStateReceived OrderState = iota
	// OrderStateInProgress means the order is being prepared.
	OrderStateInProgress
	// OrderStateDelivered means the order reached the customer.
	OrderStateDelivered
	// OrderStateCancelled means the order was cancelled.
	OrderStateCancelled
)

// Valid reports whether s is one of the declared order states.
func (s OrderState) Valid() bool {
	return s >= OrderStateReceived && s <= OrderStateCancelled
}

// BankCard holds the customer's card data. It is stored verbatim; payment
// processing is not part of this system.
type BankCard struct {
	CardNumber string `bson:"card_number" json:"cardNumber" example:"4433322221111000"`
	ExpireDate int    `bson:"expire_date" json:"expireDate" example:"1226"`
	Secret     string `bson:"secret" json:"secret" example:"123"`
} // @name BankCard

// Customer is embedded in an order.
type Customer struct {
	Name     string   `bson:"name" json:"name" example:"Jane Doe"`
	Email    string   `bson:"email" json:"email" example:"jane@example.com"`
	Phone    string   `bson:"phone" json:"phone" example:"+3670123456"`
	Address  string   `bson:"address" json:"address" example:"1 Main St"`
	BankCard BankCard `bson:"bank_card" json:"bankCard"`
} // @name Customer

// OrderLine is one pizza+size+extras selection within an order, fully
// resolved against the catalog, with its computed price.
type OrderLine struct {
	Pizza            Pizza        `json:"pizza"`
	Size             PizzaSize    `json:"size"`
	ExtraIngredients []Ingredient `json:"extraIngredients"`
	// Price is snapshotted at creation/update time.
	Price float64 `json:"price"`
}

// Order is the aggregate produced by the pricing engine.
type Order struct {
	ID       primitive.ObjectID `json:"id"`
	Customer Customer           `json:"customer"`
	Lines    []OrderLine        `json:"pizzaOrders"`
	// Discount is a percentage, default 0.
	Discount float64 `json:"discount"`
	// Price is always computed from line prices, never client-supplied.
	Price float64    `json:"price"`
	State OrderState `json:"state"`
}

// OrderLineDocument is the persisted shape of an order line: catalog
// references plus the snapshotted price.
type OrderLineDocument struct {
	PizzaID            primitive.ObjectID   `bson:"pizza"`
	ExtraIngredientIDs []primitive.ObjectID `bson:"extra_ingredients"`
	SizeID             primitive.ObjectID   `bson:"size"`
	Price              float64              `bson:"price"`
}

// OrderDocument is the persisted shape of an order.
type OrderDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Customer  Customer            `bson:"customer"`
	Lines     []OrderLineDocument `bson:"pizza_orders"`
	Discount  float64             `bson:"discount"`
	Price     float64             `bson:"price"`
	State     OrderState          `bson:"state"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}
