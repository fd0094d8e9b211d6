// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/ovenline/pizzeria-service/internal/domain/model"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateIngredientRequest represents the JSON request body for creating an ingredient.
//
// Dietary flags use pointers so that an explicit false passes the required
// binding; validation is performed with gin's binding tags.
//
// @Description Request to create a catalog ingredient
type CreateIngredientRequest struct {
	Name          string `json:"name" binding:"required" example:"basil"`
	IsGlutenFree  *bool  `json:"isGlutenFree" binding:"required"`
	IsNutFree     *bool  `json:"isNutFree" binding:"required"`
	IsLactoseFree *bool  `json:"isLactoseFree" binding:"required"`
	IsFishFree    *bool  `json:"isFishFree" binding:"required"`
	IsVegetarian  *bool  `json:"isVegetarian" binding:"required"`
	IsVegan       *bool  `json:"isVegan" binding:"required"`
	// SpicyLevel must be between 0 and 5 inclusive.
	SpicyLevel *int `json:"spicyLevel" binding:"required" example:"2"`
	// ExtraPrice is the non-negative price charged for the ingredient as an extra.
	ExtraPrice *float64 `json:"extraPrice" binding:"required,gte=0" example:"1"`
} // @name CreateIngredientRequest

// ToModel converts the request to an Ingredient model.
func (r *CreateIngredientRequest) ToModel() model.Ingredient {
	return model.Ingredient{
		Name:          r.Name,
		IsGlutenFree:  *r.IsGlutenFree,
		IsNutFree:     *r.IsNutFree,
		IsLactoseFree: *r.IsLactoseFree,
		IsFishFree:    *r.IsFishFree,
		IsVegetarian:  *r.IsVegetarian,
		IsVegan:       *r.IsVegan,
		SpicyLevel:    *r.SpicyLevel,
		ExtraPrice:    *r.ExtraPrice,
	}
}

// UpdateIngredientRequest represents a partial ingredient update. Omitted
// fields (nil pointers) leave the stored value untouched.
//
// @Description Partial update of a catalog ingredient
type UpdateIngredientRequest struct {
	Name          *string  `json:"name,omitempty"`
	IsGlutenFree  *bool    `json:"isGlutenFree,omitempty"`
	IsNutFree     *bool    `json:"isNutFree,omitempty"`
	IsLactoseFree *bool    `json:"isLactoseFree,omitempty"`
	IsFishFree    *bool    `json:"isFishFree,omitempty"`
	IsVegetarian  *bool    `json:"isVegetarian,omitempty"`
	IsVegan       *bool    `json:"isVegan,omitempty"`
	SpicyLevel    *int     `json:"spicyLevel,omitempty"`
	ExtraPrice    *float64 `json:"extraPrice,omitempty" binding:"omitempty,gte=0"`
} // @name UpdateIngredientRequest

// Empty reports whether no field is set.
func (r *UpdateIngredientRequest) Empty() bool {
	return r.Name == nil && r.IsGlutenFree == nil && r.IsNutFree == nil &&
		r.IsLactoseFree == nil && r.IsFishFree == nil && r.IsVegetarian == nil &&
		r.IsVegan == nil && r.SpicyLevel == nil && r.ExtraPrice == nil
}

// CreatePizzaRequest represents the JSON request body for creating a pizza.
// Ingredients are referenced by their catalog names.
//
// @Description Request to create a catalog pizza
type CreatePizzaRequest struct {
	Name string `json:"name" binding:"required" example:"margarita"`
	// Ingredients is the base composition, referenced by name. At least one
	// is required; a pizza without ingredients is rejected.
	Ingredients []string `json:"ingredients" binding:"required" example:"tomato,mozzarella"`
	// BasicPrice is the non-negative price before extras and size adjustment.
	BasicPrice *float64 `json:"basicPrice" binding:"required,gte=0" example:"12"`
} // @name CreatePizzaRequest

// UpdatePizzaRequest represents a partial pizza update. A supplied
// ingredients list replaces the whole composition and is re-resolved.
//
// @Description Partial update of a catalog pizza
type UpdatePizzaRequest struct {
	Name        *string   `json:"name,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
	BasicPrice  *float64  `json:"basicPrice,omitempty" binding:"omitempty,gte=0"`
} // @name UpdatePizzaRequest

// Empty reports whether no field is set.
func (r *UpdatePizzaRequest) Empty() bool {
	return r.Name == nil && r.Ingredients == nil && r.BasicPrice == nil
}

// CreatePizzaSizeRequest represents the JSON request body for creating a pizza size.
//
// @Description Request to create a catalog pizza size
type CreatePizzaSizeRequest struct {
	Name        string   `json:"name" binding:"required" example:"medium"`
	Centimeters *int     `json:"centimeters" binding:"required,gt=0" example:"30"`
	PriceIncPct *float64 `json:"priceIncPct" binding:"required,gte=0" example:"15"`
} // @name CreatePizzaSizeRequest

// ToModel converts the request to a PizzaSize model.
func (r *CreatePizzaSizeRequest) ToModel() model.PizzaSize {
	return model.PizzaSize{
		Name:        r.Name,
		Centimeters: *r.Centimeters,
		PriceIncPct: *r.PriceIncPct,
	}
}

// UpdatePizzaSizeRequest represents a partial pizza size update.
//
// @Description Partial update of a catalog pizza size
type UpdatePizzaSizeRequest struct {
	Name        *string  `json:"name,omitempty"`
	Centimeters *int     `json:"centimeters,omitempty" binding:"omitempty,gt=0"`
	PriceIncPct *float64 `json:"priceIncPct,omitempty" binding:"omitempty,gte=0"`
} // @name UpdatePizzaSizeRequest

// Empty reports whether no field is set.
func (r *UpdatePizzaSizeRequest) Empty() bool {
	return r.Name == nil && r.Centimeters == nil && r.PriceIncPct == nil
}

// BankCardRequest carries the customer's card data verbatim.
type BankCardRequest struct {
	CardNumber string `json:"cardNumber" binding:"required" example:"4433322221111000"`
	ExpireDate *int   `json:"expireDate" binding:"required" example:"1226"`
	Secret     string `json:"secret" binding:"required" example:"123"`
} // @name BankCardRequest

// CustomerRequest carries the customer embedded in an order request.
type CustomerRequest struct {
	Name     string          `json:"name" binding:"required" example:"Jane Doe"`
	Email    string          `json:"email" binding:"required" example:"jane@example.com"`
	Phone    string          `json:"phone" binding:"required" example:"+3670123456"`
	Address  string          `json:"address" binding:"required" example:"1 Main St"`
	BankCard BankCardRequest `json:"bankCard" binding:"required"`
} // @name CustomerRequest

// ToModel converts the request to a Customer model.
func (r *CustomerRequest) ToModel() model.Customer {
	return model.Customer{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		BankCard: model.BankCard{
			CardNumber: r.BankCard.CardNumber,
			ExpireDate: *r.BankCard.ExpireDate,
			Secret:     r.BankCard.Secret,
		},
	}
}

// PizzaOrderRequest is one order line: pizza and size by catalog name plus
// extra ingredient names. Extras are not checked against the pizza's own
// composition and duplicates are allowed.
type PizzaOrderRequest struct {
	Pizza string `json:"pizza" binding:"required" example:"margarita"`
	// ExtraIngredients may be empty but must be present.
	ExtraIngredients []string `json:"extraIngredients" binding:"required" example:"ham,basil"`
	Size             string   `json:"size" binding:"required" example:"medium"`
} // @name PizzaOrderRequest

// CreateOrderRequest represents the JSON request body for placing an order.
//
// @Description Request to place an order
type CreateOrderRequest struct {
	Customer    CustomerRequest     `json:"customer" binding:"required"`
	PizzaOrders []PizzaOrderRequest `json:"pizzaOrders" binding:"required,dive"`
} // @name CreateOrderRequest

// UpdateOrderRequest represents a partial order update. A supplied line list
// replaces the existing lines wholesale and is re-resolved from scratch.
//
// @Description Partial update of an order
type UpdateOrderRequest struct {
	Customer    *CustomerRequest     `json:"customer,omitempty"`
	PizzaOrders *[]PizzaOrderRequest `json:"pizzaOrders,omitempty" binding:"omitempty,dive"`
	Discount    *float64             `json:"discount,omitempty" binding:"omitempty,gte=0,lte=100"`
	State       *model.OrderState    `json:"state,omitempty"`
} // @name UpdateOrderRequest

// Empty reports whether no field is set.
func (r *UpdateOrderRequest) Empty() bool {
	return r.Customer == nil && r.PizzaOrders == nil && r.Discount == nil && r.State == nil
}

// Validate performs custom validation on the update request.
func (r *UpdateOrderRequest) Validate() error {
	if r.State != nil && !r.State.Valid() {
		return &ValidationError{Field: "state", Message: "unknown order state"}
	}
	return nil
}
