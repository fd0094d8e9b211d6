// Package service implements the business logic of the pizzeria:
// catalog management, order-line resolution, and order pricing.
package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these to HTTP
// statuses in the transport layer.
var (
	// ErrIngredientNotFound is returned when an ingredient ID resolves to nothing.
	ErrIngredientNotFound = errors.New("ingredient does not exist")
	// ErrPizzaNotFound is returned when a pizza ID resolves to nothing.
	ErrPizzaNotFound = errors.New("pizza does not exist")
	// ErrSizeNotFound is returned when a pizza size ID resolves to nothing.
	ErrSizeNotFound = errors.New("pizza size does not exist")
	// ErrOrderNotFound is returned when an order ID resolves to nothing.
	ErrOrderNotFound = errors.New("order does not exist")

	// ErrIngredientExists is returned when a create collides with an existing ingredient name.
	ErrIngredientExists = errors.New("ingredient already exists")
	// ErrPizzaExists is returned when a create collides with an existing pizza name.
	ErrPizzaExists = errors.New("pizza already exists")
	// ErrSizeExists is returned when a create collides with an existing size name or centimeters value.
	ErrSizeExists = errors.New("pizza size already exists")

	// ErrTastelessPizza is returned when a pizza would end up with no ingredients.
	ErrTastelessPizza = errors.New("a pizza without ingredients is tasteless")
	// ErrSpicyLevelOutOfRange is returned when an ingredient's spicy level is outside [0, 5].
	ErrSpicyLevelOutOfRange = errors.New("spicy level must be between 0 and 5")
)

// UnknownIngredientError reports an ingredient name with no catalog record,
// raised by strict resolution.
type UnknownIngredientError struct {
	Name string
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("unknown ingredient '%s'", e.Name)
}

// UnknownPizzaError reports a pizza name with no catalog record.
type UnknownPizzaError struct {
	Name string
}

func (e *UnknownPizzaError) Error() string {
	return fmt.Sprintf("unknown pizza '%s': not in the catalog", e.Name)
}

// UnknownSizeError reports a pizza size name with no catalog record.
type UnknownSizeError struct {
	Name string
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("unknown size '%s'", e.Name)
}

// IsUnresolvableReference reports whether err is a failed catalog name
// resolution (unknown ingredient, pizza, or size).
func IsUnresolvableReference(err error) bool {
	var ingErr *UnknownIngredientError
	var pizErr *UnknownPizzaError
	var sizeErr *UnknownSizeError
	return errors.As(err, &ingErr) || errors.As(err, &pizErr) || errors.As(err, &sizeErr)
}
