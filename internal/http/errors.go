package http

import (
	"errors"
	"net/http"

	"github.com/ovenline/pizzeria-service/internal/service"
)

// statusFromServiceError maps service layer errors to HTTP status codes.
// Unresolvable catalog references (unknown ingredient, pizza, or size names
// in a request body) are reported as 422; lookups of a missing resource by
// ID are 404; uniqueness collisions are 409; domain validation failures
// are 400.
func statusFromServiceError(err error) int {
	switch {
	case errors.Is(err, service.ErrIngredientNotFound),
		errors.Is(err, service.ErrPizzaNotFound),
		errors.Is(err, service.ErrSizeNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrIngredientExists),
		errors.Is(err, service.ErrPizzaExists),
		errors.Is(err, service.ErrSizeExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrTastelessPizza),
		errors.Is(err, service.ErrSpicyLevelOutOfRange):
		return http.StatusBadRequest
	case service.IsUnresolvableReference(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError renders a service layer error. Internal errors get a
// generic message; everything else surfaces the domain error text.
func respondServiceError(b *ResponseBuilder, err error) {
	status := statusFromServiceError(err)
	if status == http.StatusInternalServerError {
		b.Error(status, "An unexpected error occurred", err)
		return
	}
	b.Error(status, err.Error(), err)
}
