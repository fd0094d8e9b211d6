package dto

import (
	"net/http"
	"time"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeUnprocessable indicates a reference that cannot be resolved
	// against the catalog.
	ErrCodeUnprocessable = "unprocessable_entity"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"unknown ingredient 'basil'"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	default:
		return ErrCodeInternal
	}
}

// AckResponse acknowledges a mutation that does not return the resource.
// @Description Success acknowledgment
type AckResponse struct {
	Success bool `json:"success" example:"true"`
} // @name AckResponse

// PizzaOrderResponse is one order line rendered with catalog names resolved
// at read time.
type PizzaOrderResponse struct {
	Pizza            string   `json:"pizza" example:"margarita"`
	ExtraIngredients []string `json:"extraIngredients" example:"ham,basil"`
	Size             string   `json:"size" example:"medium"`
	Price            float64  `json:"price" example:"14"`
} // @name PizzaOrderResponse

// OrderResponse is the API shape of an order.
// @Description Order with resolved catalog names and computed prices
type OrderResponse struct {
	ID          string               `json:"id"`
	Customer    model.Customer       `json:"customer"`
	PizzaOrders []PizzaOrderResponse `json:"pizzaOrders"`
	Discount    float64              `json:"discount" example:"0"`
	Price       float64              `json:"price" example:"14"`
	State       model.OrderState     `json:"state" example:"0"`
} // @name OrderResponse

// NewOrderResponse maps a resolved order to its API shape.
func NewOrderResponse(ord *model.Order) OrderResponse {
	lines := make([]PizzaOrderResponse, 0, len(ord.Lines))
	for _, line := range ord.Lines {
		extras := make([]string, 0, len(line.ExtraIngredients))
		for _, ing := range line.ExtraIngredients {
			extras = append(extras, ing.Name)
		}
		lines = append(lines, PizzaOrderResponse{
			Pizza:            line.Pizza.Name,
			ExtraIngredients: extras,
			Size:             line.Size.Name,
			Price:            line.Price,
		})
	}
	return OrderResponse{
		ID:          ord.ID.Hex(),
		Customer:    ord.Customer,
		PizzaOrders: lines,
		Discount:    ord.Discount,
		Price:       ord.Price,
		State:       ord.State,
	}
}
