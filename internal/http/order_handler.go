package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/metrics"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// OrderHandler provides HTTP handlers for order routes.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /api/orders requests.
//
// @Summary      Place order
// @Description  Resolves every line against the catalog, prices it, and stores the order with state 0 (received) and no discount. Any unknown pizza, size, or extra ingredient rejects the whole order.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "Order to place"
// @Success      201 {object} dto.SuccessResponse{data=dto.OrderResponse} "Created order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - unknown catalog reference"
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	ord, err := h.orderService.Create(c.Request.Context(), req.Customer.ToModel(), req.PizzaOrders)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordOrderCreated(len(ord.Lines), ord.Price)

	builder.SuccessCreated(dto.NewOrderResponse(ord))
}

// List handles GET /api/orders requests.
//
// @Summary      List orders
// @Description  Returns every order, oldest first, with catalog names resolved at read time.
// @Tags         Orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=[]dto.OrderResponse} "Orders"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden"
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orders, err := h.orderService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.NewOrderResponse(&orders[i]))
	}

	builder.SuccessOK(responses)
}

// Get handles GET /api/orders/:id requests.
//
// @Summary      Get order
// @Description  Returns a single order by ID with catalog names resolved at read time.
// @Tags         Orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse} "Order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed order id", err)
		return
	}

	ord, err := h.orderService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewOrderResponse(ord))
}

// Update handles PATCH /api/orders/:id requests.
//
// @Summary      Update order
// @Description  Applies a partial update. A supplied line list replaces the existing lines and is re-priced; the discount applied to the new price is the one in this request, defaulting to none.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Param        request body dto.UpdateOrderRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - unknown catalog reference"
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed order id", err)
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.orderService.Update(c.Request.Context(), id, *req); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.AckResponse{Success: true})
}

// Delete handles DELETE /api/orders/:id requests.
//
// @Summary      Delete order
// @Description  Removes an order.
// @Tags         Orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed order id", err)
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.AckResponse{Success: true})
}

// DeleteAll handles DELETE /api/orders requests.
//
// @Summary      Delete all orders
// @Description  Removes every order.
// @Tags         Orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Router       /api/orders [delete]
func (h *OrderHandler) DeleteAll(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.orderService.DeleteAll(c.Request.Context()); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.AckResponse{Success: true})
}
