package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/metrics"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// PizzaHandler provides HTTP handlers for catalog pizza routes.
type PizzaHandler struct {
	pizzaService service.PizzaService
}

// NewPizzaHandler creates a new pizza handler.
func NewPizzaHandler(pizzaService service.PizzaService) *PizzaHandler {
	return &PizzaHandler{pizzaService: pizzaService}
}

// Create handles POST /api/pizzas requests.
//
// @Summary      Create pizza
// @Description  Adds a new pizza to the catalog. Ingredients are referenced by name and every name must exist; a pizza needs at least one ingredient.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePizzaRequest true "Pizza to create"
// @Success      201 {object} dto.SuccessResponse{data=model.Pizza} "Created pizza"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or no ingredients"
// @Failure      409 {object} dto.ErrorResponse "Conflict - pizza already exists"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - unknown ingredient name"
// @Router       /api/pizzas [post]
func (h *PizzaHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreatePizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	pizza, err := h.pizzaService.Create(c.Request.Context(), req.Name, *req.BasicPrice, req.Ingredients)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("pizza", "create")

	builder.SuccessCreated(pizza)
}

// List handles GET /api/pizzas requests. An optional comma-separated
// "ingredients" query filters to pizzas containing every named ingredient;
// unknown names in the filter are ignored.
//
// @Summary      List pizzas
// @Description  Returns every pizza, or only those containing all of the given ingredients when the filter is present.
// @Tags         Catalog
// @Produce      json
// @Param        ingredients query string false "Comma-separated ingredient names" example(tomato,mozzarella)
// @Success      200 {object} dto.SuccessResponse{data=[]model.Pizza} "Pizzas"
// @Router       /api/pizzas [get]
func (h *PizzaHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if filter, ok := c.GetQuery("ingredients"); ok {
		names := splitNonEmpty(filter, ",")
		pizzas, err := h.pizzaService.FindByIngredients(c.Request.Context(), names)
		if err != nil {
			respondServiceError(builder, err)
			return
		}
		builder.SuccessOK(pizzas)
		return
	}

	pizzas, err := h.pizzaService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(pizzas)
}

// Get handles GET /api/pizzas/:id requests.
//
// @Summary      Get pizza
// @Description  Returns a single pizza by ID with its composition resolved.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Pizza ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Pizza} "Pizza"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/pizzas/{id} [get]
func (h *PizzaHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed pizza id", err)
		return
	}

	pizza, err := h.pizzaService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(pizza)
}

// Update handles PATCH /api/pizzas/:id requests.
//
// @Summary      Update pizza
// @Description  Applies a partial update. A supplied ingredients list replaces the whole composition and must not be empty.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Pizza ID"
// @Param        request body dto.UpdatePizzaRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty composition"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - name already taken"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - unknown ingredient name"
// @Router       /api/pizzas/{id} [patch]
func (h *PizzaHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed pizza id", err)
		return
	}

	var req dto.UpdatePizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.pizzaService.Update(c.Request.Context(), id, req); err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("pizza", "update")

	builder.SuccessOK(dto.AckResponse{Success: true})
}

// Delete handles DELETE /api/pizzas/:id requests.
//
// @Summary      Delete pizza
// @Description  Removes a pizza from the catalog. Orders referencing it keep their dangling reference.
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Pizza ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/pizzas/{id} [delete]
func (h *PizzaHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed pizza id", err)
		return
	}

	if err := h.pizzaService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("pizza", "delete")

	builder.SuccessOK(dto.AckResponse{Success: true})
}

// splitNonEmpty splits s on sep and drops empty segments, so trailing commas
// and duplicate separators do not produce phantom names.
func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
