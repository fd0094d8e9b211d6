package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/metrics"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// IngredientHandler provides HTTP handlers for catalog ingredient routes.
type IngredientHandler struct {
	ingredientService service.IngredientService
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(ingredientService service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// Create handles POST /api/ingredients requests.
//
// @Summary      Create ingredient
// @Description  Adds a new ingredient to the catalog. Names are unique and the spicy level must be between 0 and 5.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateIngredientRequest true "Ingredient to create"
// @Success      201 {object} dto.SuccessResponse{data=model.Ingredient} "Created ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden"
// @Failure      409 {object} dto.ErrorResponse "Conflict - ingredient already exists"
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	ing, err := h.ingredientService.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("ingredient", "create")

	builder.SuccessCreated(ing)
}

// List handles GET /api/ingredients requests.
//
// @Summary      List ingredients
// @Description  Returns every ingredient in the catalog.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Ingredient} "Ingredients"
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ingredients, err := h.ingredientService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(ingredients)
}

// Get handles GET /api/ingredients/:id requests.
//
// @Summary      Get ingredient
// @Description  Returns a single ingredient by ID.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Ingredient} "Ingredient"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed ingredient id", err)
		return
	}

	ing, err := h.ingredientService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(ing)
}

// Update handles PATCH /api/ingredients/:id requests.
//
// @Summary      Update ingredient
// @Description  Applies a partial update to an ingredient. Omitted fields are left untouched.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ingredient ID"
// @Param        request body dto.UpdateIngredientRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - name already taken"
// @Router       /api/ingredients/{id} [patch]
func (h *IngredientHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed ingredient id", err)
		return
	}

	var req dto.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.ingredientService.Update(c.Request.Context(), id, req); err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("ingredient", "update")

	builder.SuccessOK(dto.AckResponse{Success: true})
}

// Delete handles DELETE /api/ingredients/:id requests.
//
// @Summary      Delete ingredient
// @Description  Removes an ingredient from the catalog. Pizzas and orders referencing it keep their dangling reference.
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed ingredient id", err)
		return
	}

	if err := h.ingredientService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("ingredient", "delete")

	builder.SuccessOK(dto.AckResponse{Success: true})
}
