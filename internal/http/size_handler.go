package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/metrics"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// SizeHandler provides HTTP handlers for catalog pizza size routes.
type SizeHandler struct {
	sizeService service.SizeService
}

// NewSizeHandler creates a new pizza size handler.
func NewSizeHandler(sizeService service.SizeService) *SizeHandler {
	return &SizeHandler{sizeService: sizeService}
}

// Create handles POST /api/sizes requests.
//
// @Summary      Create pizza size
// @Description  Adds a new pizza size to the catalog. Both the name and the centimeter value are unique.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePizzaSizeRequest true "Size to create"
// @Success      201 {object} dto.SuccessResponse{data=model.PizzaSize} "Created size"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - size already exists"
// @Router       /api/sizes [post]
func (h *SizeHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreatePizzaSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	size, err := h.sizeService.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("size", "create")

	builder.SuccessCreated(size)
}

// List handles GET /api/sizes requests.
//
// @Summary      List pizza sizes
// @Description  Returns every pizza size in the catalog.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.PizzaSize} "Sizes"
// @Router       /api/sizes [get]
func (h *SizeHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sizes, err := h.sizeService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(sizes)
}

// Get handles GET /api/sizes/:id requests.
//
// @Summary      Get pizza size
// @Description  Returns a single pizza size by ID.
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Size ID"
// @Success      200 {object} dto.SuccessResponse{data=model.PizzaSize} "Size"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/sizes/{id} [get]
func (h *SizeHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed size id", err)
		return
	}

	size, err := h.sizeService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(size)
}

// Update handles PATCH /api/sizes/:id requests.
//
// @Summary      Update pizza size
// @Description  Applies a partial update to a pizza size. Omitted fields are left untouched.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Size ID"
// @Param        request body dto.UpdatePizzaSizeRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      409 {object} dto.ErrorResponse "Conflict - name or centimeters already taken"
// @Router       /api/sizes/{id} [patch]
func (h *SizeHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed size id", err)
		return
	}

	var req dto.UpdatePizzaSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.sizeService.Update(c.Request.Context(), id, req); err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("size", "update")

	builder.SuccessOK(dto.AckResponse{Success: true})
}

// Delete handles DELETE /api/sizes/:id requests.
//
// @Summary      Delete pizza size
// @Description  Removes a pizza size from the catalog. Orders referencing it keep their dangling reference.
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Size ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.AckResponse} "Acknowledgment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Router       /api/sizes/{id} [delete]
func (h *SizeHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, "malformed size id", err)
		return
	}

	if err := h.sizeService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCatalogMutation("size", "delete")

	builder.SuccessOK(dto.AckResponse{Success: true})
}
