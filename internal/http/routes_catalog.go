package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/middleware"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// CatalogRoutes handles catalog route registration: ingredients, pizzas, and
// pizza sizes. Reads are public; mutations require the admin role.
type CatalogRoutes struct {
	ingredientHandler *IngredientHandler
	pizzaHandler      *PizzaHandler
	sizeHandler       *SizeHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(
	ingredientService service.IngredientService,
	pizzaService service.PizzaService,
	sizeService service.SizeService,
) *CatalogRoutes {
	return &CatalogRoutes{
		ingredientHandler: NewIngredientHandler(ingredientService),
		pizzaHandler:      NewPizzaHandler(pizzaService),
		sizeHandler:       NewSizeHandler(sizeService),
	}
}

// RegisterPublicRoutes registers the catalog read routes.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/ingredients", r.ingredientHandler.List)
	rg.GET("/ingredients/:id", r.ingredientHandler.Get)

	rg.GET("/pizzas", r.pizzaHandler.List)
	rg.GET("/pizzas/:id", r.pizzaHandler.Get)

	rg.GET("/sizes", r.sizeHandler.List)
	rg.GET("/sizes/:id", r.sizeHandler.Get)
}

// RegisterProtectedRoutes registers the catalog mutation routes on an
// already-authenticated group.
func (r *CatalogRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("")
	admin.Use(middleware.RequireRoles(model.RoleAdmin))

	admin.POST("/ingredients", r.ingredientHandler.Create)
	admin.PATCH("/ingredients/:id", r.ingredientHandler.Update)
	admin.DELETE("/ingredients/:id", r.ingredientHandler.Delete)

	admin.POST("/pizzas", r.pizzaHandler.Create)
	admin.PATCH("/pizzas/:id", r.pizzaHandler.Update)
	admin.DELETE("/pizzas/:id", r.pizzaHandler.Delete)

	admin.POST("/sizes", r.sizeHandler.Create)
	admin.PATCH("/sizes/:id", r.sizeHandler.Update)
	admin.DELETE("/sizes/:id", r.sizeHandler.Delete)
}
