package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/middleware"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// OrderRoutes handles order route registration. Placing an order is public;
// reading and managing orders requires the admin role.
type OrderRoutes struct {
	handler *OrderHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(orderService service.OrderService) *OrderRoutes {
	return &OrderRoutes{
		handler: NewOrderHandler(orderService),
	}
}

// RegisterPublicRoutes registers the public order placement route.
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", r.handler.Create)
}

// RegisterProtectedRoutes registers the order management routes on an
// already-authenticated group.
func (r *OrderRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("")
	admin.Use(middleware.RequireRoles(model.RoleAdmin))

	admin.GET("/orders", r.handler.List)
	admin.GET("/orders/:id", r.handler.Get)
	admin.PATCH("/orders/:id", r.handler.Update)
	admin.DELETE("/orders/:id", r.handler.Delete)
	admin.DELETE("/orders", r.handler.DeleteAll)
}
