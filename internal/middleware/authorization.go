// Package middleware provides role based authorization middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
)

// RequireRoles returns a middleware that checks if the authenticated user
// holds at least one of the given roles. It must be used after JWTAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		claimsInterface, exists := c.Get("user_claims")
		if !exists {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, "authentication required").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims, ok := claimsInterface.(*dto.Claims)
		if !ok {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, "authentication required").
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		errorResp := dto.NewError(dto.ErrCodeForbidden, "insufficient permissions").
			WithRequestID(requestID)
		c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
	}
}
