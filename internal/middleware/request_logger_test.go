//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
	}{
		{
			name: "logs successful request",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.Status(http.StatusOK)
				})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "logs client error",
			path: "/bad",
			setupHandler: func(router *gin.Engine) {
				router.GET("/bad", func(c *gin.Context) {
					c.Status(http.StatusBadRequest)
				})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "logs server error",
			path: "/boom",
			setupHandler: func(router *gin.Engine) {
				router.GET("/boom", func(c *gin.Context) {
					c.Status(http.StatusInternalServerError)
				})
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			tt.setupHandler(router)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			// The middleware must not alter the response.
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
