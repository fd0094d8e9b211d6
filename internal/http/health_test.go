package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHealthHandler().Register(router)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupHandler   func() *HealthHandler
		expectedStatus int
		expectedState  string
	}{
		{
			name: "readiness check no checkers",
			setupHandler: func() *HealthHandler {
				return NewHealthHandler()
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "readiness check with healthy dependency",
			setupHandler: func() *HealthHandler {
				handler := NewHealthHandler()
				handler.AddChecker("mongodb", HealthCheckerFunc(func() error { return nil }))
				return handler
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
		},
		{
			name: "readiness check with failing dependency",
			setupHandler: func() *HealthHandler {
				handler := NewHealthHandler()
				handler.AddChecker("mongodb", HealthCheckerFunc(func() error {
					return errors.New("connection refused")
				}))
				return handler
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler := tt.setupHandler()
			handler.Register(router)

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedState, resp.Status)
			assert.NotEmpty(t, resp.Checks)
		})
	}
}
