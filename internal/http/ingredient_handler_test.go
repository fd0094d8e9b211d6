package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/mocks"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// duplicateKeyErr mimics the error the driver returns when a unique index
// is violated.
func duplicateKeyErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

// ingredientBody returns a complete, valid create request body.
func ingredientBody(name string, spicyLevel int) map[string]interface{} {
	return map[string]interface{}{
		"name":          name,
		"isGlutenFree":  true,
		"isNutFree":     true,
		"isLactoseFree": false,
		"isFishFree":    true,
		"isVegetarian":  true,
		"isVegan":       false,
		"spicyLevel":    spicyLevel,
		"extraPrice":    1.5,
	}
}

func TestIngredientHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockIngredientRepositoryInterface)
		expectedStatus int
	}{
		{
			name:        "successful create",
			requestBody: ingredientBody("basil", 0),
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing required fields",
			requestBody: map[string]interface{}{
				"name": "basil",
			},
			setupMocks:     func(mockRepo *mocks.MockIngredientRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "spicy level out of range",
			requestBody:    ingredientBody("lava", 6),
			setupMocks:     func(mockRepo *mocks.MockIngredientRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate name",
			requestBody: ingredientBody("basil", 0),
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(duplicateKeyErr())
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "repository error",
			requestBody: ingredientBody("basil", 0),
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockRepo := new(mocks.MockIngredientRepositoryInterface)

			tt.setupMocks(mockRepo)

			handler := NewIngredientHandler(service.NewIngredientService(mockRepo))
			router.POST("/ingredients", handler.Create)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/ingredients", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIngredientHandler_Get(t *testing.T) {
	id := primitive.NewObjectID()
	basil := model.Ingredient{ID: id, Name: "basil", SpicyLevel: 0, ExtraPrice: 1}

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockIngredientRepositoryInterface)
		expectedStatus int
	}{
		{
			name: "returns ingredient",
			path: "/ingredients/" + id.Hex(),
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, id).Return(&basil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed id",
			path:           "/ingredients/not-an-id",
			setupMocks:     func(mockRepo *mocks.MockIngredientRepositoryInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing ingredient",
			path: "/ingredients/" + id.Hex(),
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockRepo := new(mocks.MockIngredientRepositoryInterface)

			tt.setupMocks(mockRepo)

			handler := NewIngredientHandler(service.NewIngredientService(mockRepo))
			router.GET("/ingredients/:id", handler.Get)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIngredientHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mockRepo := new(mocks.MockIngredientRepositoryInterface)
	mockRepo.On("FindAll", mock.Anything).Return([]model.Ingredient{
		{ID: primitive.NewObjectID(), Name: "basil"},
		{ID: primitive.NewObjectID(), Name: "ham"},
	}, nil)

	handler := NewIngredientHandler(service.NewIngredientService(mockRepo))
	router.GET("/ingredients", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/ingredients", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Ingredient `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	mockRepo.AssertExpectations(t)
}

func TestIngredientHandler_Update(t *testing.T) {
	id := primitive.NewObjectID()
	basil := model.Ingredient{ID: id, Name: "basil"}

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockIngredientRepositoryInterface)
		expectedStatus int
	}{
		{
			name:        "successful partial update",
			requestBody: map[string]interface{}{"extraPrice": 2.5},
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, id).Return(&basil, nil)
				mockRepo.On("Update", mock.Anything, id, map[string]interface{}{"extra_price": 2.5}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "spicy level out of range",
			requestBody: map[string]interface{}{"spicyLevel": 7},
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, id).Return(&basil, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "missing ingredient",
			requestBody: map[string]interface{}{"name": "sweet basil"},
			setupMocks: func(mockRepo *mocks.MockIngredientRepositoryInterface) {
				mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockRepo := new(mocks.MockIngredientRepositoryInterface)

			tt.setupMocks(mockRepo)

			handler := NewIngredientHandler(service.NewIngredientService(mockRepo))
			router.PATCH("/ingredients/:id", handler.Update)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPatch, "/ingredients/"+id.Hex(), bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIngredientHandler_Delete(t *testing.T) {
	id := primitive.NewObjectID()
	basil := model.Ingredient{ID: id, Name: "basil"}

	t.Run("deletes ingredient", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		mockRepo := new(mocks.MockIngredientRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, id).Return(&basil, nil)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		handler := NewIngredientHandler(service.NewIngredientService(mockRepo))
		router.DELETE("/ingredients/:id", handler.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/ingredients/"+id.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing ingredient", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		mockRepo := new(mocks.MockIngredientRepositoryInterface)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		handler := NewIngredientHandler(service.NewIngredientService(mockRepo))
		router.DELETE("/ingredients/:id", handler.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/ingredients/"+id.Hex(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, id)
	})
}
