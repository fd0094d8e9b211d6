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

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/mocks"
	"github.com/ovenline/pizzeria-service/internal/service"
)

// orderHandlerFixture wires an order handler with a real order service over
// mocked repositories seeded with a one-pizza catalog.
type orderHandlerFixture struct {
	orderRepo      *mocks.MockOrderRepositoryInterface
	pizzaRepo      *mocks.MockPizzaRepositoryInterface
	sizeRepo       *mocks.MockSizeRepositoryInterface
	ingredientRepo *mocks.MockIngredientRepositoryInterface
	router         *gin.Engine

	ham       model.Ingredient
	margarita model.Pizza
	medium    model.PizzaSize
}

func newOrderHandlerFixture() *orderHandlerFixture {
	gin.SetMode(gin.TestMode)
	f := &orderHandlerFixture{
		orderRepo:      new(mocks.MockOrderRepositoryInterface),
		pizzaRepo:      new(mocks.MockPizzaRepositoryInterface),
		sizeRepo:       new(mocks.MockSizeRepositoryInterface),
		ingredientRepo: new(mocks.MockIngredientRepositoryInterface),
	}
	f.ham = model.Ingredient{ID: primitive.NewObjectID(), Name: "ham", ExtraPrice: 1}
	f.margarita = model.Pizza{ID: primitive.NewObjectID(), Name: "margarita", BasicPrice: 12}
	f.medium = model.PizzaSize{ID: primitive.NewObjectID(), Name: "medium", Centimeters: 30, PriceIncPct: 15}

	f.ingredientRepo.On("FindByName", mock.Anything, "ham").Return(&f.ham, nil).Maybe()
	f.ingredientRepo.On("FindByName", mock.Anything, "unobtainium").Return(nil, nil).Maybe()
	f.pizzaRepo.On("FindByName", mock.Anything, "margarita").Return(&f.margarita, nil).Maybe()
	f.pizzaRepo.On("FindByName", mock.Anything, "calzone").Return(nil, nil).Maybe()
	f.sizeRepo.On("FindByName", mock.Anything, "medium").Return(&f.medium, nil).Maybe()

	svc := service.NewOrderService(
		f.orderRepo, f.pizzaRepo, f.sizeRepo, f.ingredientRepo,
		service.NewIngredientResolver(f.ingredientRepo),
	)
	handler := NewOrderHandler(svc)

	f.router = gin.New()
	f.router.POST("/orders", handler.Create)
	f.router.GET("/orders", handler.List)
	f.router.GET("/orders/:id", handler.Get)
	f.router.PATCH("/orders/:id", handler.Update)
	f.router.DELETE("/orders/:id", handler.Delete)
	f.router.DELETE("/orders", handler.DeleteAll)
	return f
}

// orderBody returns a valid create request with the given lines.
func orderBody(lines ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"customer": map[string]interface{}{
			"name":    "Jane Doe",
			"email":   "jane@example.com",
			"phone":   "+3670123456",
			"address": "1 Main St",
			"bankCard": map[string]interface{}{
				"cardNumber": "4433322221111000",
				"expireDate": 1226,
				"secret":     "123",
			},
		},
		"pizzaOrders": lines,
	}
}

func TestOrderHandler_Create(t *testing.T) {
	t.Run("places an order and returns the priced result", func(t *testing.T) {
		f := newOrderHandlerFixture()
		f.orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		body, _ := json.Marshal(orderBody(map[string]interface{}{
			"pizza":            "margarita",
			"extraIngredients": []string{"ham"},
			"size":             "medium",
		}))
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Data dto.OrderResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		// (1 + 12) * 1.15
		assert.InDelta(t, 14.95, resp.Data.Price, 1e-9)
		assert.Equal(t, 0.0, resp.Data.Discount)
		assert.Equal(t, model.OrderStateReceived, resp.Data.State)
		assert.Equal(t, "margarita", resp.Data.PizzaOrders[0].Pizza)
		assert.Equal(t, []string{"ham"}, resp.Data.PizzaOrders[0].ExtraIngredients)
		f.orderRepo.AssertExpectations(t)
	})

	t.Run("unknown pizza rejects the whole order", func(t *testing.T) {
		f := newOrderHandlerFixture()

		body, _ := json.Marshal(orderBody(
			map[string]interface{}{"pizza": "margarita", "extraIngredients": []string{}, "size": "medium"},
			map[string]interface{}{"pizza": "calzone", "extraIngredients": []string{}, "size": "medium"},
		))
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeUnprocessable, resp.Error)
		assert.Equal(t, "unknown pizza 'calzone': not in the catalog", resp.Message)
		f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing customer is a bad request", func(t *testing.T) {
		f := newOrderHandlerFixture()

		body := []byte(`{"pizzaOrders": []}`)
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Get(t *testing.T) {
	t.Run("returns the order with resolved names", func(t *testing.T) {
		f := newOrderHandlerFixture()
		orderID := primitive.NewObjectID()
		stored := model.OrderDocument{
			ID: orderID,
			Lines: []model.OrderLineDocument{
				{
					PizzaID:            f.margarita.ID,
					ExtraIngredientIDs: []primitive.ObjectID{f.ham.ID},
					SizeID:             f.medium.ID,
					Price:              14.95,
				},
			},
			Price: 14.95,
			State: model.OrderStateInProgress,
		}
		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(&stored, nil)
		f.pizzaRepo.On("FindByID", mock.Anything, f.margarita.ID).Return(&f.margarita, nil)
		f.sizeRepo.On("FindByID", mock.Anything, f.medium.ID).Return(&f.medium, nil)
		f.ingredientRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{f.ham.ID}).
			Return([]model.Ingredient{f.ham}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.Hex(), nil)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data dto.OrderResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, orderID.Hex(), resp.Data.ID)
		assert.Equal(t, "margarita", resp.Data.PizzaOrders[0].Pizza)
		assert.Equal(t, "medium", resp.Data.PizzaOrders[0].Size)
		assert.Equal(t, model.OrderStateInProgress, resp.Data.State)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderHandlerFixture()
		orderID := primitive.NewObjectID()
		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.Hex(), nil)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newOrderHandlerFixture()

		req := httptest.NewRequest(http.MethodGet, "/orders/not-an-id", nil)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Update(t *testing.T) {
	orderID := primitive.NewObjectID()

	t.Run("applies a state change", func(t *testing.T) {
		f := newOrderHandlerFixture()
		stored := model.OrderDocument{ID: orderID, State: model.OrderStateReceived}
		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(&stored, nil)
		f.orderRepo.On("Update", mock.Anything, orderID, map[string]interface{}{
			"state": model.OrderStateDelivered,
		}).Return(nil)

		body := []byte(`{"state": 2}`)
		req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		f.orderRepo.AssertExpectations(t)
	})

	t.Run("rejects an undeclared state", func(t *testing.T) {
		f := newOrderHandlerFixture()

		body := []byte(`{"state": 9}`)
		req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		f.orderRepo.AssertNotCalled(t, "Update", mock.Anything, orderID, mock.Anything)
	})

	t.Run("rejects a discount above 100", func(t *testing.T) {
		f := newOrderHandlerFixture()

		body := []byte(`{"discount": 150}`)
		req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderHandlerFixture()
		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, nil)

		body := []byte(`{"discount": 10}`)
		req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	orderID := primitive.NewObjectID()

	t.Run("deletes the order", func(t *testing.T) {
		f := newOrderHandlerFixture()
		stored := model.OrderDocument{ID: orderID}
		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(&stored, nil)
		f.orderRepo.On("Delete", mock.Anything, orderID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/orders/"+orderID.Hex(), nil)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		f.orderRepo.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderHandlerFixture()
		f.orderRepo.On("FindByID", mock.Anything, orderID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodDelete, "/orders/"+orderID.Hex(), nil)
		w := httptest.NewRecorder()

		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		f.orderRepo.AssertNotCalled(t, "Delete", mock.Anything, orderID)
	})
}

func TestOrderHandler_DeleteAll(t *testing.T) {
	f := newOrderHandlerFixture()
	f.orderRepo.On("DeleteAll", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orders", nil)
	w := httptest.NewRecorder()

	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	f.orderRepo.AssertExpectations(t)
}
