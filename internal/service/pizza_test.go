package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/dto"
	"github.com/ovenline/pizzeria-service/internal/domain/model"
	"github.com/ovenline/pizzeria-service/internal/mocks"
	"github.com/ovenline/pizzeria-service/internal/service"
)

func TestPizzaService_Create(t *testing.T) {
	tomato := model.Ingredient{ID: primitive.NewObjectID(), Name: "tomato"}
	mozzarella := model.Ingredient{ID: primitive.NewObjectID(), Name: "mozzarella"}

	tests := []struct {
		name            string
		pizzaName       string
		basicPrice      float64
		ingredients     []string
		setupIngredient func(*mocks.MockIngredientRepositoryInterface)
		setupPizza      func(*mocks.MockPizzaRepositoryInterface)
		expectedError   error
	}{
		{
			name:        "creates pizza with resolved composition",
			pizzaName:   "margarita",
			basicPrice:  12,
			ingredients: []string{"tomato", "mozzarella"},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "tomato").Return(&tomato, nil)
				m.On("FindByName", mock.Anything, "mozzarella").Return(&mozzarella, nil)
			},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *model.PizzaDocument) bool {
					return doc.Name == "margarita" && doc.BasicPrice == 12 &&
						len(doc.IngredientIDs) == 2 &&
						doc.IngredientIDs[0] == tomato.ID && doc.IngredientIDs[1] == mozzarella.ID
				})).Return(nil)
			},
		},
		{
			name:            "rejects pizza without ingredients",
			pizzaName:       "plain",
			basicPrice:      5,
			ingredients:     []string{},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {},
			setupPizza:      func(m *mocks.MockPizzaRepositoryInterface) {},
			expectedError:   service.ErrTastelessPizza,
		},
		{
			name:        "unknown ingredient aborts the create",
			pizzaName:   "mystery",
			basicPrice:  10,
			ingredients: []string{"tomato", "unobtainium"},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "tomato").Return(&tomato, nil)
				m.On("FindByName", mock.Anything, "unobtainium").Return(nil, nil)
			},
			setupPizza:    func(m *mocks.MockPizzaRepositoryInterface) {},
			expectedError: &service.UnknownIngredientError{Name: "unobtainium"},
		},
		{
			name:        "duplicate name maps to conflict",
			pizzaName:   "margarita",
			basicPrice:  12,
			ingredients: []string{"tomato"},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "tomato").Return(&tomato, nil)
			},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(duplicateKeyErr())
			},
			expectedError: service.ErrPizzaExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIngredientRepo := new(mocks.MockIngredientRepositoryInterface)
			mockPizzaRepo := new(mocks.MockPizzaRepositoryInterface)
			tt.setupIngredient(mockIngredientRepo)
			tt.setupPizza(mockPizzaRepo)

			svc := service.NewPizzaService(mockPizzaRepo, service.NewIngredientResolver(mockIngredientRepo))
			created, err := svc.Create(context.Background(), tt.pizzaName, tt.basicPrice, tt.ingredients)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
				mockPizzaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, tt.pizzaName, created.Name)
				assert.Equal(t, tt.basicPrice, created.BasicPrice)
				assert.Len(t, created.Ingredients, len(tt.ingredients))
			}

			mockIngredientRepo.AssertExpectations(t)
			mockPizzaRepo.AssertExpectations(t)
		})
	}
}

func TestPizzaService_FindByIngredients(t *testing.T) {
	tomato := model.Ingredient{ID: primitive.NewObjectID(), Name: "tomato"}
	ham := model.Ingredient{ID: primitive.NewObjectID(), Name: "ham"}
	hawaii := model.Pizza{ID: primitive.NewObjectID(), Name: "hawaii", Ingredients: []model.Ingredient{tomato, ham}, BasicPrice: 14}

	tests := []struct {
		name            string
		filter          []string
		setupIngredient func(*mocks.MockIngredientRepositoryInterface)
		setupPizza      func(*mocks.MockPizzaRepositoryInterface)
		expected        []model.Pizza
	}{
		{
			name:   "matches pizzas containing every filter ingredient",
			filter: []string{"tomato", "ham"},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "tomato").Return(&tomato, nil)
				m.On("FindByName", mock.Anything, "ham").Return(&ham, nil)
			},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("FindByIngredientIDs", mock.Anything, []primitive.ObjectID{tomato.ID, ham.ID}).
					Return([]model.Pizza{hawaii}, nil)
			},
			expected: []model.Pizza{hawaii},
		},
		{
			name:   "unknown names are dropped from the filter",
			filter: []string{"tomato", "unobtainium"},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "tomato").Return(&tomato, nil)
				m.On("FindByName", mock.Anything, "unobtainium").Return(nil, nil)
			},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("FindByIngredientIDs", mock.Anything, []primitive.ObjectID{tomato.ID}).
					Return([]model.Pizza{hawaii}, nil)
			},
			expected: []model.Pizza{hawaii},
		},
		{
			name:   "entirely unknown filter matches nothing",
			filter: []string{"unobtainium"},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "unobtainium").Return(nil, nil)
			},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {},
			expected:   []model.Pizza{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIngredientRepo := new(mocks.MockIngredientRepositoryInterface)
			mockPizzaRepo := new(mocks.MockPizzaRepositoryInterface)
			tt.setupIngredient(mockIngredientRepo)
			tt.setupPizza(mockPizzaRepo)

			svc := service.NewPizzaService(mockPizzaRepo, service.NewIngredientResolver(mockIngredientRepo))
			pizzas, err := svc.FindByIngredients(context.Background(), tt.filter)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, pizzas)

			mockIngredientRepo.AssertExpectations(t)
			mockPizzaRepo.AssertExpectations(t)
		})
	}
}

func TestPizzaService_Update(t *testing.T) {
	id := primitive.NewObjectID()
	tomato := model.Ingredient{ID: primitive.NewObjectID(), Name: "tomato"}
	existing := model.Pizza{ID: id, Name: "margarita", Ingredients: []model.Ingredient{tomato}, BasicPrice: 12}

	newName := "margherita"
	newPrice := 13.5
	emptyList := []string{}
	newList := []string{"tomato"}

	tests := []struct {
		name            string
		req             dto.UpdatePizzaRequest
		setupIngredient func(*mocks.MockIngredientRepositoryInterface)
		setupPizza      func(*mocks.MockPizzaRepositoryInterface)
		expectedError   error
	}{
		{
			name:            "updates name and price",
			req:             dto.UpdatePizzaRequest{Name: &newName, BasicPrice: &newPrice},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("FindByID", mock.Anything, id).Return(&existing, nil)
				m.On("Update", mock.Anything, id, map[string]interface{}{
					"name":        newName,
					"basic_price": newPrice,
				}).Return(nil)
			},
		},
		{
			name: "replaces composition wholesale",
			req:  dto.UpdatePizzaRequest{Ingredients: &newList},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {
				m.On("FindByName", mock.Anything, "tomato").Return(&tomato, nil)
			},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("FindByID", mock.Anything, id).Return(&existing, nil)
				m.On("Update", mock.Anything, id, map[string]interface{}{
					"ingredients": []primitive.ObjectID{tomato.ID},
				}).Return(nil)
			},
		},
		{
			name:            "rejects empty composition",
			req:             dto.UpdatePizzaRequest{Ingredients: &emptyList},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("FindByID", mock.Anything, id).Return(&existing, nil)
			},
			expectedError: service.ErrTastelessPizza,
		},
		{
			name:            "missing pizza maps to not found",
			req:             dto.UpdatePizzaRequest{Name: &newName},
			setupIngredient: func(m *mocks.MockIngredientRepositoryInterface) {},
			setupPizza: func(m *mocks.MockPizzaRepositoryInterface) {
				m.On("FindByID", mock.Anything, id).Return(nil, nil)
			},
			expectedError: service.ErrPizzaNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIngredientRepo := new(mocks.MockIngredientRepositoryInterface)
			mockPizzaRepo := new(mocks.MockPizzaRepositoryInterface)
			tt.setupIngredient(mockIngredientRepo)
			tt.setupPizza(mockPizzaRepo)

			svc := service.NewPizzaService(mockPizzaRepo, service.NewIngredientResolver(mockIngredientRepo))
			err := svc.Update(context.Background(), id, tt.req)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}

			mockIngredientRepo.AssertExpectations(t)
			mockPizzaRepo.AssertExpectations(t)
		})
	}
}

func TestPizzaService_Delete(t *testing.T) {
	id := primitive.NewObjectID()
	existing := model.Pizza{ID: id, Name: "margarita"}

	t.Run("deletes existing pizza", func(t *testing.T) {
		mockPizzaRepo := new(mocks.MockPizzaRepositoryInterface)
		mockPizzaRepo.On("FindByID", mock.Anything, id).Return(&existing, nil)
		mockPizzaRepo.On("Delete", mock.Anything, id).Return(nil)

		svc := service.NewPizzaService(mockPizzaRepo, service.NewIngredientResolver(new(mocks.MockIngredientRepositoryInterface)))
		err := svc.Delete(context.Background(), id)

		assert.NoError(t, err)
		mockPizzaRepo.AssertExpectations(t)
	})

	t.Run("missing pizza maps to not found", func(t *testing.T) {
		mockPizzaRepo := new(mocks.MockPizzaRepositoryInterface)
		mockPizzaRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		svc := service.NewPizzaService(mockPizzaRepo, service.NewIngredientResolver(new(mocks.MockIngredientRepositoryInterface)))
		err := svc.Delete(context.Background(), id)

		assert.ErrorIs(t, err, service.ErrPizzaNotFound)
		mockPizzaRepo.AssertNotCalled(t, "Delete", mock.Anything, id)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockPizzaRepo := new(mocks.MockPizzaRepositoryInterface)
		mockPizzaRepo.On("FindByID", mock.Anything, id).Return(nil, errors.New("connection lost"))

		svc := service.NewPizzaService(mockPizzaRepo, service.NewIngredientResolver(new(mocks.MockIngredientRepositoryInterface)))
		err := svc.Delete(context.Background(), id)

		assert.EqualError(t, err, "connection lost")
	})
}
