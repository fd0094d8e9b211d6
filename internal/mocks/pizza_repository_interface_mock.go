// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

type MockPizzaRepositoryInterface struct {
	mock.Mock
}

func (m *MockPizzaRepositoryInterface) Create(ctx context.Context, doc *model.PizzaDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockPizzaRepositoryInterface) FindAll(ctx context.Context) ([]model.Pizza, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pizza), args.Error(1)
}

func (m *MockPizzaRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pizza, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pizza), args.Error(1)
}

func (m *MockPizzaRepositoryInterface) FindByName(ctx context.Context, name string) (*model.Pizza, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pizza), args.Error(1)
}

func (m *MockPizzaRepositoryInterface) FindByIngredientIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Pizza, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pizza), args.Error(1)
}

func (m *MockPizzaRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *MockPizzaRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPizzaRepositoryInterface) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
