// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

type MockSizeRepositoryInterface struct {
	mock.Mock
}

func (m *MockSizeRepositoryInterface) Create(ctx context.Context, size *model.PizzaSize) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockSizeRepositoryInterface) FindAll(ctx context.Context) ([]model.PizzaSize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PizzaSize), args.Error(1)
}

func (m *MockSizeRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PizzaSize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PizzaSize), args.Error(1)
}

func (m *MockSizeRepositoryInterface) FindByName(ctx context.Context, name string) (*model.PizzaSize, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PizzaSize), args.Error(1)
}

func (m *MockSizeRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *MockSizeRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSizeRepositoryInterface) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
