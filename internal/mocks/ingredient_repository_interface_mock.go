// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

type MockIngredientRepositoryInterface struct {
	mock.Mock
}

func (m *MockIngredientRepositoryInterface) Create(ctx context.Context, ingredient *model.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepositoryInterface) FindAll(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepositoryInterface) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepositoryInterface) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *MockIngredientRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIngredientRepositoryInterface) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
