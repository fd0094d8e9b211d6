// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

type MockOrderRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrderRepositoryInterface) Create(ctx context.Context, doc *model.OrderDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockOrderRepositoryInterface) FindAll(ctx context.Context) ([]model.OrderDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderDocument), args.Error(1)
}

func (m *MockOrderRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrderDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderDocument), args.Error(1)
}

func (m *MockOrderRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *MockOrderRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepositoryInterface) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
