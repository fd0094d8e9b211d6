// Package repository provides pizza size data access layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

// SizeRepository implements SizeRepositoryInterface using MongoDB.
type SizeRepository struct {
	collection *mongo.Collection
}

// NewSizeRepository creates a new pizza size repository.
func NewSizeRepository(db *MongoDB) *SizeRepository {
	return &SizeRepository{
		collection: db.Sizes,
	}
}

// Create inserts a new pizza size into the database.
func (r *SizeRepository) Create(ctx context.Context, size *model.PizzaSize) error {
	if size.ID.IsZero() {
		size.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, size)
	return err
}

// FindAll returns all pizza sizes.
func (r *SizeRepository) FindAll(ctx context.Context) ([]model.PizzaSize, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var sizes []model.PizzaSize
	if err := cursor.All(ctx, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// FindByID finds a pizza size by ID.
func (r *SizeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PizzaSize, error) {
	var size model.PizzaSize
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&size)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &size, nil
}

// FindByName finds a pizza size by its unique name.
func (r *SizeRepository) FindByName(ctx context.Context, name string) (*model.PizzaSize, error) {
	var size model.PizzaSize
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&size)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &size, nil
}

// Update applies a partial update to a pizza size.
func (r *SizeRepository) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// Delete removes a pizza size by ID.
func (r *SizeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAll removes every pizza size.
func (r *SizeRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
