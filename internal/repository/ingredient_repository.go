// Package repository provides ingredient data access layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

// IngredientRepository implements IngredientRepositoryInterface using MongoDB.
type IngredientRepository struct {
	collection *mongo.Collection
}

// NewIngredientRepository creates a new ingredient repository.
func NewIngredientRepository(db *MongoDB) *IngredientRepository {
	return &IngredientRepository{
		collection: db.Ingredients,
	}
}

// Create inserts a new ingredient into the database.
func (r *IngredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	if ingredient.ID.IsZero() {
		ingredient.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, ingredient)
	return err
}

// FindAll returns all ingredients.
func (r *IngredientRepository) FindAll(ctx context.Context) ([]model.Ingredient, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var ingredients []model.Ingredient
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// FindByID finds an ingredient by ID.
func (r *IngredientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ingredient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindByName finds an ingredient by its unique name.
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&ingredient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindByIDs returns the ingredients matching the given IDs. Missing IDs are
// simply absent from the result; callers decide how to treat dangling
// references.
func (r *IngredientRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return []model.Ingredient{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var ingredients []model.Ingredient
	if err := cursor.All(ctx, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Update applies a partial update to an ingredient.
func (r *IngredientRepository) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// Delete removes an ingredient by ID.
func (r *IngredientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAll removes every ingredient.
func (r *IngredientRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
