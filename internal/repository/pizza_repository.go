// Package repository provides pizza data access layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

// PizzaRepository implements PizzaRepositoryInterface using MongoDB.
// Reads hydrate the stored ingredient references so callers always see
// current catalog names and prices.
type PizzaRepository struct {
	collection  *mongo.Collection
	ingredients IngredientRepositoryInterface
}

// NewPizzaRepository creates a new pizza repository.
func NewPizzaRepository(db *MongoDB, ingredients IngredientRepositoryInterface) *PizzaRepository {
	return &PizzaRepository{
		collection:  db.Pizzas,
		ingredients: ingredients,
	}
}

// Create inserts a new pizza document into the database.
func (r *PizzaRepository) Create(ctx context.Context, doc *model.PizzaDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindAll returns all pizzas with their ingredients hydrated.
func (r *PizzaRepository) FindAll(ctx context.Context) ([]model.Pizza, error) {
	return r.find(ctx, bson.M{})
}

// FindByID finds a pizza by ID.
func (r *PizzaRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pizza, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByName finds a pizza by its unique name.
func (r *PizzaRepository) FindByName(ctx context.Context, name string) (*model.Pizza, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

// FindByIngredientIDs returns pizzas whose composition contains every given
// ingredient. An empty ID list matches nothing.
func (r *PizzaRepository) FindByIngredientIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Pizza, error) {
	if len(ids) == 0 {
		return []model.Pizza{}, nil
	}
	return r.find(ctx, bson.M{"ingredients": bson.M{"$all": ids}})
}

// Update applies a partial update to a pizza document.
func (r *PizzaRepository) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// Delete removes a pizza by ID.
func (r *PizzaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAll removes every pizza.
func (r *PizzaRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

func (r *PizzaRepository) findOne(ctx context.Context, filter bson.M) (*model.Pizza, error) {
	var doc model.PizzaDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pizza, err := r.hydrate(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *PizzaRepository) find(ctx context.Context, filter bson.M) ([]model.Pizza, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []model.PizzaDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	pizzas := make([]model.Pizza, 0, len(docs))
	for _, doc := range docs {
		pizza, err := r.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, pizza)
	}
	return pizzas, nil
}

// hydrate resolves the stored ingredient references. The stored order of
// references is preserved; a reference whose ingredient was deleted from the
// catalog is dropped from the composition.
func (r *PizzaRepository) hydrate(ctx context.Context, doc model.PizzaDocument) (model.Pizza, error) {
	found, err := r.ingredients.FindByIDs(ctx, doc.IngredientIDs)
	if err != nil {
		return model.Pizza{}, err
	}

	byID := make(map[primitive.ObjectID]model.Ingredient, len(found))
	for _, ing := range found {
		byID[ing.ID] = ing
	}

	ingredients := make([]model.Ingredient, 0, len(doc.IngredientIDs))
	for _, id := range doc.IngredientIDs {
		if ing, ok := byID[id]; ok {
			ingredients = append(ingredients, ing)
		}
	}

	return model.Pizza{
		ID:          doc.ID,
		Name:        doc.Name,
		Ingredients: ingredients,
		BasicPrice:  doc.BasicPrice,
	}, nil
}
