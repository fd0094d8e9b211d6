// Package repository provides order data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ovenline/pizzeria-service/internal/domain/model"
)

// OrderRepository implements OrderRepositoryInterface using MongoDB.
// Documents keep catalog references, not copies; the order service hydrates
// them at read time.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{
		collection: db.Orders,
	}
}

// Create inserts a new order document into the database.
func (r *OrderRepository) Create(ctx context.Context, doc *model.OrderDocument) error {
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindAll returns all order documents, oldest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]model.OrderDocument, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []model.OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID finds an order document by ID.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrderDocument, error) {
	var doc model.OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update applies a partial update to an order document. Last write wins;
// there is no version check.
func (r *OrderRepository) Update(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) error {
	set["updated_at"] = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// Delete removes an order by ID.
func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAll removes every order.
func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
