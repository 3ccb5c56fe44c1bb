package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/pkg/database"
)

// OrderRepository handles the orders collection. Every read is scoped by the
// owning user id, so a foreign order id behaves exactly like a missing one.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) col() *mongo.Collection {
	return database.DB().Collection("orders")
}

// Create persists a new order, assigning its ID and timestamps.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	now := time.Now()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.col().InsertOne(ctx, o); err != nil {
		return fmt.Errorf("orders: create: %w", err)
	}
	return nil
}

// FindByUser lists the user's orders, newest first.
func (r *OrderRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cur, err := r.col().Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("orders: find by user: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return orders, nil
}

// FindByIDForUser returns one order only if it belongs to the given user.
func (r *OrderRepository) FindByIDForUser(ctx context.Context, id, userID primitive.ObjectID) (models.Order, error) {
	var o models.Order
	err := r.col().FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: find %s: %w", id.Hex(), err)
	}
	return o, nil
}
