// Package database owns the MongoDB connection used by all repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/homegrown/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the MongoDB connection, verifies it with a ping and ensures
// the indexes the query paths rely on. Returns an error instead of calling
// log.Fatal so the caller can shut down gracefully.
func Connect(ctx context.Context) error {
	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	var err error
	client, err = mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	db = client.Database(config.MongoDatabase())
	ensureIndexes(ctx)
	return nil
}

// DB returns the application database handle. Connect must have been called.
func DB() *mongo.Database {
	return db
}

// Disconnect closes the connection. Safe to call when Connect never ran.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// ensureIndexes creates the indexes backing the hot query paths. Index
// creation is idempotent; errors are ignored so a read-only deployment can
// still boot.
func ensureIndexes(ctx context.Context) {
	products := db.Collection("products")
	_, _ = products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "subcategory", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	users := db.Collection("users")
	_, _ = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	orders := db.Collection("orders")
	_, _ = orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})

	subcategories := db.Collection("subcategories")
	_, _ = subcategories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}
