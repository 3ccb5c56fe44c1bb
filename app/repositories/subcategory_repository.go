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

// SubcategoryRepository handles the subcategories collection.
type SubcategoryRepository struct{}

func NewSubcategoryRepository() *SubcategoryRepository {
	return &SubcategoryRepository{}
}

func (r *SubcategoryRepository) col() *mongo.Collection {
	return database.DB().Collection("subcategories")
}

// All lists subcategories, optionally restricted to one category, ordered
// by name.
func (r *SubcategoryRepository) All(ctx context.Context, category string) ([]models.Subcategory, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.col().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("subcategories: find: %w", err)
	}
	defer cur.Close(ctx)

	subs := []models.Subcategory{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("subcategories: decode: %w", err)
	}
	return subs, nil
}

// FindByID looks up one subcategory.
func (r *SubcategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error) {
	var s models.Subcategory
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Subcategory{}, ErrNotFound
	}
	if err != nil {
		return models.Subcategory{}, fmt.Errorf("subcategories: find %s: %w", id.Hex(), err)
	}
	return s, nil
}

// Create persists a new subcategory, assigning its ID and timestamps.
func (r *SubcategoryRepository) Create(ctx context.Context, s *models.Subcategory) error {
	now := time.Now()
	s.ID = primitive.NewObjectID()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.col().InsertOne(ctx, s); err != nil {
		return fmt.Errorf("subcategories: create: %w", err)
	}
	return nil
}

// Update replaces the stored document for s.ID.
func (r *SubcategoryRepository) Update(ctx context.Context, s *models.Subcategory) error {
	s.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return fmt.Errorf("subcategories: update %s: %w", s.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the subcategory document.
func (r *SubcategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("subcategories: delete %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
