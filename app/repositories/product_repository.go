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

// Sort keys accepted by ProductRepository.Find.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
)

// ProductQuery narrows a product listing. Zero values mean "no filter".
// Search is deliberately absent: text matching happens in the service layer,
// not in the store.
type ProductQuery struct {
	Category    string
	Subcategory string
	Sort        string
}

// ProductRepository handles the products collection.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) col() *mongo.Collection {
	return database.DB().Collection("products")
}

// Find returns products matching the query, sorted per the sort key
// (createdAt descending when unspecified).
func (r *ProductRepository) Find(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Subcategory != "" {
		filter["subcategory"] = q.Subcategory
	}

	var sort bson.D
	switch q.Sort {
	case SortPriceAsc:
		sort = bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		sort = bson.D{{Key: "price", Value: -1}}
	default: // SortNewest and unspecified
		sort = bson.D{{Key: "createdAt", Value: -1}}
	}

	cur, err := r.col().Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// FindByID looks up one product by its ObjectID.
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("products: find %s: %w", id.Hex(), err)
	}
	return p, nil
}

// Create persists a new product, assigning its ID and timestamps.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.col().InsertOne(ctx, p); err != nil {
		return fmt.Errorf("products: create: %w", err)
	}
	return nil
}

// Update replaces the stored document for p.ID.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("products: update %s: %w", p.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product document.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("products: delete %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
