package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/pkg/database"
)

// UserRepository handles the users collection. Addresses are embedded in the
// user document, so every address write is a single-document update.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) col() *mongo.Collection {
	return database.DB().Collection("users")
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find by email: %w", err)
	}
	return u, nil
}

// FindByID looks up a user by ObjectID.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find %s: %w", id.Hex(), err)
	}
	return u, nil
}

// Create persists a new user record. The unique index on email surfaces
// duplicate signups as an error here.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Addresses == nil {
		u.Addresses = []models.Address{}
	}

	if _, err := r.col().InsertOne(ctx, u); err != nil {
		return fmt.Errorf("users: create: %w", err)
	}
	return nil
}

// Update replaces the stored document for u.ID, addresses included.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("users: update %s: %w", u.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
