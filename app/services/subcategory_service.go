package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/jobs"
	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/media"
	"github.com/shashiranjanraj/homegrown/pkg/queue"
)

// SubcategoryStore is the slice of the subcategory repository the service needs.
type SubcategoryStore interface {
	All(ctx context.Context, category string) ([]models.Subcategory, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Subcategory, error)
	Create(ctx context.Context, s *models.Subcategory) error
	Update(ctx context.Context, s *models.Subcategory) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// SubcategoryService manages the named groups within each category.
type SubcategoryService struct {
	subs SubcategoryStore
}

func NewSubcategoryService(subs SubcategoryStore) *SubcategoryService {
	return &SubcategoryService{subs: subs}
}

// List returns subcategories, optionally restricted to one category.
func (s *SubcategoryService) List(ctx context.Context, category string) ([]models.Subcategory, error) {
	return s.subs.All(ctx, category)
}

// SubcategoryInput carries the writable subcategory fields. Image is
// uploaded by the caller; a zero Asset means "keep the existing image".
type SubcategoryInput struct {
	Name     string
	Category string
	Image    media.Asset
}

func (in SubcategoryInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !models.ValidCategory(in.Category) {
		return fmt.Errorf("%w: unknown category", ErrInvalid)
	}
	return nil
}

// Create persists a new subcategory with a slug derived from the name.
func (s *SubcategoryService) Create(ctx context.Context, in SubcategoryInput) (models.Subcategory, error) {
	if err := in.validate(); err != nil {
		s.cleanupAsset(in.Image)
		return models.Subcategory{}, err
	}
	if in.Image.URL == "" {
		return models.Subcategory{}, fmt.Errorf("%w: an image is required", ErrInvalid)
	}

	sub := models.Subcategory{
		Name:     in.Name,
		Category: in.Category,
		Slug:     models.Slugify(in.Name),
		Image:    in.Image,
	}
	if err := s.subs.Create(ctx, &sub); err != nil {
		s.cleanupAsset(in.Image)
		return models.Subcategory{}, err
	}
	return sub, nil
}

// Update rewrites a subcategory. The slug is regenerated on rename and a
// replaced image is queued for deletion on the media host.
func (s *SubcategoryService) Update(ctx context.Context, idHex string, in SubcategoryInput) (models.Subcategory, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		s.cleanupAsset(in.Image)
		return models.Subcategory{}, ErrNotFound
	}

	existing, err := s.subs.FindByID(ctx, id)
	if err == repositories.ErrNotFound {
		s.cleanupAsset(in.Image)
		return models.Subcategory{}, ErrNotFound
	}
	if err != nil {
		s.cleanupAsset(in.Image)
		return models.Subcategory{}, err
	}

	if err := in.validate(); err != nil {
		s.cleanupAsset(in.Image)
		return models.Subcategory{}, err
	}

	var replaced media.Asset
	if in.Image.URL != "" {
		replaced = existing.Image
		existing.Image = in.Image
	}
	existing.Name = in.Name
	existing.Category = in.Category
	existing.Slug = models.Slugify(in.Name)

	if err := s.subs.Update(ctx, &existing); err != nil {
		return models.Subcategory{}, err
	}

	s.cleanupAsset(replaced)
	return existing, nil
}

// Delete removes the subcategory and queues its image for deletion.
func (s *SubcategoryService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrNotFound
	}

	existing, err := s.subs.FindByID(ctx, id)
	if err == repositories.ErrNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := s.subs.Delete(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	s.cleanupAsset(existing.Image)
	return nil
}

func (s *SubcategoryService) cleanupAsset(a media.Asset) {
	if a.Key == "" {
		return
	}
	if err := queue.Dispatch(&jobs.DeleteMediaJob{Keys: []string{a.Key}}); err != nil {
		logger.Error("subcategories: media cleanup dispatch failed", "error", err)
	}
}
