package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/jobs"
	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/cache"
	"github.com/shashiranjanraj/homegrown/pkg/collection"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/media"
	"github.com/shashiranjanraj/homegrown/pkg/metrics"
	"github.com/shashiranjanraj/homegrown/pkg/queue"
)

// listCacheTTL keeps filtered product lists hot for a short window; every
// catalogue write flushes the whole prefix.
const listCacheTTL = 60 * time.Second

// ProductStore is the slice of the product repository the catalog needs.
type ProductStore interface {
	Find(ctx context.Context, q repositories.ProductQuery) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CatalogService is the product query and management service.
type CatalogService struct {
	products ProductStore
}

func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// ListParams narrows a catalogue listing.
type ListParams struct {
	Search      string
	Category    string
	Subcategory string
	Sort        string // price-asc | price-desc | newest (default)
}

// List returns products filtered by category/subcategory and sorted at the
// store, then narrowed by the case-insensitive text search in memory. The
// store result (pre-search) is cached briefly in Redis.
func (s *CatalogService) List(ctx context.Context, p ListParams) ([]models.Product, error) {
	key := fmt.Sprintf("products:%s:%s:%s", p.Category, p.Subcategory, p.Sort)

	var products []models.Product
	if cache.Get(key, &products) {
		metrics.CacheHits.WithLabelValues("redis").Inc()
	} else {
		metrics.CacheMisses.WithLabelValues("redis").Inc()

		var err error
		products, err = s.products.Find(ctx, repositories.ProductQuery{
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Sort:        p.Sort,
		})
		if err != nil {
			return nil, err
		}
		if err := cache.Set(key, products, listCacheTTL); err != nil {
			logger.WithCtx(ctx).Warn("catalog: cache set failed", "error", err)
		}
	}

	if p.Search == "" {
		return products, nil
	}
	return collection.Filter(products, func(prod models.Product) bool {
		return prod.MatchesSearch(p.Search)
	}), nil
}

// Get returns one product. A malformed id behaves like a missing one.
func (s *CatalogService) Get(ctx context.Context, idHex string) (models.Product, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return models.Product{}, ErrNotFound
	}
	p, err := s.products.FindByID(ctx, id)
	if err == repositories.ErrNotFound {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

// Categories returns the fixed category list.
func (s *CatalogService) Categories() []string {
	return models.Categories()
}

// ProductInput carries the writable product fields. Images are uploaded by
// the caller before the service sees them; on validation failure the
// already-uploaded assets are queued for deletion.
type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Subcategory string
	Gender      string
	Sizes       []models.SizeStock
	Stock       int
	Rating      float64
	Images      []media.Asset
}

func (in ProductInput) validate(requireImages bool) error {
	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalid)
	case in.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalid)
	case !models.ValidCategory(in.Category):
		return fmt.Errorf("%w: unknown category", ErrInvalid)
	case in.Rating < 0 || in.Rating > 5:
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalid)
	}

	if requireImages && (len(in.Images) < 1 || len(in.Images) > 4) {
		return fmt.Errorf("%w: between 1 and 4 images required", ErrInvalid)
	}
	if len(in.Images) > 4 {
		return fmt.Errorf("%w: between 1 and 4 images required", ErrInvalid)
	}

	if in.Category == models.CategoryClothing {
		if !models.ValidGender(in.Gender) {
			return fmt.Errorf("%w: gender is required for clothing", ErrInvalid)
		}
		if len(in.Sizes) == 0 {
			return fmt.Errorf("%w: at least one size is required for clothing", ErrInvalid)
		}
		for _, v := range in.Sizes {
			if v.Size == "" || v.Stock < 0 {
				return fmt.Errorf("%w: sizes need a label and a non-negative stock", ErrInvalid)
			}
		}
	} else if in.Stock < 0 {
		return fmt.Errorf("%w: stock must be non-negative", ErrInvalid)
	}

	return nil
}

// Create validates and persists a new product. Exactly one of sizes/stock is
// stored, determined by the category.
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	if err := in.validate(true); err != nil {
		s.cleanupAssets(in.Images)
		return models.Product{}, err
	}

	p := s.apply(models.Product{}, in)
	if err := s.products.Create(ctx, &p); err != nil {
		s.cleanupAssets(in.Images)
		return models.Product{}, err
	}

	s.invalidateListCache(ctx)
	return p, nil
}

// Update rewrites an existing product. When new images are supplied the old
// assets are queued for deletion on the media host.
func (s *CatalogService) Update(ctx context.Context, idHex string, in ProductInput) (models.Product, error) {
	existing, err := s.Get(ctx, idHex)
	if err != nil {
		s.cleanupAssets(in.Images)
		return models.Product{}, err
	}

	if err := in.validate(false); err != nil {
		s.cleanupAssets(in.Images)
		return models.Product{}, err
	}

	var replaced []media.Asset
	if len(in.Images) > 0 {
		replaced = existing.Images
	} else {
		in.Images = existing.Images
	}

	p := s.apply(existing, in)
	if err := s.products.Update(ctx, &p); err != nil {
		return models.Product{}, err
	}

	s.cleanupAssets(replaced)
	s.invalidateListCache(ctx)
	return p, nil
}

// Delete removes the product and queues its images for deletion.
func (s *CatalogService) Delete(ctx context.Context, idHex string) error {
	existing, err := s.Get(ctx, idHex)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, existing.ID); err != nil {
		if err == repositories.ErrNotFound {
			return ErrNotFound
		}
		return err
	}

	s.cleanupAssets(existing.Images)
	s.invalidateListCache(ctx)
	return nil
}

// apply copies input fields onto base, enforcing the sizes-xor-stock rule.
func (s *CatalogService) apply(base models.Product, in ProductInput) models.Product {
	base.Title = in.Title
	base.Description = in.Description
	base.Price = in.Price
	base.Category = in.Category
	base.Subcategory = in.Subcategory
	base.Rating = in.Rating
	base.Images = in.Images

	if in.Category == models.CategoryClothing {
		base.Gender = in.Gender
		base.Sizes = in.Sizes
		base.Stock = 0
	} else {
		base.Gender = ""
		base.Sizes = nil
		base.Stock = in.Stock
	}
	return base
}

func (s *CatalogService) cleanupAssets(assets []media.Asset) {
	keys := make([]string, 0, len(assets))
	for _, a := range assets {
		if a.Key != "" {
			keys = append(keys, a.Key)
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := queue.Dispatch(&jobs.DeleteMediaJob{Keys: keys}); err != nil {
		logger.Error("catalog: media cleanup dispatch failed", "error", err)
	}
}

func (s *CatalogService) invalidateListCache(ctx context.Context) {
	if err := cache.DelPrefix("products:"); err != nil {
		logger.WithCtx(ctx).Warn("catalog: cache invalidation failed", "error", err)
	}
}
