// Package seeders loads demo catalogue data for local development.
package seeders

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/database"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/media"
)

// Run seeds subcategories and products. Collections that already hold data
// are left untouched so the command is safe to re-run.
func Run(ctx context.Context) error {
	if err := seedSubcategories(ctx); err != nil {
		return err
	}
	return seedProducts(ctx)
}

func seedSubcategories(ctx context.Context) error {
	n, err := database.DB().Collection("subcategories").CountDocuments(ctx, map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("seed: count subcategories: %w", err)
	}
	if n > 0 {
		logger.Info("seed: subcategories already present, skipping", "count", n)
		return nil
	}

	repo := repositories.NewSubcategoryRepository()
	for _, sub := range demoSubcategories() {
		sub.Slug = models.Slugify(sub.Name)
		if err := repo.Create(ctx, &sub); err != nil {
			return err
		}
	}
	logger.Info("seed: subcategories created", "count", len(demoSubcategories()))
	return nil
}

func seedProducts(ctx context.Context) error {
	n, err := database.DB().Collection("products").CountDocuments(ctx, map[string]interface{}{})
	if err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if n > 0 {
		logger.Info("seed: products already present, skipping", "count", n)
		return nil
	}

	repo := repositories.NewProductRepository()
	for _, p := range demoProducts() {
		if err := repo.Create(ctx, &p); err != nil {
			return err
		}
	}
	logger.Info("seed: products created", "count", len(demoProducts()))
	return nil
}

func demoSubcategories() []models.Subcategory {
	return []models.Subcategory{
		{Name: "Kurtas", Category: models.CategoryClothing,
			Image: media.Asset{URL: "https://picsum.photos/seed/kurtas/600", Key: "seed/kurtas"}},
		{Name: "Sarees", Category: models.CategoryClothing,
			Image: media.Asset{URL: "https://picsum.photos/seed/sarees/600", Key: "seed/sarees"}},
		{Name: "Candles", Category: models.CategoryHome,
			Image: media.Asset{URL: "https://picsum.photos/seed/candles/600", Key: "seed/candles"}},
		{Name: "Planters", Category: models.CategoryHome,
			Image: media.Asset{URL: "https://picsum.photos/seed/planters/600", Key: "seed/planters"}},
		{Name: "Herbal Teas", Category: models.CategoryWellness,
			Image: media.Asset{URL: "https://picsum.photos/seed/teas/600", Key: "seed/teas"}},
		{Name: "Skincare", Category: models.CategoryBeauty,
			Image: media.Asset{URL: "https://picsum.photos/seed/skincare/600", Key: "seed/skincare"}},
		{Name: "Totes", Category: models.CategoryAccessories,
			Image: media.Asset{URL: "https://picsum.photos/seed/totes/600", Key: "seed/totes"}},
	}
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Handblock Cotton Kurta",
			Description: "Soft mul cotton kurta with natural indigo block prints.",
			Price:       1499,
			Category:    models.CategoryClothing,
			Subcategory: "Kurtas",
			Gender:      "women",
			Sizes: []models.SizeStock{
				{Size: "S", Stock: 4}, {Size: "M", Stock: 6}, {Size: "L", Stock: 3},
			},
			Rating: 4.5,
			Images: []media.Asset{{URL: "https://picsum.photos/seed/kurta1/800", Key: "seed/kurta1"}},
		},
		{
			Title:       "Unisex Linen Shirt",
			Description: "Breathable handloom linen shirt, vegetable dyed.",
			Price:       1899,
			Category:    models.CategoryClothing,
			Subcategory: "Kurtas",
			Gender:      "unisex",
			Sizes: []models.SizeStock{
				{Size: "M", Stock: 5}, {Size: "L", Stock: 5}, {Size: "XL", Stock: 2},
			},
			Rating: 4.2,
			Images: []media.Asset{{URL: "https://picsum.photos/seed/linen1/800", Key: "seed/linen1"}},
		},
		{
			Title:       "Beeswax Pillar Candle",
			Description: "Hand-poured beeswax candle with a cotton wick, 40 hour burn.",
			Price:       449,
			Category:    models.CategoryHome,
			Subcategory: "Candles",
			Stock:       25,
			Rating:      4.8,
			Images:      []media.Asset{{URL: "https://picsum.photos/seed/candle1/800", Key: "seed/candle1"}},
		},
		{
			Title:       "Terracotta Planter",
			Description: "Wheel-thrown terracotta planter with drainage tray.",
			Price:       699,
			Category:    models.CategoryHome,
			Subcategory: "Planters",
			Stock:       12,
			Rating:      4.1,
			Images:      []media.Asset{{URL: "https://picsum.photos/seed/planter1/800", Key: "seed/planter1"}},
		},
		{
			Title:       "Tulsi Ginger Tea",
			Description: "Loose-leaf tulsi and dried ginger infusion, 100g pouch.",
			Price:       349,
			Category:    models.CategoryWellness,
			Subcategory: "Herbal Teas",
			Stock:       40,
			Rating:      4.6,
			Images:      []media.Asset{{URL: "https://picsum.photos/seed/tea1/800", Key: "seed/tea1"}},
		},
		{
			Title:       "Kumkumadi Face Oil",
			Description: "Cold-pressed face oil with saffron and sandalwood, 30ml.",
			Price:       999,
			Category:    models.CategoryBeauty,
			Subcategory: "Skincare",
			Stock:       18,
			Rating:      4.4,
			Images:      []media.Asset{{URL: "https://picsum.photos/seed/oil1/800", Key: "seed/oil1"}},
		},
		{
			Title:       "Jute Market Tote",
			Description: "Reinforced jute tote with leather handles.",
			Price:       799,
			Category:    models.CategoryAccessories,
			Subcategory: "Totes",
			Stock:       30,
			Rating:      4.0,
			Images:      []media.Asset{{URL: "https://picsum.photos/seed/tote1/800", Key: "seed/tote1"}},
		},
	}
}
