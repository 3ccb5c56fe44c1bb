// Package resources defines the JSON transformers for API payloads,
// exposing derived fields the models compute (primary image, total stock,
// return eligibility).
package resources

import (
	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/pkg/resource"
)

// ProductResource shapes a product for API responses.
type ProductResource struct{ resource.Base }

func (r *ProductResource) ToArray(v interface{}) resource.Map {
	p := v.(models.Product)

	out := resource.Map{
		"id":          p.ID.Hex(),
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"subcategory": p.Subcategory,
		"images":      p.Images,
		"rating":      p.Rating,
		"imageUrl":    p.ImageURL(),
		"totalStock":  p.TotalStock(),
		"createdAt":   p.CreatedAt,
	}

	if p.IsClothing() {
		out["gender"] = p.Gender
		out["sizes"] = p.Sizes
	} else {
		out["stock"] = p.Stock
	}
	return out
}
