package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/pkg/media"
)

// Product categories. Fixed set; the storefront navigation is built on it.
const (
	CategoryClothing    = "clothing"
	CategoryHome        = "home"
	CategoryWellness    = "wellness"
	CategoryBeauty      = "beauty"
	CategoryAccessories = "accessories"
)

// Categories returns the fixed category list in display order.
func Categories() []string {
	return []string{
		CategoryClothing,
		CategoryHome,
		CategoryWellness,
		CategoryBeauty,
		CategoryAccessories,
	}
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories() {
		if v == c {
			return true
		}
	}
	return false
}

// Genders returns the gender tags valid for clothing products.
func Genders() []string {
	return []string{"men", "women", "kids", "unisex"}
}

// ValidGender reports whether g is a recognised clothing gender tag.
func ValidGender(g string) bool {
	for _, v := range Genders() {
		if v == g {
			return true
		}
	}
	return false
}

// SizeStock is one apparel variant: a size label with its own stock count.
type SizeStock struct {
	Size  string `bson:"size"  json:"size"`
	Stock int    `bson:"stock" json:"stock"`
}

// Product is a catalogue entry. Clothing carries a gender tag and per-size
// stock variants; every other category carries a flat stock count. Exactly
// one of the two is populated, determined by Category.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"      json:"id"`
	Title       string             `bson:"title"              json:"title"`
	Description string             `bson:"description"        json:"description"`
	Price       float64            `bson:"price"              json:"price"`
	Category    string             `bson:"category"           json:"category"`
	Subcategory string             `bson:"subcategory"        json:"subcategory"`
	Gender      string             `bson:"gender,omitempty"   json:"gender,omitempty"`
	Sizes       []SizeStock        `bson:"sizes,omitempty"    json:"sizes,omitempty"`
	Stock       int                `bson:"stock"              json:"stock"`
	Images      []media.Asset      `bson:"images"             json:"images"`
	Rating      float64            `bson:"rating"             json:"rating"`
	CreatedAt   time.Time          `bson:"createdAt"          json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"          json:"updatedAt"`
}

// IsClothing reports whether the product uses size variants.
func (p Product) IsClothing() bool { return p.Category == CategoryClothing }

// TotalStock sums variant stocks for clothing, or returns the flat stock.
func (p Product) TotalStock() int {
	if p.IsClothing() {
		total := 0
		for _, s := range p.Sizes {
			total += s.Stock
		}
		return total
	}
	return p.Stock
}

// ImageURL returns the primary image URL, the first in the list, or "".
func (p Product) ImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// MatchesSearch reports whether the product's title or description contains
// q, case-insensitively. An empty query matches everything.
func (p Product) MatchesSearch(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
