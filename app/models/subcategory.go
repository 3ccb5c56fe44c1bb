package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/pkg/media"
)

// Subcategory is a named group within one of the fixed categories, with its
// own display image. The slug is derived from the name and kept unique.
type Subcategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Category  string             `bson:"category"      json:"category"`
	Slug      string             `bson:"slug"          json:"slug"`
	Image     media.Asset        `bson:"image"         json:"image"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// Slugify derives a URL-safe slug: lowercased, spaces collapsed to hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
