package models_test

import (
	"testing"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/pkg/media"
)

func TestTotalStockClothingSumsVariants(t *testing.T) {
	p := models.Product{
		Category: models.CategoryClothing,
		Sizes: []models.SizeStock{
			{Size: "S", Stock: 3},
			{Size: "M", Stock: 5},
			{Size: "L", Stock: 0},
		},
		Stock: 99, // ignored for clothing
	}
	if got := p.TotalStock(); got != 8 {
		t.Errorf("TotalStock() = %d, want 8", got)
	}
}

func TestTotalStockFlatCategories(t *testing.T) {
	p := models.Product{Category: models.CategoryHome, Stock: 12}
	if got := p.TotalStock(); got != 12 {
		t.Errorf("TotalStock() = %d, want 12", got)
	}
}

func TestImageURL(t *testing.T) {
	p := models.Product{}
	if got := p.ImageURL(); got != "" {
		t.Errorf("ImageURL() with no images = %q, want empty", got)
	}

	p.Images = []media.Asset{
		{URL: "https://cdn.example.com/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg"},
	}
	if got := p.ImageURL(); got != "https://cdn.example.com/a.jpg" {
		t.Errorf("ImageURL() = %q, want first image", got)
	}
}

func TestMatchesSearch(t *testing.T) {
	p := models.Product{
		Title:       "Green Tea Sampler",
		Description: "A calming wellness blend.",
	}

	cases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"tea", true},
		{"TEA", true},
		{"calming", true},
		{"WELLNESS BLEND", true},
		{"coffee", false},
	}
	for _, c := range cases {
		if got := p.MatchesSearch(c.query); got != c.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", c.query, got, c.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range models.Categories() {
		if !models.ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	if models.ValidCategory("electronics") {
		t.Error("electronics should not be a valid category")
	}
	if models.ValidCategory("") {
		t.Error("empty string should not be a valid category")
	}
}

func TestValidGender(t *testing.T) {
	for _, g := range models.Genders() {
		if !models.ValidGender(g) {
			t.Errorf("ValidGender(%q) = false", g)
		}
	}
	if models.ValidGender("boys") {
		t.Error("boys should not be a valid gender tag")
	}
}
