package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/media"
)

func sampleAssets(n int) []media.Asset {
	out := make([]media.Asset, n)
	for i := range out {
		out[i] = media.Asset{Key: "products/img", URL: "https://cdn.example.com/img.jpg"}
	}
	return out
}

func wellnessInput() services.ProductInput {
	return services.ProductInput{
		Title:       "Green Tea Sampler",
		Description: "A calming wellness blend.",
		Price:       249,
		Category:    models.CategoryWellness,
		Subcategory: "teas",
		Stock:       20,
		Rating:      4.5,
		Images:      sampleAssets(2),
	}
}

func clothingInput() services.ProductInput {
	in := wellnessInput()
	in.Title = "Linen Kurta"
	in.Category = models.CategoryClothing
	in.Gender = "men"
	in.Sizes = []models.SizeStock{{Size: "M", Stock: 4}, {Size: "L", Stock: 2}}
	return in
}

func catalogFixtures(t *testing.T) (*services.CatalogService, *fakeProductStore) {
	t.Helper()
	store := &fakeProductStore{products: []models.Product{
		{
			ID: primitive.NewObjectID(), Title: "Green Tea Sampler",
			Description: "A calming wellness blend.", Price: 249,
			Category: models.CategoryWellness, Subcategory: "teas",
			CreatedAt: time.Now().AddDate(0, 0, -2),
		},
		{
			ID: primitive.NewObjectID(), Title: "Ceramic Teapot",
			Description: "Hand glazed, holds 600ml.", Price: 899,
			Category: models.CategoryHome, Subcategory: "kitchen",
			CreatedAt: time.Now().AddDate(0, 0, -1),
		},
		{
			ID: primitive.NewObjectID(), Title: "Jute Tote",
			Description: "Everyday carry bag.", Price: 349,
			Category: models.CategoryAccessories, Subcategory: "bags",
			CreatedAt: time.Now(),
		},
	}}
	return services.NewCatalogService(store), store
}

func TestListPassesFiltersToStore(t *testing.T) {
	svc, store := catalogFixtures(t)

	got, err := svc.List(context.Background(), services.ListParams{
		Category: models.CategoryWellness,
		Sort:     "price-asc",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CategoryWellness, store.lastQuery.Category)
	assert.Equal(t, "price-asc", store.lastQuery.Sort)
	require.Len(t, got, 1)
	assert.Equal(t, "Green Tea Sampler", got[0].Title)
}

func TestListSearchFiltersInMemory(t *testing.T) {
	svc, _ := catalogFixtures(t)

	got, err := svc.List(context.Background(), services.ListParams{Search: "tea"})
	require.NoError(t, err)

	// "tea" hits the sampler's title and the teapot's title.
	require.Len(t, got, 2)
	titles := []string{got[0].Title, got[1].Title}
	assert.Contains(t, titles, "Green Tea Sampler")
	assert.Contains(t, titles, "Ceramic Teapot")
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	svc, _ := catalogFixtures(t)

	got, err := svc.List(context.Background(), services.ListParams{Search: "CARRY BAG"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jute Tote", got[0].Title)
}

func TestGetMalformedIDBehavesLikeMissing(t *testing.T) {
	svc, _ := catalogFixtures(t)

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetReturnsProduct(t *testing.T) {
	svc, store := catalogFixtures(t)

	got, err := svc.Get(context.Background(), store.products[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Green Tea Sampler", got.Title)
}

func TestCreateFlatCategoryClearsVariantFields(t *testing.T) {
	svc, store := catalogFixtures(t)

	in := wellnessInput()
	in.Gender = "men"                                     // stray input
	in.Sizes = []models.SizeStock{{Size: "M", Stock: 1}}  // stray input

	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	assert.Empty(t, p.Gender)
	assert.Nil(t, p.Sizes)
	assert.Equal(t, 20, p.Stock)
}

func TestCreateClothingClearsFlatStock(t *testing.T) {
	svc, _ := catalogFixtures(t)

	p, err := svc.Create(context.Background(), clothingInput())
	require.NoError(t, err)

	assert.Equal(t, "men", p.Gender)
	require.Len(t, p.Sizes, 2)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, 6, p.TotalStock())
}

func TestCreateClothingRequiresGenderAndSizes(t *testing.T) {
	svc, _ := catalogFixtures(t)

	in := clothingInput()
	in.Gender = ""
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = clothingInput()
	in.Sizes = nil
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, services.ErrInvalid)
}

func TestCreateImageCountBounds(t *testing.T) {
	svc, _ := catalogFixtures(t)

	in := wellnessInput()
	in.Images = nil
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = wellnessInput()
	in.Images = sampleAssets(5)
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = wellnessInput()
	in.Images = sampleAssets(4)
	_, err = svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateRejectsBadPriceAndRating(t *testing.T) {
	svc, _ := catalogFixtures(t)

	in := wellnessInput()
	in.Price = 0
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = wellnessInput()
	in.Rating = 5.5
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, services.ErrInvalid)
}

func TestUpdateKeepsImagesWhenNoneSupplied(t *testing.T) {
	svc, store := catalogFixtures(t)

	existing := store.products[0]
	existing.Images = sampleAssets(2)
	store.products[0] = existing

	in := wellnessInput()
	in.Images = nil

	p, err := svc.Update(context.Background(), existing.ID.Hex(), in)
	require.NoError(t, err)
	assert.Len(t, p.Images, 2)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc, _ := catalogFixtures(t)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), wellnessInput())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteRemovesProduct(t *testing.T) {
	svc, store := catalogFixtures(t)
	id := store.products[0].ID

	require.NoError(t, svc.Delete(context.Background(), id.Hex()))
	require.Len(t, store.deleted, 1)

	_, err := svc.Get(context.Background(), id.Hex())
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestDeleteMissingProduct(t *testing.T) {
	svc, _ := catalogFixtures(t)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
