package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/cart"
	"github.com/shashiranjanraj/homegrown/pkg/media"
)

func cartFixtures(t *testing.T) (*services.CartService, models.Product) {
	t.Helper()
	product := models.Product{
		ID:       primitive.NewObjectID(),
		Title:    "Green Tea Sampler",
		Price:    249,
		Category: models.CategoryWellness,
		Images:   []media.Asset{{URL: "https://cdn.example.com/tea.jpg"}},
	}
	products := &fakeProductStore{products: []models.Product{product}}
	return services.NewCartService(cart.NewMemoryStore(), products), product
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	svc, product := cartFixtures(t)

	c, err := svc.AddItem(context.Background(), "sess1", product.ID.Hex(), 2)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	it := c.Items[0]
	assert.Equal(t, product.ID.Hex(), it.ProductID)
	assert.Equal(t, "Green Tea Sampler", it.Title)
	assert.Equal(t, 249.0, it.Price)
	assert.Equal(t, "https://cdn.example.com/tea.jpg", it.ImageURL)
	assert.Equal(t, 2, it.Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := cartFixtures(t)

	_, err := svc.AddItem(context.Background(), "sess1", primitive.NewObjectID().Hex(), 1)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.AddItem(context.Background(), "sess1", "bad-id", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddItemMergesAcrossCalls(t *testing.T) {
	svc, product := cartFixtures(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", product.ID.Hex(), 2)
	require.NoError(t, err)
	c, err := svc.AddItem(ctx, "sess1", product.ID.Hex(), 3)
	require.NoError(t, err)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestCartsAreSessionScoped(t *testing.T) {
	svc, product := cartFixtures(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", product.ID.Hex(), 1)
	require.NoError(t, err)

	other, err := svc.Get(ctx, "sess2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestSetQuantityBelowOneRemoves(t *testing.T) {
	svc, product := cartFixtures(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", product.ID.Hex(), 2)
	require.NoError(t, err)

	c, err := svc.SetQuantity(ctx, "sess1", product.ID.Hex(), 0)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestRemoveItemPersists(t *testing.T) {
	svc, product := cartFixtures(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", product.ID.Hex(), 1)
	require.NoError(t, err)
	_, err = svc.RemoveItem(ctx, "sess1", product.ID.Hex())
	require.NoError(t, err)

	c, err := svc.Get(ctx, "sess1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestClearEmptiesCart(t *testing.T) {
	svc, product := cartFixtures(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess1", product.ID.Hex(), 3)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "sess1"))

	c, err := svc.Get(ctx, "sess1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
