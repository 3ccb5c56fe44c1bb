package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/homegrown/pkg/cart"
)

func item(id string, price float64, qty int) cart.Item {
	return cart.Item{ProductID: id, Title: "p-" + id, Price: price, Quantity: qty}
}

func TestAddMergesByProductID(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 2))
	c.Add(item("a", 100, 3))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestAddClampsQuantityToOne(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 0))
	c.Add(item("b", 50, -3))

	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestTotals(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 2))
	c.Add(item("b", 50, 1))

	assert.Equal(t, 3, c.TotalItems())
	assert.Equal(t, 250.0, c.TotalPrice())
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	var viaSet, viaRemove cart.Cart
	viaSet.Add(item("a", 100, 2))
	viaRemove.Add(item("a", 100, 2))

	viaSet.SetQuantity("a", 0)
	viaRemove.Remove("a")

	assert.Equal(t, viaRemove.Items, viaSet.Items)
	assert.True(t, viaSet.IsEmpty())
}

func TestSetQuantityExact(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 2))
	c.SetQuantity("a", 7)

	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 2))
	c.SetQuantity("missing", 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemoveIsIdempotent(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 1))
	c.Add(item("b", 50, 1))

	c.Remove("a")
	after := c.TotalItems()
	c.Remove("a")

	assert.Equal(t, after, c.TotalItems())
	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ProductID)
}

func TestClear(t *testing.T) {
	var c cart.Cart
	c.Add(item("a", 100, 2))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := cart.NewMemoryStore()

	var c cart.Cart
	c.Add(item("a", 100, 2))
	require.NoError(t, store.Save(ctx, "sess1", c))

	loaded, err := store.Load(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, c.Items, loaded.Items)

	// Mutating the loaded copy must not leak back into the store.
	loaded.SetQuantity("a", 9)
	again, err := store.Load(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestMemoryStoreMissingKeyIsEmptyCart(t *testing.T) {
	loaded, err := cart.NewMemoryStore().Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := cart.NewMemoryStore()

	var c cart.Cart
	c.Add(item("a", 100, 1))
	require.NoError(t, store.Save(ctx, "sess1", c))
	require.NoError(t, store.Delete(ctx, "sess1"))

	loaded, err := store.Load(ctx, "sess1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
