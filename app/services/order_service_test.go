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
	"github.com/shashiranjanraj/homegrown/pkg/event"
)

func shippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name: "Asha Rao", Phone: "9876543210", Street: "12 MG Road",
		City: "Pune", State: "Maharashtra", Pincode: "411001",
	}
}

func checkoutInput() services.PlaceOrderInput {
	return services.PlaceOrderInput{
		Items: []models.OrderItem{
			{ProductID: primitive.NewObjectID().Hex(), Title: "Green Tea Sampler", Price: 249, Quantity: 2},
		},
		ShippingAddress: shippingAddress(),
		TotalAmount:     498,
	}
}

func TestPlaceOrderSetsStatusAndPayment(t *testing.T) {
	store := &fakeOrderStore{}
	svc := services.NewOrderService(store)
	userID := primitive.NewObjectID()

	order, err := svc.PlaceOrder(context.Background(), userID.Hex(), checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, models.OrderPlaced, order.Status)
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	assert.Equal(t, userID, order.UserID)
	assert.False(t, order.ID.IsZero())
	require.Len(t, store.orders, 1)
}

func TestPlaceOrderKeepsSubmittedTotal(t *testing.T) {
	svc := services.NewOrderService(&fakeOrderStore{})

	in := checkoutInput()
	in.TotalAmount = 999 // deliberately not the sum of price*qty

	order, err := svc.PlaceOrder(context.Background(), primitive.NewObjectID().Hex(), in)
	require.NoError(t, err)
	assert.Equal(t, 999.0, order.TotalAmount)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc := services.NewOrderService(&fakeOrderStore{})
	userID := primitive.NewObjectID().Hex()
	ctx := context.Background()

	in := checkoutInput()
	in.Items = nil
	_, err := svc.PlaceOrder(ctx, userID, in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = checkoutInput()
	in.Items[0].Quantity = 0
	_, err = svc.PlaceOrder(ctx, userID, in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = checkoutInput()
	in.ShippingAddress.Pincode = ""
	_, err = svc.PlaceOrder(ctx, userID, in)
	assert.ErrorIs(t, err, services.ErrInvalid)

	in = checkoutInput()
	in.TotalAmount = 0
	_, err = svc.PlaceOrder(ctx, userID, in)
	assert.ErrorIs(t, err, services.ErrInvalid)
}

func TestPlaceOrderFiresEvent(t *testing.T) {
	event.Flush()
	defer event.Flush()

	var fired []models.Order
	event.Listen(services.EventOrderPlaced, func(payload interface{}) {
		if o, ok := payload.(models.Order); ok {
			fired = append(fired, o)
		}
	})

	svc := services.NewOrderService(&fakeOrderStore{})
	order, err := svc.PlaceOrder(context.Background(), primitive.NewObjectID().Hex(), checkoutInput())
	require.NoError(t, err)

	require.Len(t, fired, 1)
	assert.Equal(t, order.ID, fired[0].ID)
}

func TestListOrdersScopedToUser(t *testing.T) {
	store := &fakeOrderStore{}
	svc := services.NewOrderService(store)
	ctx := context.Background()

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	_, err := svc.PlaceOrder(ctx, alice.Hex(), checkoutInput())
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, bob.Hex(), checkoutInput())
	require.NoError(t, err)

	got, err := svc.ListOrders(ctx, alice.Hex())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, alice, got[0].UserID)
}

func TestGetOrderHidesForeignOrders(t *testing.T) {
	store := &fakeOrderStore{}
	svc := services.NewOrderService(store)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	order, err := svc.PlaceOrder(ctx, owner.Hex(), checkoutInput())
	require.NoError(t, err)

	// The owner sees it.
	got, err := svc.GetOrder(ctx, owner.Hex(), order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Anyone else gets the same error as for a missing order.
	_, foreignErr := svc.GetOrder(ctx, primitive.NewObjectID().Hex(), order.ID.Hex())
	_, missingErr := svc.GetOrder(ctx, owner.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, foreignErr, services.ErrNotFound)
	assert.Equal(t, missingErr, foreignErr)
}

func TestGetOrderMalformedID(t *testing.T) {
	svc := services.NewOrderService(&fakeOrderStore{})

	_, err := svc.GetOrder(context.Background(), primitive.NewObjectID().Hex(), "zzz")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

// Checkout end to end against the cart totals: three items at various
// quantities must land in the order exactly as the cart computed them.
func TestCheckoutFromCartSnapshot(t *testing.T) {
	var c cart.Cart
	c.Add(cart.Item{ProductID: "p1", Title: "Green Tea Sampler", Price: 100, Quantity: 2})
	c.Add(cart.Item{ProductID: "p2", Title: "Jute Tote", Price: 50, Quantity: 1})
	require.Equal(t, 3, c.TotalItems())
	require.Equal(t, 250.0, c.TotalPrice())

	items := make([]models.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID, Title: it.Title,
			Price: it.Price, Quantity: it.Quantity, ImageURL: it.ImageURL,
		})
	}

	svc := services.NewOrderService(&fakeOrderStore{})
	order, err := svc.PlaceOrder(context.Background(), primitive.NewObjectID().Hex(), services.PlaceOrderInput{
		Items:           items,
		ShippingAddress: shippingAddress(),
		TotalAmount:     c.TotalPrice(),
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
}
