package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/event"
)

// EventOrderPlaced is fired on the event bus after every successful checkout.
// The payload is the persisted models.Order.
const EventOrderPlaced = "order.placed"

// OrderStore is the slice of the order repository the service needs.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindByIDForUser(ctx context.Context, id, userID primitive.ObjectID) (models.Order, error)
}

// OrderService converts cart snapshots into persisted orders and serves
// ownership-scoped order history.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// PlaceOrderInput is the checkout payload. TotalAmount is persisted as
// submitted, not recomputed against the item snapshots.
type PlaceOrderInput struct {
	Items           []models.OrderItem    `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	TotalAmount     float64               `json:"totalAmount"`
}

func (in PlaceOrderInput) validate() error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalid)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return fmt.Errorf("%w: each item needs a product id and a quantity of at least 1", ErrInvalid)
		}
	}

	a := in.ShippingAddress
	if a.Name == "" || a.Phone == "" || a.Street == "" || a.City == "" || a.State == "" || a.Pincode == "" {
		return fmt.Errorf("%w: shipping address is incomplete", ErrInvalid)
	}

	if in.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount is required", ErrInvalid)
	}
	return nil
}

// PlaceOrder persists a new order with status Placed and payment fixed to
// cash on delivery, then fires the order-placed event. Stock is neither
// checked nor decremented.
func (s *OrderService) PlaceOrder(ctx context.Context, userIDHex string, in PlaceOrderInput) (models.Order, error) {
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return models.Order{}, ErrUnauthorized
	}

	if err := in.validate(); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		UserID:          userID,
		Items:           in.Items,
		ShippingAddress: in.ShippingAddress,
		TotalAmount:     in.TotalAmount,
		PaymentMethod:   models.PaymentCOD,
		Status:          models.OrderPlaced,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, err
	}

	event.Fire(EventOrderPlaced, order)
	return order, nil
}

// ListOrders returns the user's own orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userIDHex string) ([]models.Order, error) {
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.orders.FindByUser(ctx, userID)
}

// GetOrder returns one order only if it belongs to the caller. A foreign or
// malformed order id yields the same not-found error as a missing one.
func (s *OrderService) GetOrder(ctx context.Context, userIDHex, orderIDHex string) (models.Order, error) {
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return models.Order{}, ErrUnauthorized
	}
	orderID, err := primitive.ObjectIDFromHex(orderIDHex)
	if err != nil {
		return models.Order{}, ErrNotFound
	}

	order, err := s.orders.FindByIDForUser(ctx, orderID, userID)
	if err == repositories.ErrNotFound {
		return models.Order{}, ErrNotFound
	}
	return order, err
}
