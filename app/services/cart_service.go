package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/cart"
)

// CartService wraps the cart state machine with durable storage keyed by
// session ID, snapshotting live products into line items on add.
type CartService struct {
	store    cart.Store
	products ProductStore
}

func NewCartService(store cart.Store, products ProductStore) *CartService {
	return &CartService{store: store, products: products}
}

// Get rehydrates the session's cart; a new session gets an empty cart.
func (s *CartService) Get(ctx context.Context, sessionID string) (cart.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// AddItem snapshots the product and merges it into the cart. Quantities
// below 1 are treated as 1.
func (s *CartService) AddItem(ctx context.Context, sessionID, productIDHex string, quantity int) (cart.Cart, error) {
	id, err := primitive.ObjectIDFromHex(productIDHex)
	if err != nil {
		return cart.Cart{}, ErrNotFound
	}
	product, err := s.products.FindByID(ctx, id)
	if err == repositories.ErrNotFound {
		return cart.Cart{}, ErrNotFound
	}
	if err != nil {
		return cart.Cart{}, err
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return cart.Cart{}, err
	}

	c.Add(cart.Item{
		ProductID: product.ID.Hex(),
		Title:     product.Title,
		Price:     product.Price,
		ImageURL:  product.ImageURL(),
		Category:  product.Category,
		Quantity:  quantity,
	})

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return cart.Cart{}, err
	}
	return c, nil
}

// SetQuantity sets a line to exactly quantity; below 1 removes the line.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (cart.Cart, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return cart.Cart{}, err
	}

	c.SetQuantity(productID, quantity)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return cart.Cart{}, err
	}
	return c, nil
}

// RemoveItem deletes a line. Removing an absent product id is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (cart.Cart, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return cart.Cart{}, err
	}

	c.Remove(productID)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return cart.Cart{}, err
	}
	return c, nil
}

// Clear empties the session's cart, typically after a successful checkout.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
