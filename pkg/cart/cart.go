// Package cart implements the shopping cart: a pure state machine over line
// items, plus a Store that mirrors every mutation into durable storage so a
// cart survives reloads and new sessions on the same device.
package cart

// Item is one line item: a product snapshot plus a quantity.
type Item struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the line items for one session. The zero value is an empty,
// usable cart.
type Cart struct {
	Items []Item `json:"items"`
}

// Add merges the item into the cart: an existing line for the same product
// id has its quantity incremented, otherwise a new line is appended. A
// quantity below 1 is treated as 1. No upper bound is enforced against live
// stock at this layer.
func (c *Cart) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the line for productID to exactly quantity. A quantity
// below 1 removes the line entirely. Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for productID. Idempotent: removing an absent id
// leaves the cart unchanged.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Invoked after a successful checkout.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of quantities across all line items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price × quantity across all line items.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
