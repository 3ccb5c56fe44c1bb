package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Orders start at Placed and advance only through
// administrative action.
const (
	OrderPlaced     = "Placed"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// PaymentCOD is the sole supported payment method.
const PaymentCOD = "COD"

// ReturnWindow is how long after placement an order stays return-eligible.
const ReturnWindow = 14 * 24 * time.Hour

// OrderItem is a product snapshot captured at checkout. Later catalogue
// edits never alter historical orders.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Title     string  `bson:"title"     json:"title"`
	Price     float64 `bson:"price"     json:"price"`
	Quantity  int     `bson:"quantity"  json:"quantity"`
	ImageURL  string  `bson:"imageUrl"  json:"imageUrl"`
}

// ShippingAddress is the address snapshot persisted with an order.
type ShippingAddress struct {
	Name    string `bson:"name"    json:"name"`
	Phone   string `bson:"phone"   json:"phone"`
	Street  string `bson:"street"  json:"street"`
	City    string `bson:"city"    json:"city"`
	State   string `bson:"state"   json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
}

// Order is one placed order. TotalAmount is persisted as submitted and not
// recomputed from the item snapshots.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"   json:"id"`
	UserID          primitive.ObjectID `bson:"userId"          json:"userId"`
	Items           []OrderItem        `bson:"items"           json:"items"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	TotalAmount     float64            `bson:"totalAmount"     json:"totalAmount"`
	PaymentMethod   string             `bson:"paymentMethod"   json:"paymentMethod"`
	Status          string             `bson:"status"          json:"status"`
	CreatedAt       time.Time          `bson:"createdAt"       json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"       json:"updatedAt"`
}

// ReturnEligibleAt reports whether the order can still be returned at the
// given instant. The predicate depends only on the placement time, not on
// the order status.
func (o Order) ReturnEligibleAt(now time.Time) bool {
	return now.Sub(o.CreatedAt) <= ReturnWindow
}

// ReturnEligible is ReturnEligibleAt against the wall clock.
func (o Order) ReturnEligible() bool {
	return o.ReturnEligibleAt(time.Now())
}
