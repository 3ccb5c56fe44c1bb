package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Address is one saved shipping address, embedded in the user document.
// At most one address per user has IsDefault set; the profile service
// maintains that invariant on every write.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"          json:"id"`
	Type         string             `bson:"type"                   json:"type"` // home | work | other
	FullName     string             `bson:"fullName"               json:"fullName"`
	Phone        string             `bson:"phone"                  json:"phone"`
	AddressLine1 string             `bson:"addressLine1"           json:"addressLine1"`
	AddressLine2 string             `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string             `bson:"city"                   json:"city"`
	State        string             `bson:"state"                  json:"state"`
	Pincode      string             `bson:"pincode"                json:"pincode"`
	IsDefault    bool               `bson:"isDefault"              json:"isDefault"`
}

// ValidAddressType reports whether t is a recognised address type tag.
func ValidAddressType(t string) bool {
	return t == "home" || t == "work" || t == "other"
}

// User is the primary user model. Addresses live inside the document rather
// than a separate collection, so address writes touch a single record.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	Password  string             `bson:"password"      json:"-"` // hashed, never serialised
	Phone     string             `bson:"phone"         json:"phone"`
	Role      string             `bson:"role"          json:"role"`
	Addresses []Address          `bson:"addresses"     json:"addresses"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// DefaultAddress returns the user's default address, if any.
func (u User) DefaultAddress() (Address, bool) {
	for _, a := range u.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return Address{}, false
}
