package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/auth"
)

// ProfileService manages profile fields and the embedded address book.
type ProfileService struct {
	users UserStore
}

func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) load(ctx context.Context, userIDHex string) (models.User, error) {
	id, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return models.User{}, ErrUnauthorized
	}
	u, err := s.users.FindByID(ctx, id)
	if err == repositories.ErrNotFound {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, userIDHex string) (models.User, error) {
	return s.load(ctx, userIDHex)
}

// UpdateProfileInput carries optional profile changes. A non-empty
// NewPassword requires CurrentPassword to verify against the stored hash.
type UpdateProfileInput struct {
	Name            string `json:"name"            validate:"nullable,min=2,max=100"`
	Phone           string `json:"phone"           validate:"nullable,min=7,max=15"`
	CurrentPassword string `json:"currentPassword" validate:"nullable"`
	NewPassword     string `json:"newPassword"     validate:"nullable,min=6"`
}

// UpdateProfile applies name/phone when provided and changes the password
// only after verifying the current one.
func (s *ProfileService) UpdateProfile(ctx context.Context, userIDHex string, in UpdateProfileInput) (models.User, error) {
	user, err := s.load(ctx, userIDHex)
	if err != nil {
		return models.User{}, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}

	if in.NewPassword != "" {
		if !auth.CheckPassword(user.Password, in.CurrentPassword) {
			return models.User{}, fmt.Errorf("%w: current password is incorrect", ErrUnauthorized)
		}
		hash, err := auth.HashPassword(in.NewPassword)
		if err != nil {
			return models.User{}, fmt.Errorf("profile: hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// AddressInput carries the writable address fields.
type AddressInput struct {
	Type         string `json:"type"         validate:"required,in=home,work,other"`
	FullName     string `json:"fullName"     validate:"required,min=2,max=100"`
	Phone        string `json:"phone"        validate:"required,min=7,max=15"`
	AddressLine1 string `json:"addressLine1" validate:"required,min=3"`
	AddressLine2 string `json:"addressLine2" validate:"nullable"`
	City         string `json:"city"         validate:"required"`
	State        string `json:"state"        validate:"required"`
	Pincode      string `json:"pincode"      validate:"required,digits=6"`
	IsDefault    bool   `json:"isDefault"`
}

func (in AddressInput) toModel() models.Address {
	return models.Address{
		Type:         in.Type,
		FullName:     in.FullName,
		Phone:        in.Phone,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		IsDefault:    in.IsDefault,
	}
}

// ListAddresses returns the caller's address book.
func (s *ProfileService) ListAddresses(ctx context.Context, userIDHex string) ([]models.Address, error) {
	user, err := s.load(ctx, userIDHex)
	if err != nil {
		return nil, err
	}
	return user.Addresses, nil
}

// AddAddress appends an address. The first address a user ever saves is
// forced default regardless of the requested flag; a later default clears
// the flag on every other address.
func (s *ProfileService) AddAddress(ctx context.Context, userIDHex string, in AddressInput) (models.User, error) {
	user, err := s.load(ctx, userIDHex)
	if err != nil {
		return models.User{}, err
	}

	addr := in.toModel()
	addr.ID = primitive.NewObjectID()

	if len(user.Addresses) == 0 {
		addr.IsDefault = true
	} else if addr.IsDefault {
		clearDefaults(user.Addresses)
	}

	user.Addresses = append(user.Addresses, addr)
	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateAddress rewrites one address, applying the same default-exclusivity
// rule when the update sets the flag.
func (s *ProfileService) UpdateAddress(ctx context.Context, userIDHex, addrIDHex string, in AddressInput) (models.User, error) {
	user, err := s.load(ctx, userIDHex)
	if err != nil {
		return models.User{}, err
	}

	addrID, err := primitive.ObjectIDFromHex(addrIDHex)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	idx := -1
	for i, a := range user.Addresses {
		if a.ID == addrID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.User{}, ErrNotFound
	}

	addr := in.toModel()
	addr.ID = addrID

	if addr.IsDefault {
		clearDefaults(user.Addresses)
	} else if user.Addresses[idx].IsDefault && len(user.Addresses) == 1 {
		// A sole address stays default.
		addr.IsDefault = true
	}
	user.Addresses[idx] = addr

	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteAddress removes one address. When the default is deleted and others
// remain, the first remaining address becomes default.
func (s *ProfileService) DeleteAddress(ctx context.Context, userIDHex, addrIDHex string) (models.User, error) {
	user, err := s.load(ctx, userIDHex)
	if err != nil {
		return models.User{}, err
	}

	addrID, err := primitive.ObjectIDFromHex(addrIDHex)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	idx := -1
	for i, a := range user.Addresses {
		if a.ID == addrID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.User{}, ErrNotFound
	}

	wasDefault := user.Addresses[idx].IsDefault
	user.Addresses = append(user.Addresses[:idx], user.Addresses[idx+1:]...)

	if wasDefault && len(user.Addresses) > 0 {
		user.Addresses[0].IsDefault = true
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func clearDefaults(addrs []models.Address) {
	for i := range addrs {
		addrs[i].IsDefault = false
	}
}
