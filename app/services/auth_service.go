package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/pkg/auth"
)

// UserStore is the slice of the user repository that auth and profile need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
}

// AuthService issues tokens for signup and login.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// SignupInput is the payload for registering a new account.
type SignupInput struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Signup creates a user with role "user" and returns it with a fresh token.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (models.User, string, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return models.User{}, "", fmt.Errorf("%w: email already registered", ErrInvalid)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, "", ErrUnauthorized
	}
	if err != nil {
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
