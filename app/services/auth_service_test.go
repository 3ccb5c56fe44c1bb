package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/auth"
)

func TestSignupCreatesUserWithToken(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)

	user, token, err := svc.Signup(context.Background(), services.SignupInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.ID.IsZero())
	assert.NotEqual(t, "secret-pass", user.Password, "password must be stored hashed")
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)
	ctx := context.Background()

	in := services.SignupInput{Name: "Asha Rao", Email: "asha@example.com", Password: "secret-pass"}
	_, _, err := svc.Signup(ctx, in)
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, in)
	assert.ErrorIs(t, err, services.ErrInvalid)
}

func TestLoginHappyPath(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, services.SignupInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "asha@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewAuthService(store)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, services.SignupInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)

	_, _, wrongPass := svc.Login(ctx, "asha@example.com", "nope")
	_, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret-pass")

	assert.ErrorIs(t, wrongPass, services.ErrUnauthorized)
	assert.Equal(t, wrongPass, unknownEmail)
}
