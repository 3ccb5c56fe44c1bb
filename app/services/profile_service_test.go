package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/auth"
)

func profileFixtures(t *testing.T) (*services.ProfileService, *fakeUserStore, models.User) {
	t.Helper()
	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)

	user := models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: hash,
		Role:     models.RoleUser,
	}
	store := &fakeUserStore{users: []models.User{user}}
	return services.NewProfileService(store), store, user
}

func addressInput(typ string, isDefault bool) services.AddressInput {
	return services.AddressInput{
		Type: typ, FullName: "Asha Rao", Phone: "9876543210",
		AddressLine1: "12 MG Road", City: "Pune", State: "Maharashtra",
		Pincode: "411001", IsDefault: isDefault,
	}
}

func defaultCount(addrs []models.Address) int {
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestUpdateProfileNameAndPhone(t *testing.T) {
	svc, _, user := profileFixtures(t)

	got, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), services.UpdateProfileInput{
		Name:  "Asha R",
		Phone: "9123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha R", got.Name)
	assert.Equal(t, "9123456789", got.Phone)
	assert.Equal(t, user.Email, got.Email)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	svc, store, user := profileFixtures(t)

	_, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), services.UpdateProfileInput{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	saved, err := store.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(saved.Password, "new-password"))
	assert.False(t, auth.CheckPassword(saved.Password, "old-password"))
}

func TestUpdateProfileWrongCurrentPassword(t *testing.T) {
	svc, store, user := profileFixtures(t)

	_, err := svc.UpdateProfile(context.Background(), user.ID.Hex(), services.UpdateProfileInput{
		CurrentPassword: "guess",
		NewPassword:     "new-password",
	})
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	saved, err := store.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(saved.Password, "old-password"))
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc, _, user := profileFixtures(t)

	got, err := svc.AddAddress(context.Background(), user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)

	require.Len(t, got.Addresses, 1)
	assert.True(t, got.Addresses[0].IsDefault, "first address must be forced default")
}

func TestNewDefaultClearsOthers(t *testing.T) {
	svc, _, user := profileFixtures(t)
	ctx := context.Background()

	_, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)
	got, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("work", true))
	require.NoError(t, err)

	require.Len(t, got.Addresses, 2)
	assert.False(t, got.Addresses[0].IsDefault)
	assert.True(t, got.Addresses[1].IsDefault)
	assert.Equal(t, 1, defaultCount(got.Addresses))
}

func TestNonDefaultAddKeepsExistingDefault(t *testing.T) {
	svc, _, user := profileFixtures(t)
	ctx := context.Background()

	_, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)
	got, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("work", false))
	require.NoError(t, err)

	assert.True(t, got.Addresses[0].IsDefault)
	assert.False(t, got.Addresses[1].IsDefault)
}

func TestUpdateAddressSetDefaultClearsOthers(t *testing.T) {
	svc, _, user := profileFixtures(t)
	ctx := context.Background()

	_, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)
	withTwo, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("work", false))
	require.NoError(t, err)

	got, err := svc.UpdateAddress(ctx, user.ID.Hex(), withTwo.Addresses[1].ID.Hex(), addressInput("work", true))
	require.NoError(t, err)

	assert.False(t, got.Addresses[0].IsDefault)
	assert.True(t, got.Addresses[1].IsDefault)
	assert.Equal(t, 1, defaultCount(got.Addresses))
}

func TestSoleAddressStaysDefaultOnUpdate(t *testing.T) {
	svc, _, user := profileFixtures(t)
	ctx := context.Background()

	withOne, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)

	got, err := svc.UpdateAddress(ctx, user.ID.Hex(), withOne.Addresses[0].ID.Hex(), addressInput("home", false))
	require.NoError(t, err)
	assert.True(t, got.Addresses[0].IsDefault)
}

func TestDeleteDefaultPromotesFirstRemaining(t *testing.T) {
	svc, _, user := profileFixtures(t)
	ctx := context.Background()

	first, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)
	_, err = svc.AddAddress(ctx, user.ID.Hex(), addressInput("work", false))
	require.NoError(t, err)
	_, err = svc.AddAddress(ctx, user.ID.Hex(), addressInput("other", false))
	require.NoError(t, err)

	got, err := svc.DeleteAddress(ctx, user.ID.Hex(), first.Addresses[0].ID.Hex())
	require.NoError(t, err)

	require.Len(t, got.Addresses, 2)
	assert.True(t, got.Addresses[0].IsDefault, "first remaining address must be promoted")
	assert.Equal(t, 1, defaultCount(got.Addresses))
}

func TestDeleteNonDefaultLeavesDefaultAlone(t *testing.T) {
	svc, _, user := profileFixtures(t)
	ctx := context.Background()

	_, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("home", false))
	require.NoError(t, err)
	withTwo, err := svc.AddAddress(ctx, user.ID.Hex(), addressInput("work", false))
	require.NoError(t, err)

	got, err := svc.DeleteAddress(ctx, user.ID.Hex(), withTwo.Addresses[1].ID.Hex())
	require.NoError(t, err)

	require.Len(t, got.Addresses, 1)
	assert.True(t, got.Addresses[0].IsDefault)
}

func TestDeleteMissingAddress(t *testing.T) {
	svc, _, user := profileFixtures(t)

	_, err := svc.DeleteAddress(context.Background(), user.ID.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddressOpsForUnknownUser(t *testing.T) {
	svc, _, _ := profileFixtures(t)

	_, err := svc.AddAddress(context.Background(), primitive.NewObjectID().Hex(), addressInput("home", false))
	assert.ErrorIs(t, err, services.ErrNotFound)
}
