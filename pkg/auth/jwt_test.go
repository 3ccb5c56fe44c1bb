package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/homegrown/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("64f1c0ffee0ddba11ad0beef", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0ddba11ad0beef", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsTampering(t *testing.T) {
	token, err := auth.GenerateToken("64f1c0ffee0ddba11ad0beef", "user")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong-pass"))
}
