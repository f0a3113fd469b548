package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "test-issuer", time.Hour)

	token, err := manager.Generate("admin-123", "super_admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.Subject)
	assert.Equal(t, "super_admin", claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestTokenExpiredIsDistinct(t *testing.T) {
	manager := NewTokenManager("test-secret", "test-issuer", -time.Minute)

	token, err := manager.Generate("admin-123", "admin")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenWrongSecret(t *testing.T) {
	issuing := NewTokenManager("secret-a", "iss", time.Hour)
	verifying := NewTokenManager("secret-b", "iss", time.Hour)

	token, err := issuing.Generate("admin-123", "admin")
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", "iss", time.Hour)

	for _, input := range []string{"", "garbage", "a.b.c"} {
		_, err := manager.Verify(input)
		assert.ErrorIs(t, err, ErrTokenInvalid, "input %q", input)
	}
}
