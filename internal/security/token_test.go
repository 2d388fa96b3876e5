package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-that-is-at-least-32-chars-long"

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 60)

	token, err := tm.GenerateAccessToken(42, "renter@test.com", "renter")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "renter@test.com", claims.Email)
	assert.Equal(t, "renter", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenHasNoRole(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 60)

	token, err := tm.GenerateRefreshToken(42, "renter@test.com")
	assert.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Role)
}

func TestTokenManager_RejectsForeignToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 60)
	other := NewTokenManager("another-secret-that-is-32-chars-min!", 15, 60)

	token, err := other.GenerateAccessToken(1, "a@test.com", "owner")
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 15, 60)
	_, err := tm.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
