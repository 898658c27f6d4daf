package auth

import (
	"testing"
	"time"

	"fleetcheck/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return NewService(config.Config{JWTSecret: "test-secret"})
}

func TestTokenRoundTrip(t *testing.T) {
	service := newService()

	for _, role := range []string{RoleAdmin, RoleDriver} {
		token, err := service.GenerateToken("user-1", role, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.ID)
		assert.Equal(t, role, claims.Role)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	service := newService()

	token, err := service.GenerateToken("user-1", RoleDriver, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newService()

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := newService().GenerateToken("user-1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	other := NewService(config.Config{JWTSecret: "different-secret"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
