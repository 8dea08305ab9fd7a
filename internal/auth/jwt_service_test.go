package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", "photochef", "photochef-api")

	token, err := svc.GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "photochef", claims.Issuer)
}

func TestJWTService_ValidateRejectsForeignTokens(t *testing.T) {
	svc := NewJWTService("secret", "photochef", "photochef-api")
	other := NewJWTService("other-secret", "photochef", "photochef-api")

	token, err := other.GenerateToken(42, "alice")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateChecksIssuerAndAudience(t *testing.T) {
	svc := NewJWTService("secret", "photochef", "photochef-api")
	wrongIssuer := NewJWTService("secret", "someone-else", "photochef-api")

	token, err := wrongIssuer.GenerateToken(42, "alice")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
