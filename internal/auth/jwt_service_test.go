package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID, "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)

	// Lifetime is fixed at exactly 24 hours from issuance.
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenExpiry, lifetime)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(uuid.New(), "admin@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		AdminID: uuid.New(),
		Email:   "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-TokenExpiry - time.Minute)),
			NotBefore: jwt.NewNumericDate(time.Now().Add(-TokenExpiry - time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewJWTService(secret).ValidateToken(expired)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}
