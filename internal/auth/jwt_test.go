package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.Generate(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenExpiresInOneHour(t *testing.T) {
	manager := NewJWTManager("test-secret")

	before := time.Now()
	token, err := manager.Generate(7, "user")
	require.NoError(t, err)
	after := time.Now()

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)

	assert.False(t, exp.Time.Before(before.Add(TokenTTL).Truncate(time.Second)))
	assert.False(t, exp.Time.After(after.Add(TokenTTL)))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").Generate(1, "user")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewJWTManager("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}
