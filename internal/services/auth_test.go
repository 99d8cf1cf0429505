package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/auth"
	"github.com/reelbase-dev/reelbase/internal/types"
)

func newAuthService(users UserStore) (*AuthService, *auth.JWTManager) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewJWTManager("test-secret")
	return NewAuthService(users, hasher, tokens), tokens
}

func TestRegisterDefaultsAndHashing(t *testing.T) {
	users := newFakeUserStore()
	service, _ := newAuthService(users)

	user, err := service.Register("ana", "a@x.com", "secret1", "")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, types.RoleUser, user.Role)
	assert.Equal(t, types.StatusActive, user.Status)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterConflictDoesNotMutateStore(t *testing.T) {
	users := newFakeUserStore()
	service, _ := newAuthService(users)

	_, err := service.Register("ana", "a@x.com", "secret1", "")
	require.NoError(t, err)

	creates := users.createCalls

	tests := []struct {
		name  string
		email string
	}{
		{"ana", "other@x.com"},
		{"other", "a@x.com"},
		{"ana", "a@x.com"},
	}

	for _, tc := range tests {
		_, err := service.Register(tc.name, tc.email, "secret2", "")

		var conflict *apperrors.ConflictError
		assert.ErrorAs(t, err, &conflict, "register %s/%s", tc.name, tc.email)
	}

	assert.Equal(t, creates, users.createCalls)
	all, _ := users.All()
	assert.Len(t, all, 1)
}

func TestRegisterMissingFields(t *testing.T) {
	service, _ := newAuthService(newFakeUserStore())

	_, err := service.Register("", "a@x.com", "", "")

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"name", "password"}, validation.Missing)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service, _ := newAuthService(newFakeUserStore())

	_, err := service.Register("ana", "a@x.com", "secret1", "superuser")

	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestLoginIssuesTokenMatchingUser(t *testing.T) {
	users := newFakeUserStore()
	service, tokens := newAuthService(users)

	registered, err := service.Register("ana", "a@x.com", "secret1", types.RoleAdmin)
	require.NoError(t, err)

	token, err := service.Login("a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, types.RoleAdmin, claims.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newAuthService(newFakeUserStore())

	_, err := service.Login("nobody@x.com", "secret1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	service, _ := newAuthService(users)

	_, err := service.Register("ana", "a@x.com", "secret1", "")
	require.NoError(t, err)

	_, err = service.Login("a@x.com", "wrong")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}
