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

func seedUsers(t *testing.T, users *fakeUserStore, names ...string) {
	t.Helper()

	service, _ := newAuthService(users)

	for _, name := range names {
		_, err := service.Register(name, name+"@x.com", "secret1", "")
		require.NoError(t, err)
	}
}

func TestUserUpdateReChecksUniquenessExcludingSelf(t *testing.T) {
	users := newFakeUserStore()
	seedUsers(t, users, "ana", "bob")

	service := NewUserService(users, auth.NewPasswordHasher(bcrypt.MinCost))

	// Re-submitting your own name is not a conflict.
	updated, err := service.Update(1, UserUpdate{Name: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana", updated.Name)

	// Taking another user's name is.
	_, err = service.Update(1, UserUpdate{Name: "bob"})
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	users := newFakeUserStore()
	seedUsers(t, users, "ana")

	before, err := users.ByID(1)
	require.NoError(t, err)

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	service := NewUserService(users, hasher)

	updated, err := service.Update(1, UserUpdate{Password: "newsecret"})
	require.NoError(t, err)

	assert.NotEqual(t, "newsecret", updated.PasswordHash)
	assert.NotEqual(t, before.PasswordHash, updated.PasswordHash)
	assert.True(t, hasher.Compare(updated.PasswordHash, "newsecret"))
}

func TestUserUpdateRoleAndStatus(t *testing.T) {
	users := newFakeUserStore()
	seedUsers(t, users, "ana")

	service := NewUserService(users, auth.NewPasswordHasher(bcrypt.MinCost))

	updated, err := service.Update(1, UserUpdate{Role: types.RoleAdmin, Status: types.StatusInactive})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, updated.Role)
	assert.Equal(t, types.StatusInactive, updated.Status)

	_, err = service.Update(1, UserUpdate{Status: "frozen"})
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUserDeleteTwice(t *testing.T) {
	users := newFakeUserStore()
	seedUsers(t, users, "ana")

	service := NewUserService(users, auth.NewPasswordHasher(bcrypt.MinCost))

	require.NoError(t, service.Delete(1))
	assert.True(t, errors.Is(service.Delete(1), apperrors.ErrNotFound))
}

func TestUserUpdateMissingUser(t *testing.T) {
	service := NewUserService(newFakeUserStore(), auth.NewPasswordHasher(bcrypt.MinCost))

	_, err := service.Update(99, UserUpdate{Name: "ghost"})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
