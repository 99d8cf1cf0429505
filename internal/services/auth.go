package services

import (
	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/auth"
	"github.com/reelbase-dev/reelbase/internal/models"
	"github.com/reelbase-dev/reelbase/internal/types"
)

type AuthService struct {
	users  UserStore
	hasher *auth.PasswordHasher
	tokens *auth.JWTManager
}

func NewAuthService(users UserStore, hasher *auth.PasswordHasher, tokens *auth.JWTManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new user. Name and email must be globally unique; the
// password is stored only as a bcrypt hash. Role defaults to "user", status
// to "active".
func (s *AuthService) Register(name, email, password, role string) (*models.User, error) {
	var missing []string

	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}

	if role == "" {
		role = types.RoleUser
	}
	if !types.ValidRole(role) {
		return nil, apperrors.MissingFields("role")
	}

	taken, err := s.users.NameOrEmailTaken(name, email, 0)

	if err != nil {
		return nil, err
	}

	if taken {
		return nil, apperrors.Conflict("Email or name already exists")
	}

	hash, err := s.hasher.Hash(password)

	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       types.StatusActive,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token embedding the
// user's id and role.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.ByEmail(email)

	if err != nil {
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID, user.Role)
}
