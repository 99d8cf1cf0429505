package services

import (
	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/auth"
	"github.com/reelbase-dev/reelbase/internal/models"
	"github.com/reelbase-dev/reelbase/internal/types"
)

type UserService struct {
	users  UserStore
	hasher *auth.PasswordHasher
}

func NewUserService(users UserStore, hasher *auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// UserUpdate carries the fields of a user update request. Empty fields are
// left untouched.
type UserUpdate struct {
	Name     string
	Email    string
	Password string
	Role     string
	Status   string
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.All()
}

func (s *UserService) Get(id uint) (*models.User, error) {
	return s.users.ByID(id)
}

func (s *UserService) Update(id uint, update UserUpdate) (*models.User, error) {
	user, err := s.users.ByID(id)

	if err != nil {
		return nil, err
	}

	name := user.Name
	email := user.Email

	if update.Name != "" {
		name = update.Name
	}
	if update.Email != "" {
		email = update.Email
	}

	if name != user.Name || email != user.Email {
		taken, err := s.users.NameOrEmailTaken(name, email, user.ID)

		if err != nil {
			return nil, err
		}

		if taken {
			return nil, apperrors.Conflict("Email or name already exists")
		}
	}

	user.Name = name
	user.Email = email

	if update.Password != "" {
		hash, err := s.hasher.Hash(update.Password)

		if err != nil {
			return nil, err
		}

		user.PasswordHash = hash
	}

	if update.Role != "" {
		if !types.ValidRole(update.Role) {
			return nil, apperrors.MissingFields("role")
		}
		user.Role = update.Role
	}

	if update.Status != "" {
		if !types.ValidStatus(update.Status) {
			return nil, apperrors.MissingFields("status")
		}
		user.Status = update.Status
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(id uint) error {
	return s.users.Delete(id)
}
