package store

import (
	"errors"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/models"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	err := s.db.Create(user).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("Email or name already exists")
	}

	return err
}

func (s *UserStore) ByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) ByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// NameOrEmailTaken reports whether another user already holds the given name
// or email. excludeID skips the user being updated; pass 0 at registration.
func (s *UserStore) NameOrEmailTaken(name, email string, excludeID uint) (bool, error) {
	var count int64

	query := s.db.Model(&models.User{}).Where("name = ? OR email = ?", name, email)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *UserStore) All() ([]models.User, error) {
	var users []models.User

	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserStore) Update(user *models.User) error {
	err := s.db.Save(user).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("Email or name already exists")
	}

	return err
}

func (s *UserStore) Delete(id uint) error {
	result := s.db.Delete(&models.User{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
