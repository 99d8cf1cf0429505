package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/media"
	"github.com/reelbase-dev/reelbase/internal/models"
)

// In-memory stand-ins for the gorm stores and the media host.

type fakeUserStore struct {
	nextID      uint
	users       map[uint]*models.User
	createCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.createCalls++
	for _, existing := range f.users {
		if existing.Name == user.Name || existing.Email == user.Email {
			return apperrors.Conflict("Email or name already exists")
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) ByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) ByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserStore) NameOrEmailTaken(name, email string, excludeID uint) (bool, error) {
	for _, user := range f.users {
		if user.ID == excludeID {
			continue
		}
		if user.Name == name || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) All() ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for id := uint(1); id <= f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeCategoryStore struct {
	nextID      uint
	categories  map[uint]*models.Category
	createCalls int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uint]*models.Category)}
}

func (f *fakeCategoryStore) Create(category *models.Category) error {
	f.createCalls++
	f.nextID++
	category.ID = f.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryStore) ByID(id uint) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryStore) All() ([]models.Category, error) {
	categories := make([]models.Category, 0, len(f.categories))
	for id := uint(1); id <= f.nextID; id++ {
		if category, ok := f.categories[id]; ok {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

type fakeBannerStore struct {
	nextID      uint
	banners     map[uint]*models.Banner
	createCalls int
}

func newFakeBannerStore() *fakeBannerStore {
	return &fakeBannerStore{banners: make(map[uint]*models.Banner)}
}

func (f *fakeBannerStore) Create(banner *models.Banner) error {
	f.createCalls++
	f.nextID++
	banner.ID = f.nextID
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = banner.CreatedAt
	stored := *banner
	f.banners[banner.ID] = &stored
	return nil
}

func (f *fakeBannerStore) ByID(id uint) (*models.Banner, error) {
	banner, ok := f.banners[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *banner
	return &copied, nil
}

func (f *fakeBannerStore) All() ([]models.Banner, error) {
	banners := make([]models.Banner, 0, len(f.banners))
	for id := uint(1); id <= f.nextID; id++ {
		if banner, ok := f.banners[id]; ok {
			banners = append(banners, *banner)
		}
	}
	return banners, nil
}

func (f *fakeBannerStore) Delete(id uint) error {
	if _, ok := f.banners[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.banners, id)
	return nil
}

type fakeMovieStore struct {
	nextID      uint
	movies      map[uint]*models.Movie
	createCalls int
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: make(map[uint]*models.Movie)}
}

func (f *fakeMovieStore) Create(movie *models.Movie) error {
	f.createCalls++
	f.nextID++
	movie.ID = f.nextID
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieStore) ByID(id uint) (*models.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *movie
	return &copied, nil
}

func (f *fakeMovieStore) All() ([]models.Movie, error) {
	movies := make([]models.Movie, 0, len(f.movies))
	for id := uint(1); id <= f.nextID; id++ {
		if movie, ok := f.movies[id]; ok {
			movies = append(movies, *movie)
		}
	}
	return movies, nil
}

func (f *fakeMovieStore) Update(movie *models.Movie) error {
	if _, ok := f.movies[movie.ID]; !ok {
		return apperrors.ErrNotFound
	}
	movie.UpdatedAt = time.Now()
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieStore) Delete(id uint) error {
	if _, ok := f.movies[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

type fakeUploader struct {
	uploads     []string // folders, in call order
	destroyed   []string // asset keys, in call order
	failUpload  bool
	failDestroy bool
}

func (f *fakeUploader) Upload(_ context.Context, buf []byte, folder string) (media.Asset, error) {
	if f.failUpload {
		return media.Asset{}, errors.New("quota exceeded")
	}
	f.uploads = append(f.uploads, folder)
	key := fmt.Sprintf("%s/asset-%d", folder, len(f.uploads))
	return media.Asset{URL: "https://media.test/" + key + ".jpg", PublicID: key}, nil
}

func (f *fakeUploader) Destroy(_ context.Context, publicID string) error {
	if f.failDestroy {
		return errors.New("host unreachable")
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}
