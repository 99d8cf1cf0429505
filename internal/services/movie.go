package services

import (
	"context"
	"strconv"

	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/media"
	"github.com/reelbase-dev/reelbase/internal/models"
	"github.com/reelbase-dev/reelbase/internal/types"
)

const movieFolder = "movies"

type MovieService struct {
	movies     MovieStore
	categories CategoryStore
	uploader   media.Uploader
}

func NewMovieService(movies MovieStore, categories CategoryStore, uploader media.Uploader) *MovieService {
	return &MovieService{movies: movies, categories: categories, uploader: uploader}
}

// MovieInput carries the fields of a movie create request.
type MovieInput struct {
	Title       string
	YoutubeLink string
	UploadLink  string
	Category    string
	Status      string
}

// MovieUpdate carries the fields of a movie update request. Empty fields are
// left untouched.
type MovieUpdate struct {
	Title       string
	YoutubeLink string
	UploadLink  string
	Category    string
	Status      string
}

// MovieWithCategory pairs a movie with the resolved title of its category
// reference; the title is empty when the reference does not resolve.
type MovieWithCategory struct {
	models.Movie
	CategoryTitle string
}

// Create validates the required fields, uploads the poster if one was
// supplied, and persists the movie. The poster is optional; everything else
// is required.
func (s *MovieService) Create(ctx context.Context, input MovieInput, poster []byte) (*models.Movie, error) {
	var missing []string

	if input.Title == "" {
		missing = append(missing, "title")
	}
	if input.YoutubeLink == "" {
		missing = append(missing, "youtubeLink")
	}
	if input.UploadLink == "" {
		missing = append(missing, "uploadLink")
	}
	if input.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}

	status := input.Status

	if status == "" {
		status = types.StatusActive
	}
	if !types.ValidStatus(status) {
		return nil, apperrors.MissingFields("status")
	}

	movie := &models.Movie{
		Title:       input.Title,
		YoutubeLink: input.YoutubeLink,
		UploadLink:  input.UploadLink,
		Category:    input.Category,
		Status:      status,
	}

	if len(poster) > 0 {
		asset, err := s.uploader.Upload(ctx, poster, movieFolder)

		if err != nil {
			return nil, &apperrors.UploadError{Err: err}
		}

		movie.PosterURL = asset.URL
		movie.PosterAsset = asset.PublicID
	}

	if err := s.movies.Create(movie); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieService) List() ([]MovieWithCategory, error) {
	movies, err := s.movies.All()

	if err != nil {
		return nil, err
	}

	titles, err := s.categoryTitles()

	if err != nil {
		return nil, err
	}

	expanded := make([]MovieWithCategory, 0, len(movies))

	for _, movie := range movies {
		expanded = append(expanded, MovieWithCategory{
			Movie:         movie,
			CategoryTitle: titles[movie.Category],
		})
	}

	return expanded, nil
}

func (s *MovieService) Get(id uint) (*MovieWithCategory, error) {
	movie, err := s.movies.ByID(id)

	if err != nil {
		return nil, err
	}

	titles, err := s.categoryTitles()

	if err != nil {
		return nil, err
	}

	return &MovieWithCategory{Movie: *movie, CategoryTitle: titles[movie.Category]}, nil
}

// Update merges the supplied fields into the stored movie. When a new poster
// is supplied the upload completes before anything is persisted, so the
// stored URL can never point at an upload that was still in flight when the
// response went out.
func (s *MovieService) Update(ctx context.Context, id uint, update MovieUpdate, poster []byte) (*models.Movie, error) {
	movie, err := s.movies.ByID(id)

	if err != nil {
		return nil, err
	}

	if len(poster) > 0 {
		asset, err := s.uploader.Upload(ctx, poster, movieFolder)

		if err != nil {
			return nil, &apperrors.UploadError{Err: err}
		}

		movie.PosterURL = asset.URL
		movie.PosterAsset = asset.PublicID
	}

	if update.Title != "" {
		movie.Title = update.Title
	}
	if update.YoutubeLink != "" {
		movie.YoutubeLink = update.YoutubeLink
	}
	if update.UploadLink != "" {
		movie.UploadLink = update.UploadLink
	}
	if update.Category != "" {
		movie.Category = update.Category
	}
	if update.Status != "" {
		if !types.ValidStatus(update.Status) {
			return nil, apperrors.MissingFields("status")
		}
		movie.Status = update.Status
	}

	if err := s.movies.Update(movie); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieService) Delete(id uint) error {
	return s.movies.Delete(id)
}

// categoryTitles indexes the known categories by the string form of their id.
// Movie category references are soft, so misses are expected.
func (s *MovieService) categoryTitles() (map[string]string, error) {
	categories, err := s.categories.All()

	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(categories))

	for _, category := range categories {
		titles[strconv.FormatUint(uint64(category.ID), 10)] = category.Title
	}

	return titles, nil
}
