package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reelbase-dev/reelbase/internal/apperrors"
	"github.com/reelbase-dev/reelbase/internal/models"
	"github.com/reelbase-dev/reelbase/internal/services"
	"github.com/reelbase-dev/reelbase/internal/types"
)

// writeError translates a service failure into the matching status and
// message. notFoundMessage names the resource; fallbackMessage covers
// unexpected faults.
func writeError(ctx *gin.Context, err error, notFoundMessage, fallbackMessage string) {
	var validation *apperrors.ValidationError
	var conflict *apperrors.ConflictError
	var upload *apperrors.UploadError

	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": validation.Error(), "missing": validation.Missing})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": conflict.Message})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFoundMessage})
	case errors.As(err, &upload):
		log.Printf("Media upload failed: %v", upload.Err)
		ctx.JSON(http.StatusBadGateway, gin.H{"message": "Failed to upload image"})
	default:
		log.Printf("%s: %v", fallbackMessage, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": fallbackMessage})
	}
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return 0, false
	}

	return uint(id), true
}

// readFormFile returns the named multipart file's bytes, or nil when the
// field is absent.
func readFormFile(ctx *gin.Context, field string) ([]byte, error) {
	header, err := ctx.FormFile(field)

	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, err := header.Open()

	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func userResponse(user *models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func categoryResponse(category *models.Category) types.CategoryResponse {
	return types.CategoryResponse{
		ID:        category.ID,
		Title:     category.Title,
		Image:     category.ImageURL,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func bannerResponse(banner *models.Banner) types.BannerResponse {
	return types.BannerResponse{
		ID:        banner.ID,
		ImageURL:  banner.ImageURL,
		CreatedAt: banner.CreatedAt,
	}
}

func movieResponse(movie *services.MovieWithCategory) types.MovieResponse {
	return types.MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Poster:        movie.PosterURL,
		YoutubeLink:   movie.YoutubeLink,
		UploadLink:    movie.UploadLink,
		Status:        movie.Status,
		Category:      movie.Category,
		CategoryTitle: movie.CategoryTitle,
		CreatedAt:     movie.CreatedAt,
		UpdatedAt:     movie.UpdatedAt,
	}
}
