package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reelbase-dev/reelbase/internal/events"
	"github.com/reelbase-dev/reelbase/internal/services"
	"github.com/reelbase-dev/reelbase/internal/types"
)

type MovieHandler struct {
	movies *services.MovieService
	hub    *events.Hub
}

func NewMovieHandler(movies *services.MovieService, hub *events.Hub) *MovieHandler {
	return &MovieHandler{movies: movies, hub: hub}
}

func (h *MovieHandler) Create(ctx *gin.Context) {
	poster, err := readFormFile(ctx, "poster")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error reading uploaded file"})
		return
	}

	input := services.MovieInput{
		Title:       strings.TrimSpace(ctx.PostForm("title")),
		YoutubeLink: strings.TrimSpace(ctx.PostForm("youtubeLink")),
		UploadLink:  strings.TrimSpace(ctx.PostForm("uploadLink")),
		Category:    strings.TrimSpace(ctx.PostForm("category")),
		Status:      ctx.PostForm("status"),
	}

	movie, err := h.movies.Create(ctx.Request.Context(), input, poster)

	if err != nil {
		writeError(ctx, err, "Movie not found", "Failed to create movie")
		return
	}

	h.hub.Broadcast("movies")

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Movie created successfully",
		"movie":   movieResponse(&services.MovieWithCategory{Movie: *movie}),
	})
}

func (h *MovieHandler) List(ctx *gin.Context) {
	movies, err := h.movies.List()

	if err != nil {
		writeError(ctx, err, "Movie not found", "Failed to fetch movies")
		return
	}

	response := make([]types.MovieResponse, 0, len(movies))

	for i := range movies {
		response = append(response, movieResponse(&movies[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Movies fetched successfully",
		"movies":  response,
	})
}

func (h *MovieHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	movie, err := h.movies.Get(id)

	if err != nil {
		writeError(ctx, err, "Movie not found", "Failed to fetch movie")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Movie fetched successfully",
		"movie":   movieResponse(movie),
	})
}

func (h *MovieHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	poster, err := readFormFile(ctx, "poster")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error reading uploaded file"})
		return
	}

	update := services.MovieUpdate{
		Title:       strings.TrimSpace(ctx.PostForm("title")),
		YoutubeLink: strings.TrimSpace(ctx.PostForm("youtubeLink")),
		UploadLink:  strings.TrimSpace(ctx.PostForm("uploadLink")),
		Category:    strings.TrimSpace(ctx.PostForm("category")),
		Status:      ctx.PostForm("status"),
	}

	movie, err := h.movies.Update(ctx.Request.Context(), id, update, poster)

	if err != nil {
		writeError(ctx, err, "Movie not found", "Failed to update movie")
		return
	}

	h.hub.Broadcast("movies")

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Movie updated successfully",
		"movie":   movieResponse(&services.MovieWithCategory{Movie: *movie}),
	})
}

func (h *MovieHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	if err := h.movies.Delete(id); err != nil {
		writeError(ctx, err, "Movie not found", "Failed to delete movie")
		return
	}

	h.hub.Broadcast("movies")

	ctx.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}
