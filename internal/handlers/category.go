package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reelbase-dev/reelbase/internal/events"
	"github.com/reelbase-dev/reelbase/internal/services"
	"github.com/reelbase-dev/reelbase/internal/types"
)

type CategoryHandler struct {
	categories *services.CategoryService
	hub        *events.Hub
}

func NewCategoryHandler(categories *services.CategoryService, hub *events.Hub) *CategoryHandler {
	return &CategoryHandler{categories: categories, hub: hub}
}

func (h *CategoryHandler) Create(ctx *gin.Context) {
	image, err := readFormFile(ctx, "image")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error reading uploaded file"})
		return
	}

	title := strings.TrimSpace(ctx.PostForm("title"))

	category, err := h.categories.Create(ctx.Request.Context(), title, image)

	if err != nil {
		writeError(ctx, err, "Category not found", "Failed to create category")
		return
	}

	h.hub.Broadcast("categories")

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": categoryResponse(category),
	})
}

func (h *CategoryHandler) List(ctx *gin.Context) {
	categories, err := h.categories.List()

	if err != nil {
		writeError(ctx, err, "Category not found", "Failed to fetch categories")
		return
	}

	response := make([]types.CategoryResponse, 0, len(categories))

	for i := range categories {
		response = append(response, categoryResponse(&categories[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":    "Categories fetched successfully",
		"categories": response,
	})
}
