package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelbase-dev/reelbase/internal/events"
	"github.com/reelbase-dev/reelbase/internal/services"
	"github.com/reelbase-dev/reelbase/internal/types"
)

type BannerHandler struct {
	banners *services.BannerService
	hub     *events.Hub
}

func NewBannerHandler(banners *services.BannerService, hub *events.Hub) *BannerHandler {
	return &BannerHandler{banners: banners, hub: hub}
}

func (h *BannerHandler) Create(ctx *gin.Context) {
	image, err := readFormFile(ctx, "image")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Error reading uploaded file"})
		return
	}

	banner, err := h.banners.Create(ctx.Request.Context(), image)

	if err != nil {
		writeError(ctx, err, "Banner not found", "Failed to create banner")
		return
	}

	h.hub.Broadcast("banners")

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Banner created successfully",
		"banner":  bannerResponse(banner),
	})
}

func (h *BannerHandler) List(ctx *gin.Context) {
	banners, err := h.banners.List()

	if err != nil {
		writeError(ctx, err, "Banner not found", "Failed to fetch banners")
		return
	}

	response := make([]types.BannerResponse, 0, len(banners))

	for i := range banners {
		response = append(response, bannerResponse(&banners[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Banners fetched successfully",
		"banners": response,
	})
}

func (h *BannerHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	banner, err := h.banners.Get(id)

	if err != nil {
		writeError(ctx, err, "Banner not found", "Failed to fetch banner")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Banner fetched successfully",
		"banner":  bannerResponse(banner),
	})
}

func (h *BannerHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	if err := h.banners.Delete(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err, "Banner not found", "Failed to delete banner")
		return
	}

	h.hub.Broadcast("banners")

	ctx.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}
