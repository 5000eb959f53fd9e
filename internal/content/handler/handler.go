package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/content/processor"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ContentProcessor
	logger    *observability.Logger
}

func New(processor processor.ContentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListActiveHeroMedia handles GET /api/hero-media
func (h *Handler) HandleListActiveHeroMedia(c *gin.Context) {
	ctx := c.Request.Context()

	slides, err := h.processor.ListActiveHeroMedia(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, slides)
}

// HandleListAllHeroMedia handles GET /api/hero-media/admin
func (h *Handler) HandleListAllHeroMedia(c *gin.Context) {
	ctx := c.Request.Context()

	slides, err := h.processor.ListAllHeroMedia(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, slides)
}

// CreateHeroMediaRequest is the admin payload for a new hero slide. Only the
// image URL is mandatory; everything else has a display default.
type CreateHeroMediaRequest struct {
	Title              *string `json:"title"`
	Subtitle           *string `json:"subtitle"`
	Highlight          *string `json:"highlight"`
	ImageURL           string  `json:"image_url"`
	VideoURL           *string `json:"video_url"`
	LinkURL            *string `json:"link_url"`
	ImageFocusX        *int64  `json:"image_focus_x"`
	ImageFocusY        *int64  `json:"image_focus_y"`
	ImageZoom          *int64  `json:"image_zoom"`
	IsActive           *bool   `json:"is_active"`
	DisplayOrder       int64   `json:"display_order"`
	ShowOverlay        *bool   `json:"show_overlay"`
	AspectRatioDesktop *string `json:"aspect_ratio_desktop"`
	AspectRatioMobile  *string `json:"aspect_ratio_mobile"`
}

// HandleCreateHeroMedia handles POST /api/hero-media/admin
func (h *Handler) HandleCreateHeroMedia(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateHeroMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	slide, err := h.processor.CreateHeroMedia(ctx, processor.CreateHeroMediaRequest{
		Title:              stringOr(req.Title, ""),
		Subtitle:           req.Subtitle,
		Highlight:          req.Highlight,
		ImageURL:           req.ImageURL,
		VideoURL:           req.VideoURL,
		LinkURL:            req.LinkURL,
		ImageFocusX:        int64Or(req.ImageFocusX, 50),
		ImageFocusY:        int64Or(req.ImageFocusY, 50),
		ImageZoom:          int64Or(req.ImageZoom, 100),
		IsActive:           boolOr(req.IsActive, true),
		DisplayOrder:       req.DisplayOrder,
		ShowOverlay:        boolOr(req.ShowOverlay, true),
		AspectRatioDesktop: stringOr(req.AspectRatioDesktop, "16:6"),
		AspectRatioMobile:  stringOr(req.AspectRatioMobile, "4:3"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slide)
}

// UpdateHeroMediaRequest is a partial update; absent fields stay untouched
type UpdateHeroMediaRequest struct {
	Title              *string `json:"title"`
	Subtitle           *string `json:"subtitle"`
	Highlight          *string `json:"highlight"`
	ImageURL           *string `json:"image_url"`
	VideoURL           *string `json:"video_url"`
	LinkURL            *string `json:"link_url"`
	ImageFocusX        *int64  `json:"image_focus_x"`
	ImageFocusY        *int64  `json:"image_focus_y"`
	ImageZoom          *int64  `json:"image_zoom"`
	IsActive           *bool   `json:"is_active"`
	DisplayOrder       *int64  `json:"display_order"`
	ShowOverlay        *bool   `json:"show_overlay"`
	AspectRatioDesktop *string `json:"aspect_ratio_desktop"`
	AspectRatioMobile  *string `json:"aspect_ratio_mobile"`
}

// HandleUpdateHeroMedia handles PUT /api/hero-media/admin/:hero_id
func (h *Handler) HandleUpdateHeroMedia(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("hero_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero media id"})
		return
	}

	var req UpdateHeroMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	slide, err := h.processor.UpdateHeroMedia(ctx, id, store.UpdateHeroMediaParams{
		Title:              req.Title,
		Subtitle:           req.Subtitle,
		Highlight:          req.Highlight,
		ImageURL:           req.ImageURL,
		VideoURL:           req.VideoURL,
		LinkURL:            req.LinkURL,
		ImageFocusX:        req.ImageFocusX,
		ImageFocusY:        req.ImageFocusY,
		ImageZoom:          req.ImageZoom,
		IsActive:           req.IsActive,
		DisplayOrder:       req.DisplayOrder,
		ShowOverlay:        req.ShowOverlay,
		AspectRatioDesktop: req.AspectRatioDesktop,
		AspectRatioMobile:  req.AspectRatioMobile,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, slide)
}

// HandleDeleteHeroMedia handles DELETE /api/hero-media/admin/:hero_id
func (h *Handler) HandleDeleteHeroMedia(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("hero_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero media id"})
		return
	}

	if err := h.processor.DeleteHeroMedia(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleUploadHeroAsset handles POST /api/hero-media/admin/upload
func (h *Handler) HandleUploadHeroAsset(c *gin.Context) {
	ctx := c.Request.Context()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "failed to get file from request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de archivo no válido"})
		return
	}

	asset, err := h.processor.UploadHeroAsset(ctx, file, contentType)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// HandleListActivePromoBanners handles GET /api/promo-banners
func (h *Handler) HandleListActivePromoBanners(c *gin.Context) {
	ctx := c.Request.Context()

	banners, err := h.processor.ListActivePromoBanners(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, banners)
}

// HandleListAllPromoBanners handles GET /api/promo-banners/admin
func (h *Handler) HandleListAllPromoBanners(c *gin.Context) {
	ctx := c.Request.Context()

	banners, err := h.processor.ListAllPromoBanners(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, banners)
}

// CreatePromoBannerRequest is the admin payload for a new announcement message
type CreatePromoBannerRequest struct {
	Message      string `json:"message" binding:"required,min=1,max=200"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int64  `json:"display_order"`
}

// HandleCreatePromoBanner handles POST /api/promo-banners/admin
func (h *Handler) HandleCreatePromoBanner(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreatePromoBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	banner, err := h.processor.CreatePromoBanner(ctx, req.Message, boolOr(req.IsActive, true), req.DisplayOrder)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, banner)
}

// UpdatePromoBannerRequest is a partial update; absent fields stay untouched
type UpdatePromoBannerRequest struct {
	Message      *string `json:"message"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int64  `json:"display_order"`
}

// HandleUpdatePromoBanner handles PUT /api/promo-banners/admin/:banner_id
func (h *Handler) HandleUpdatePromoBanner(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("banner_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid banner id"})
		return
	}

	var req UpdatePromoBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	banner, err := h.processor.UpdatePromoBanner(ctx, id, store.UpdatePromoBannerParams{
		Message:      req.Message,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, banner)
}

// HandleDeletePromoBanner handles DELETE /api/promo-banners/admin/:banner_id
func (h *Handler) HandleDeletePromoBanner(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("banner_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid banner id"})
		return
	}

	if err := h.processor.DeletePromoBanner(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleGetBannerSettings handles GET /api/promo-banners/settings
func (h *Handler) HandleGetBannerSettings(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.processor.GetBannerSettings(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateBannerSettingsRequest carries the new rotation interval
type UpdateBannerSettingsRequest struct {
	ChangeIntervalSeconds int64 `json:"change_interval_seconds" binding:"required"`
}

// HandleUpdateBannerSettings handles PUT /api/promo-banners/admin/settings
func (h *Handler) HandleUpdateBannerSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateBannerSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	settings, err := h.processor.UpdateBannerSettings(ctx, req.ChangeIntervalSeconds)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func int64Or(v *int64, fallback int64) int64 {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
