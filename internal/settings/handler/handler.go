package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/observability"
	"gepe-server/internal/settings/processor"
	"gepe-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SettingsProcessor
	logger    *observability.Logger
}

func New(processor processor.SettingsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListNotificationEmails handles GET /api/settings/notification-emails
func (h *Handler) HandleListNotificationEmails(c *gin.Context) {
	ctx := c.Request.Context()

	emails, err := h.processor.ListNotificationEmails(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, emails)
}

// AddNotificationEmailRequest is the payload for registering a sale
// notification address
type AddNotificationEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleAddNotificationEmail handles POST /api/settings/notification-emails
func (h *Handler) HandleAddNotificationEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req AddNotificationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	email, err := h.processor.AddNotificationEmail(ctx, req.Email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, email)
}

// HandleDeleteNotificationEmail handles DELETE /api/settings/notification-emails/:email_id
func (h *Handler) HandleDeleteNotificationEmail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("email_id"), 10, 64)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El ID debe ser un número"))
		return
	}

	if err := h.processor.DeleteNotificationEmail(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Correo de notificación eliminado exitosamente"})
}

// HandleEmailConfigStatus handles GET /api/settings/email-config-status
func (h *Handler) HandleEmailConfigStatus(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, h.processor.GetEmailConfigStatus(ctx))
}

// HandleGetPriceSettings handles GET /api/settings/product-prices
func (h *Handler) HandleGetPriceSettings(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := h.processor.GetPriceSettings(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdatePriceSettingsRequest carries the jersey tier prices to change.
// Absent fields keep their current value.
type UpdatePriceSettingsRequest struct {
	PriceHincha      *float64 `json:"price_hincha" binding:"omitempty,gt=0"`
	PriceJugador     *float64 `json:"price_jugador" binding:"omitempty,gt=0"`
	PriceProfesional *float64 `json:"price_profesional" binding:"omitempty,gt=0"`
}

// HandleUpdatePriceSettings handles PUT /api/settings/product-prices
func (h *Handler) HandleUpdatePriceSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdatePriceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	settings, err := h.processor.UpdatePriceSettings(ctx, store.UpdatePriceSettingsParams{
		PriceHincha:      req.PriceHincha,
		PriceJugador:     req.PriceJugador,
		PriceProfesional: req.PriceProfesional,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
