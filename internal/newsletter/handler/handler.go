package handler

import (
	"net/http"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/newsletter/processor"
	"gepe-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.NewsletterProcessor
	logger    *observability.Logger
}

func New(processor processor.NewsletterProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubscribeRequest is the storefront newsletter signup payload
type SubscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

// HandleSubscribe handles POST /api/newsletter/subscribe
func (h *Handler) HandleSubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Subscribe(ctx, req.Email, req.Source)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UnsubscribeRequest is the payload for cancelling a subscription
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleUnsubscribe handles POST /api/newsletter/unsubscribe
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if _, err := h.processor.Unsubscribe(ctx, req.Email); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tu suscripción fue cancelada correctamente.",
	})
}

// HandleSubscriberCount handles GET /api/newsletter/subscribers/count
func (h *Handler) HandleSubscriberCount(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.processor.ActiveCount(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// HandleListSubscribers handles GET /api/newsletter/subscribers
func (h *Handler) HandleListSubscribers(c *gin.Context) {
	ctx := c.Request.Context()

	subscribers, err := h.processor.ListSubscribers(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscribers)
}
