package handler

import (
	"net/http"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/contact/processor"
	"gepe-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ContactProcessor
	logger    *observability.Logger
}

func New(processor processor.ContactProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ContactRequest is the storefront contact form payload. Field names follow
// the storefront's Spanish form fields.
type ContactRequest struct {
	Name    string `json:"nombre" binding:"required,min=1,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"mensaje" binding:"required,min=1,max=2000"`
}

// HandleSubmitContact handles POST /api/contact
func (h *Handler) HandleSubmitContact(c *gin.Context) {
	ctx := c.Request.Context()

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err := h.processor.SubmitContact(ctx, processor.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mensaje enviado"})
}

// RegretRequest is the statutory purchase-withdrawal form payload. The
// storefront posts camelCase keys.
type RegretRequest struct {
	FirstName      string `json:"nombre" binding:"required"`
	LastName       string `json:"apellido" binding:"required"`
	DNI            string `json:"dni" binding:"required"`
	City           string `json:"ciudad" binding:"required"`
	OrderNumber    string `json:"numeroPedido" binding:"required"`
	PurchasedItems string `json:"articulosComprados" binding:"required"`
	Phone          string `json:"telefono" binding:"required"`
	Email          string `json:"correo" binding:"required,email"`
	Reason         string `json:"motivo" binding:"required"`
}

// HandleRegretRequest handles POST /api/returns/regret
func (h *Handler) HandleRegretRequest(c *gin.Context) {
	ctx := c.Request.Context()

	var req RegretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err := h.processor.SubmitRegret(ctx, processor.RegretRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DNI:            req.DNI,
		City:           req.City,
		OrderNumber:    req.OrderNumber,
		PurchasedItems: req.PurchasedItems,
		Phone:          req.Phone,
		Email:          req.Email,
		Reason:         req.Reason,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
