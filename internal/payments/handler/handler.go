package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/observability"
	"gepe-server/internal/payments/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.PaymentsProcessor
	logger    *observability.Logger
}

func New(processor processor.PaymentsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El ID debe ser un número"))
		return 0, false
	}
	return id, true
}

// HandleConfigStatus handles GET /api/config-status. Debugging endpoint to
// verify the MercadoPago credentials made it into the environment.
func (h *Handler) HandleConfigStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.ConfigStatus())
}

type PreferenceItemRequest struct {
	ID          string  `json:"id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	PictureURL  *string `json:"picture_url"`
	CategoryID  *string `json:"category_id"`
	Quantity    int64   `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	CurrencyID  *string `json:"currency_id"`
}

type PayerIdentificationRequest struct {
	Type   string `json:"type" binding:"required"`
	Number string `json:"number" binding:"required"`
}

type PreferencePayerRequest struct {
	Email          string                      `json:"email" binding:"required,email"`
	FirstName      *string                     `json:"first_name"`
	LastName       *string                     `json:"last_name"`
	Phone          *string                     `json:"phone"`
	Identification *PayerIdentificationRequest `json:"identification"`
}

type CreatePreferenceRequest struct {
	Items             []PreferenceItemRequest `json:"items" binding:"required,min=1,dive"`
	Payer             PreferencePayerRequest  `json:"payer" binding:"required"`
	ExternalReference *string                 `json:"external_reference"`
	NotificationURL   *string                 `json:"notification_url"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// HandleCreatePreference handles POST /api/create_preference
func (h *Handler) HandleCreatePreference(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.CreatePreferenceParams{
		ExternalReference: deref(req.ExternalReference),
		NotificationURL:   deref(req.NotificationURL),
		Payer: &processor.PreferencePayerParams{
			Name:    deref(req.Payer.FirstName),
			Surname: deref(req.Payer.LastName),
			Email:   req.Payer.Email,
			Phone:   deref(req.Payer.Phone),
		},
	}
	if req.Payer.Identification != nil {
		params.Payer.IdentificationType = req.Payer.Identification.Type
		params.Payer.IdentificationNumber = req.Payer.Identification.Number
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, processor.PreferenceItemParams{
			ID:          item.ID,
			Title:       item.Title,
			Description: deref(item.Description),
			PictureURL:  deref(item.PictureURL),
			CategoryID:  deref(item.CategoryID),
			Quantity:    item.Quantity,
			CurrencyID:  deref(item.CurrencyID),
			UnitPrice:   item.UnitPrice,
		})
	}

	result, err := h.processor.CreatePreference(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleWebhook handles POST /api/webhook. MercadoPago retries notifications
// that do not get a 200 back, so processing failures are reported in the
// body instead of the status code.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	topic := c.Query("topic")
	if topic == "" {
		topic = c.Query("type")
	}
	resourceID := c.Query("id")
	if resourceID == "" {
		resourceID = c.Query("data.id")
	}

	result := h.processor.ProcessWebhook(ctx, topic, resourceID)
	c.JSON(http.StatusOK, result)
}

// HandleSyncPayments handles POST /api/payments/sync
func (h *Handler) HandleSyncPayments(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.processor.SyncPayments(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleSyncOrderPaymentStatuses handles POST /api/orders/sync-payment-status
func (h *Handler) HandleSyncOrderPaymentStatuses(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.processor.SyncOrderPaymentStatuses(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleListPayments handles GET /api/payments
func (h *Handler) HandleListPayments(c *gin.Context) {
	ctx := c.Request.Context()

	params := processor.ListPaymentsParams{}
	if status := c.Query("status_filter"); status != "" {
		params.StatusFilter = &status
	}
	if raw := c.Query("skip"); raw != "" {
		if skip, err := strconv.Atoi(raw); err == nil && skip > 0 {
			params.Skip = skip
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	payments, err := h.processor.ListPayments(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// HandleGetPayment handles GET /api/payments/:payment_id
func (h *Handler) HandleGetPayment(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "payment_id")
	if !ok {
		return
	}

	detail, err := h.processor.GetPaymentDetail(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// HandleRefundPayment handles POST /api/payments/:payment_id/refund. The
// amount query parameter selects a partial refund; without it the full
// remaining amount is refunded.
func (h *Handler) HandleRefundPayment(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "payment_id")
	if !ok {
		return
	}

	var amount *float64
	if raw := c.Query("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El monto debe ser un número"))
			return
		}
		amount = &parsed
	}

	result, err := h.processor.RefundPayment(ctx, id, amount)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleRecoverOrder handles POST /api/payments/:payment_id/recover-order.
// The path parameter is the MercadoPago payment id, not the local row id:
// recovery targets payments whose order was never created.
func (h *Handler) HandleRecoverOrder(c *gin.Context) {
	ctx := c.Request.Context()

	mpPaymentID := c.Param("payment_id")

	result, err := h.processor.RecoverOrder(ctx, mpPaymentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
