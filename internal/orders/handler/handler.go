package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/observability"
	"gepe-server/internal/orders/processor"
	"gepe-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.OrdersProcessor
	logger    *observability.Logger
}

func New(processor processor.OrdersProcessor, logger *observability.Logger) Handler {
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

type CreateOrderItemRequest struct {
	ProductID   *int64  `json:"product_id"`
	ProductName string  `json:"product_name" binding:"required,min=1,max=200"`
	ProductSize *string `json:"product_size" binding:"omitempty,max=20"`
	Quantity    int64   `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

type CreateOrderRequest struct {
	CustomerEmail     string                   `json:"customer_email" binding:"required,email"`
	CustomerName      *string                  `json:"customer_name" binding:"omitempty,max=200"`
	CustomerPhone     *string                  `json:"customer_phone" binding:"omitempty,max=50"`
	CustomerDNI       *string                  `json:"customer_dni" binding:"omitempty,max=20"`
	ShippingMethod    *string                  `json:"shipping_method" binding:"omitempty,max=100"`
	ShippingAddress   *string                  `json:"shipping_address" binding:"omitempty,max=300"`
	ShippingCity      *string                  `json:"shipping_city" binding:"omitempty,max=100"`
	ShippingProvince  *string                  `json:"shipping_province" binding:"omitempty,max=100"`
	ExternalReference *string                  `json:"external_reference" binding:"omitempty,max=200"`
	PaymentID         *string                  `json:"payment_id" binding:"omitempty,max=200"`
	Items             []CreateOrderItemRequest `json:"items" binding:"required,dive"`
}

// HandleCreateOrder handles POST /api/orders
func (h *Handler) HandleCreateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.CreateOrderParams{
		CustomerEmail:     req.CustomerEmail,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		CustomerDNI:       req.CustomerDNI,
		ShippingMethod:    req.ShippingMethod,
		ShippingAddress:   req.ShippingAddress,
		ShippingCity:      req.ShippingCity,
		ShippingProvince:  req.ShippingProvince,
		ExternalReference: req.ExternalReference,
		PaymentID:         req.PaymentID,
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, processor.CreateOrderItemParams{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSize: item.ProductSize,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order, err := h.processor.CreateOrder(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// HandleListOrders handles GET /api/orders
func (h *Handler) HandleListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	params := store.ListOrdersParams{}
	if status := c.Query("status_filter"); status != "" {
		params.Status = &status
	}
	if search := c.Query("search"); search != "" {
		params.Search = &search
	}
	if raw := c.Query("skip"); raw != "" {
		if skip, err := strconv.Atoi(raw); err == nil && skip > 0 {
			params.Offset = skip
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	orders, err := h.processor.ListOrders(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// HandleListCustomerOrders handles GET /api/orders/user/:user_email
func (h *Handler) HandleListCustomerOrders(c *gin.Context) {
	ctx := c.Request.Context()

	var skip, limit int64
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			skip = parsed
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	orders, err := h.processor.ListCustomerOrders(ctx, c.Param("user_email"), limit, skip)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// HandleGetOrder handles GET /api/orders/:order_id
func (h *Handler) HandleGetOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	order, err := h.processor.GetOrder(ctx, id, c.Query("email"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleGetOrderByNumber handles GET /api/orders/by-number/:order_number
func (h *Handler) HandleGetOrderByNumber(c *gin.Context) {
	ctx := c.Request.Context()

	order, err := h.processor.GetOrderByNumber(ctx, c.Param("order_number"), c.Query("email"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateOrderRequest struct {
	Status                *string `json:"status" binding:"omitempty,max=50"`
	ProductionStatus      *string `json:"production_status" binding:"omitempty,max=50"`
	PaymentID             *string `json:"payment_id" binding:"omitempty,max=200"`
	CustomerEmail         *string `json:"customer_email" binding:"omitempty,email"`
	CustomerName          *string `json:"customer_name" binding:"omitempty,max=200"`
	CustomerPhone         *string `json:"customer_phone" binding:"omitempty,max=50"`
	CustomerDNI           *string `json:"customer_dni" binding:"omitempty,max=20"`
	ShippingAddress       *string `json:"shipping_address" binding:"omitempty,max=300"`
	ShippingCity          *string `json:"shipping_city" binding:"omitempty,max=100"`
	ShippingProvince      *string `json:"shipping_province" binding:"omitempty,max=100"`
	TrackingCode          *string `json:"tracking_code" binding:"omitempty,max=100"`
	TrackingCompany       *string `json:"tracking_company" binding:"omitempty,max=100"`
	TrackingBranchAddress *string `json:"tracking_branch_address" binding:"omitempty,max=300"`
	TrackingAttachmentURL *string `json:"tracking_attachment_url" binding:"omitempty,max=500"`
}

// HandleUpdateOrder handles PATCH /api/orders/:order_id
func (h *Handler) HandleUpdateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	order, err := h.processor.UpdateOrder(ctx, id, store.UpdateOrderParams{
		Status:                req.Status,
		ProductionStatus:      req.ProductionStatus,
		PaymentID:             req.PaymentID,
		CustomerEmail:         req.CustomerEmail,
		CustomerName:          req.CustomerName,
		CustomerPhone:         req.CustomerPhone,
		CustomerDNI:           req.CustomerDNI,
		ShippingAddress:       req.ShippingAddress,
		ShippingCity:          req.ShippingCity,
		ShippingProvince:      req.ShippingProvince,
		TrackingCode:          req.TrackingCode,
		TrackingCompany:       req.TrackingCompany,
		TrackingBranchAddress: req.TrackingBranchAddress,
		TrackingAttachmentURL: req.TrackingAttachmentURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleProductionOrders handles GET /api/orders/production
func (h *Handler) HandleProductionOrders(c *gin.Context) {
	ctx := c.Request.Context()

	board, err := h.processor.ProductionOrders(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// HandleProductionStats handles GET /api/orders/stats/production
func (h *Handler) HandleProductionStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.ProductionStatistics(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HandlePaymentStats handles GET /api/orders/stats/payments
func (h *Handler) HandlePaymentStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.PaymentStatistics(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type UpdateProductionStatusRequest struct {
	ProductionStatus string `json:"production_status" binding:"required"`
}

// HandleUpdateProductionStatus handles PATCH /api/orders/:order_id/production-status
func (h *Handler) HandleUpdateProductionStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	var req UpdateProductionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	order, err := h.processor.UpdateProductionStatus(ctx, id, req.ProductionStatus)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// HandleProductionHistory handles GET /api/orders/:order_id/production-history
func (h *Handler) HandleProductionHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	events, err := h.processor.ProductionHistory(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// HandleFinishProduction handles POST /api/orders/:order_id/finish-production
func (h *Handler) HandleFinishProduction(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	result, err := h.processor.FinishProduction(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
