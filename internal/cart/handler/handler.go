package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/cart/processor"
	"gepe-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CartProcessor
	logger    *observability.Logger
}

func New(processor processor.CartProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListItems handles GET /api/cart/items
func (h *Handler) HandleListItems(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.processor.ListItems(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddItemRequest is the payload for putting a product in the cart
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity"`
}

// HandleAddItem handles POST /api/cart/items
func (h *Handler) HandleAddItem(c *gin.Context) {
	ctx := c.Request.Context()

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	item, err := h.processor.AddItem(ctx, req.ProductID, req.Quantity)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// HandleRemoveItem handles DELETE /api/cart/items/:item_id
func (h *Handler) HandleRemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El ID debe ser un número"))
		return
	}

	if err := h.processor.RemoveItem(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// HandleClear handles DELETE /api/cart/items
func (h *Handler) HandleClear(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.processor.Clear(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
