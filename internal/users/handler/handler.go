package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/observability"
	"gepe-server/internal/users/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.UserProcessor
	logger    *observability.Logger
}

func New(processor processor.UserProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetProfile handles GET /api/user/me
func (h *Handler) HandleGetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, h.processor.GuestProfile(ctx))
}

// HandleListAddresses handles GET /api/addresses?email=
func (h *Handler) HandleListAddresses(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Query("email")
	if email == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El email es requerido"))
		return
	}

	addresses, err := h.processor.ListAddresses(ctx, email)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// CreateAddressRequest is the payload for a new address book entry
type CreateAddressRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	Label       *string `json:"label"`
	AddressLine string  `json:"address_line" binding:"required,min=1,max=255"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	ZipCode     *string `json:"zip_code"`
	IsDefault   bool    `json:"is_default"`
}

// HandleCreateAddress handles POST /api/addresses
func (h *Handler) HandleCreateAddress(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	address, err := h.processor.CreateAddress(ctx, processor.CreateAddressParams{
		Email:       req.Email,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Label:       req.Label,
		AddressLine: req.AddressLine,
		City:        req.City,
		Province:    req.Province,
		ZipCode:     req.ZipCode,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, address)
}

// UpdateAddressRequest carries the fields a PATCH may change. Absent fields
// keep their current value.
type UpdateAddressRequest struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	Label       *string `json:"label"`
	AddressLine *string `json:"address_line" binding:"omitempty,min=1,max=255"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	ZipCode     *string `json:"zip_code"`
	IsDefault   *bool   `json:"is_default"`
}

// HandleUpdateAddress handles PATCH /api/addresses/:address_id
func (h *Handler) HandleUpdateAddress(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("address_id"), 10, 64)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El ID debe ser un número"))
		return
	}

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	address, err := h.processor.UpdateAddress(ctx, id, processor.UpdateAddressParams{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Label:       req.Label,
		AddressLine: req.AddressLine,
		City:        req.City,
		Province:    req.Province,
		ZipCode:     req.ZipCode,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}

// HandleDeleteAddress handles DELETE /api/addresses/:address_id
func (h *Handler) HandleDeleteAddress(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("address_id"), 10, 64)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El ID debe ser un número"))
		return
	}

	if err := h.processor.DeleteAddress(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleSetDefaultAddress handles POST /api/addresses/:address_id/default
func (h *Handler) HandleSetDefaultAddress(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("address_id"), 10, 64)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "El ID debe ser un número"))
		return
	}

	address, err := h.processor.SetDefaultAddress(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, address)
}
