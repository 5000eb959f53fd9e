package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/catalog/processor"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CatalogProcessor
	logger    *observability.Logger
}

func New(processor processor.CatalogProcessor, logger *observability.Logger) Handler {
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

// HandleListProducts handles GET /api/products
func (h *Handler) HandleListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	params := store.ListProductsParams{}
	if club := c.Query("club"); club != "" {
		params.ClubName = &club
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "category_id debe ser un número"))
			return
		}
		params.CategoryID = &categoryID
	}
	if gender := c.Query("gender"); gender != "" {
		params.Gender = &gender
	}
	if c.Query("active_only") == "true" {
		params.ActiveOnly = true
	}
	if search := c.Query("search"); search != "" {
		params.Search = &search
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			params.Offset = offset
		}
	}

	products, err := h.processor.ListProducts(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// HandleGetProduct handles GET /api/products/:product_id
func (h *Handler) HandleGetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	product, err := h.processor.GetProduct(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// HandleGetProductBySlug handles GET /api/products/slug/:slug
func (h *Handler) HandleGetProductBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := h.processor.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProductRequest is the admin payload for a new product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int64   `json:"stock" binding:"gte=0"`
	Gender      *string `json:"gender" binding:"omitempty,max=20"`
	ClubName    *string `json:"club_name" binding:"omitempty,max=200"`
	CategoryID  *int64  `json:"category_id"`
	IsActive    *bool   `json:"is_active"`
}

// HandleCreateProduct handles POST /api/products
func (h *Handler) HandleCreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Gender:      req.Gender,
		ClubName:    req.ClubName,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		params.IsActive = *req.IsActive
	}

	product, err := h.processor.CreateProduct(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProductRequest is the admin payload for a partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Slug        *string  `json:"slug" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock       *int64   `json:"stock" binding:"omitempty,gte=0"`
	Gender      *string  `json:"gender" binding:"omitempty,max=20"`
	ClubName    *string  `json:"club_name" binding:"omitempty,max=200"`
	IsActive    *bool    `json:"is_active"`
	CategoryID  *int64   `json:"category_id"`
}

// HandleUpdateProduct handles PATCH /api/products/:product_id
func (h *Handler) HandleUpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	product, err := h.processor.UpdateProduct(ctx, id, processor.UpdateProductParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Gender:      req.Gender,
		ClubName:    req.ClubName,
		IsActive:    req.IsActive,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateStockRequest sets the absolute stock count
type UpdateStockRequest struct {
	Stock *int64 `json:"stock" binding:"required,gte=0"`
}

// HandleUpdateStock handles PATCH /api/products/:product_id/stock
func (h *Handler) HandleUpdateStock(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	product, err := h.processor.UpdateStock(ctx, id, *req.Stock)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// SetActiveRequest toggles storefront visibility
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// HandleSetActive handles PATCH /api/products/:product_id/active
func (h *Handler) HandleSetActive(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	product, err := h.processor.SetActive(ctx, id, *req.IsActive)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// HandleDeleteProduct handles DELETE /api/products/:product_id
func (h *Handler) HandleDeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	if err := h.processor.DeleteProduct(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado exitosamente"})
}

// HandleUploadProductImage handles POST /api/products/upload-image
func (h *Handler) HandleUploadProductImage(c *gin.Context) {
	ctx := c.Request.Context()

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "failed to get file from request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	image, err := h.processor.UploadProductImage(ctx, file)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, image)
}

// HandleRegenerateSlugs handles POST /api/products/regenerate-slugs
func (h *Handler) HandleRegenerateSlugs(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.processor.RegenerateSlugs(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListCategories handles GET /api/categories
func (h *Handler) HandleListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.processor.ListCategories(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// HandleGetCategory handles GET /api/categories/:category_id
func (h *Handler) HandleGetCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}

	category, err := h.processor.GetCategory(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategoryRequest is the admin payload for a new category. The slug is
// generated from the name when omitted.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"omitempty,min=1,max=100"`
}

// HandleCreateCategory handles POST /api/categories
func (h *Handler) HandleCreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	category, err := h.processor.CreateCategory(ctx, req.Name, req.Slug)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategoryRequest is the admin payload for renaming a category
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug *string `json:"slug" binding:"omitempty,min=1,max=100"`
}

// HandleUpdateCategory handles PUT /api/categories/:category_id
func (h *Handler) HandleUpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	category, err := h.processor.UpdateCategory(ctx, id, req.Name, req.Slug)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// HandleDeleteCategory handles DELETE /api/categories/:category_id
func (h *Handler) HandleDeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}

	if err := h.processor.DeleteCategory(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada exitosamente"})
}

// HandleListClubs handles GET /api/clubs
func (h *Handler) HandleListClubs(c *gin.Context) {
	ctx := c.Request.Context()

	clubs, err := h.processor.ListClubs(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, clubs)
}

// HandleGetClub handles GET /api/clubs/:club_id
func (h *Handler) HandleGetClub(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "club_id")
	if !ok {
		return
	}

	club, err := h.processor.GetClub(ctx, id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// CreateClubRequest is the admin payload for a new club
type CreateClubRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=200"`
	CityKey       *string `json:"city_key" binding:"omitempty,max=100"`
	CrestImageURL *string `json:"crest_image_url" binding:"omitempty,max=500"`
}

// HandleCreateClub handles POST /api/clubs
func (h *Handler) HandleCreateClub(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	club, err := h.processor.CreateClub(ctx, processor.CreateClubParams{
		Name:          req.Name,
		CityKey:       req.CityKey,
		CrestImageURL: req.CrestImageURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// UpdateClubRequest is the admin payload for a partial club update
type UpdateClubRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	CityKey       *string `json:"city_key" binding:"omitempty,max=100"`
	CrestImageURL *string `json:"crest_image_url" binding:"omitempty,max=500"`
}

// HandleUpdateClub handles PATCH /api/clubs/:club_id
func (h *Handler) HandleUpdateClub(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "club_id")
	if !ok {
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	club, err := h.processor.UpdateClub(ctx, id, processor.UpdateClubParams{
		Name:          req.Name,
		CityKey:       req.CityKey,
		CrestImageURL: req.CrestImageURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// HandleUploadClubCrest handles POST /api/clubs/:club_id/crest
func (h *Handler) HandleUploadClubCrest(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "club_id")
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "failed to get file from request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	club, err := h.processor.UploadClubCrest(ctx, id, file)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// HandleDeleteClub handles DELETE /api/clubs/:club_id
func (h *Handler) HandleDeleteClub(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "club_id")
	if !ok {
		return
	}

	if err := h.processor.DeleteClub(ctx, id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Club eliminado exitosamente"})
}
