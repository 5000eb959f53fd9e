package handler

import (
	"net/http"
	"strconv"

	"gepe-server/internal/apierrors"
	"gepe-server/internal/observability"
	"gepe-server/internal/stats/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.StatsProcessor
	logger    *observability.Logger
}

func New(processor processor.StatsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// VisitRequest identifies the visitor's browser session
type VisitRequest struct {
	SessionID string `json:"session_id" binding:"required,min=1,max=100"`
}

// HandleRecordVisit handles POST /api/stats/visit
func (h *Handler) HandleRecordVisit(c *gin.Context) {
	ctx := c.Request.Context()

	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.RecordVisit(ctx, req.SessionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleVisitCount handles GET /api/stats/visits
func (h *Handler) HandleVisitCount(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.processor.VisitCount(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_visits": total})
}

// HandleRanking handles GET /api/stats/ranking
func (h *Handler) HandleRanking(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ranking, err := h.processor.Ranking(ctx, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ranking": ranking})
}

// HandleDashboard handles GET /api/stats/dashboard
func (h *Handler) HandleDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.Dashboard(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
