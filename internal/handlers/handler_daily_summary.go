package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// dailySummaryHandler handles HTTP requests for the end-of-day cash book.
type dailySummaryHandler struct {
	summaryService portssvc.DailySummarySvcFacade
}

func newDailySummaryHandler(ds portssvc.DailySummarySvcFacade) *dailySummaryHandler {
	return &dailySummaryHandler{summaryService: ds}
}

// registerDailySummaryRoutes registers routes for the daily cash book.
func registerDailySummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.DailySummarySvcFacade) {
	h := newDailySummaryHandler(summaryService)

	summaries := rg.Group("/daily-summaries")
	{
		summaries.GET("", h.listDailySummaries)
		summaries.GET("/:date", h.getDailySummary)
		summaries.PUT("/:date", h.upsertDailySummary)
	}
}

func summaryDateParam(c *gin.Context) (time.Time, bool) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// upsertDailySummary godoc
// @Summary Write the cash book entry for one date
// @Description Inserts or overwrites the figures for the date in the path
// @Tags daily-summaries
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param summary body dto.UpsertDailySummaryRequest true "Cash book figures"
// @Success 200 {object} domain.DailyAccountSummary
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /daily-summaries/{date} [put]
func (h *dailySummaryHandler) upsertDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := summaryDateParam(c)
	if !ok {
		return
	}

	var req dto.UpsertDailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertDailySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	summary, err := h.summaryService.UpsertDailySummary(c.Request.Context(), date, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to upsert daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getDailySummary godoc
// @Summary Get the cash book entry for one date
// @Tags daily-summaries
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.DailyAccountSummary
// @Failure 404 {object} map[string]string "No entry for date"
// @Router /daily-summaries/{date} [get]
func (h *dailySummaryHandler) getDailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := summaryDateParam(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.GetDailySummary(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listDailySummaries godoc
// @Summary List all cash book entries, newest first
// @Tags daily-summaries
// @Produce json
// @Success 200 {array} domain.DailyAccountSummary
// @Router /daily-summaries [get]
func (h *dailySummaryHandler) listDailySummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summaries, err := h.summaryService.ListDailySummaries(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list daily summaries")
		return
	}
	c.JSON(http.StatusOK, summaries)
}
