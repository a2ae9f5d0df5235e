package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// historyHandler handles HTTP requests for bill history and daily reports.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers routes for bill history and daily reports.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	rg.GET("/bills", h.listBills)
	reports := rg.Group("/reports")
	{
		reports.GET("/daily-sales", h.dailySales)
		reports.GET("/daily-purchases", h.dailyPurchases)
	}
}

// billedTypeQuery reads and validates the ?type= query parameter.
func billedTypeQuery(c *gin.Context) (domain.TransactionType, bool) {
	t := domain.TransactionType(c.Query("type"))
	if t != domain.Sale && t != domain.Purchase {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Sale or Purchase"})
		return "", false
	}
	return t, true
}

// listBills godoc
// @Summary List reconstructed bills
// @Description Groups transaction lines sharing a date and bill number into display bills
// @Tags history
// @Produce json
// @Param type query string true "Sale or Purchase"
// @Success 200 {array} domain.BillGroup
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /bills [get]
func (h *historyHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billedType, ok := billedTypeQuery(c)
	if !ok {
		return
	}

	bills, err := h.historyService.ListBills(c.Request.Context(), billedType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *historyHandler) dailyTotals(c *gin.Context, billedType domain.TransactionType) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.Query("date")
	if raw == "" {
		raw = time.Now().UTC().Format("2006-01-02")
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	totals, grandTotal, err := h.historyService.DailyPartyTotals(c.Request.Context(), billedType, date)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute daily totals")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":       date.Format("2006-01-02"),
		"totals":     totals,
		"grandTotal": grandTotal,
	})
}

// dailySales godoc
// @Summary Per-customer sales totals for one date
// @Tags history
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Router /reports/daily-sales [get]
func (h *historyHandler) dailySales(c *gin.Context) {
	h.dailyTotals(c, domain.Sale)
}

// dailyPurchases godoc
// @Summary Per-supplier purchase totals for one date
// @Tags history
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Router /reports/daily-purchases [get]
func (h *historyHandler) dailyPurchases(c *gin.Context) {
	h.dailyTotals(c, domain.Purchase)
}
