package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for ledger projections.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to ledger projections.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	parties := rg.Group("/parties/:id")
	{
		parties.GET("/ledger", h.getLedger)
		parties.GET("/ledger/export", h.exportLedgerCSV)
		parties.GET("/reconciliation", h.reconcile)
	}
}

// dateRangeQuery parses optional ?from= and ?to= query parameters.
func dateRangeQuery(c *gin.Context) (from, to *time.Time, ok bool) {
	parse := func(name string) (*time.Time, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
			return nil, false
		}
		return &t, true
	}

	if from, ok = parse("from"); !ok {
		return nil, nil, false
	}
	if to, ok = parse("to"); !ok {
		return nil, nil, false
	}
	return from, to, true
}

// getLedger godoc
// @Summary Project a party's ledger
// @Description Day-grouped running balances over [from, to], newest first, with a period summary
// @Tags ledger
// @Produce json
// @Param id path string true "Party ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.LedgerReport
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	report, err := h.ledgerService.ProjectLedger(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to project ledger")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportLedgerCSV godoc
// @Summary Export a party's ledger as CSV
// @Tags ledger
// @Produce text/csv
// @Param id path string true "Party ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV data"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id}/ledger/export [get]
func (h *ledgerHandler) exportLedgerCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	data, err := h.ledgerService.ExportLedgerCSV(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export ledger")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="ledger.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// reconcile godoc
// @Summary Reconcile a party's summary against its transaction log
// @Description Reports the drift between the stored due amount and what the log explains
// @Tags ledger
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} domain.ReconciliationResult
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id}/reconciliation [get]
func (h *ledgerHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := h.ledgerService.ReconcileParty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile party")
		return
	}
	c.JSON(http.StatusOK, result)
}
