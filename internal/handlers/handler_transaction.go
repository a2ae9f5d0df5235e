package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for the transaction log.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to the transaction log.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("/batch", h.recordBatch)
	}
	rg.POST("/payments", h.recordPayment)
}

// listTransactions godoc
// @Summary List the full transaction log
// @Description Returns all transactions sorted date desc, bill desc, newest first
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// recordBatch godoc
// @Summary Record a billed batch
// @Description Commits a cart of line items as one bill, assigning the date's next bill number
// @Tags transactions
// @Accept json
// @Produce json
// @Param batch body dto.CreateTransactionBatchRequest true "Batch details"
// @Success 201 {object} dto.BatchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /transactions/batch [post]
func (h *transactionHandler) recordBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	billNumber, err := h.transactionService.RecordBatch(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record batch")
		return
	}

	logger.Info("Batch recorded via API", slog.Int("bill_number", billNumber))
	c.JSON(http.StatusCreated, dto.BatchResponse{BillNumber: billNumber})
}

// recordPayment godoc
// @Summary Record a standalone payment
// @Description Appends a payment dated today and adjusts the party's balance summary
// @Tags transactions
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 "Created"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /payments [post]
func (h *transactionHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.transactionService.RecordPayment(c.Request.Context(), req); err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}
	c.Status(http.StatusCreated)
}
