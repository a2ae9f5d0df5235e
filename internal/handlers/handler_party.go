package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// partyHandler handles HTTP requests for suppliers and customers.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: ps}
}

// registerPartyRoutes registers routes related to parties and their balances.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
		parties.DELETE("/:id", h.deleteParty)
		parties.GET("/:id/balance", h.getBalance)
		parties.PUT("/:id/balance", h.correctBalance)
	}
	rg.GET("/balances", h.listBalances)
}

// partyTypeQuery reads and validates the ?type= query parameter.
func partyTypeQuery(c *gin.Context) (domain.PartyType, bool) {
	t := domain.PartyType(c.Query("type"))
	if t != domain.PartySupplier && t != domain.PartyCustomer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Supplier or Customer"})
		return "", false
	}
	return t, true
}

// createParty godoc
// @Summary Create a new supplier or customer
// @Description Adds a party with a zeroed balance summary
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name or code already exists"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create party")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties of one type
// @Tags parties
// @Produce json
// @Param type query string true "Supplier or Customer"
// @Success 200 {array} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyType, ok := partyTypeQuery(c)
	if !ok {
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), partyType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Update a party
// @Description Applies a partial update; renames propagate to the balance summary
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 409 {object} map[string]string "Code already exists"
// @Router /parties/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deleteParty godoc
// @Summary Delete a party
// @Description Removes the party and its balance summary; deleting an absent party succeeds
// @Tags parties
// @Param id path string true "Party ID"
// @Success 204 "No Content"
// @Router /parties/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.partyService.DeleteParty(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete party")
		return
	}
	c.Status(http.StatusNoContent)
}

// getBalance godoc
// @Summary Get a party's balance summary
// @Tags balances
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} domain.PaymentDetail
// @Failure 404 {object} map[string]string "Summary not found"
// @Router /parties/{id}/balance [get]
func (h *partyHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.partyService.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get balance")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listBalances godoc
// @Summary List balance summaries for one party type
// @Tags balances
// @Produce json
// @Param type query string true "Supplier or Customer"
// @Success 200 {array} domain.PaymentDetail
// @Router /balances [get]
func (h *partyHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyType, ok := partyTypeQuery(c)
	if !ok {
		return
	}

	summaries, err := h.partyService.ListBalances(c.Request.Context(), partyType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// correctBalance godoc
// @Summary Correct a party's outstanding balance
// @Description Sets dueAmount directly; paidAmount is back-solved so totals stay consistent
// @Tags balances
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param correction body dto.CorrectBalanceRequest true "Corrected due amount"
// @Success 200 {object} domain.PaymentDetail
// @Failure 404 {object} map[string]string "Summary not found"
// @Router /parties/{id}/balance [put]
func (h *partyHandler) correctBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CorrectBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CorrectBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	summary, err := h.partyService.CorrectBalance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to correct balance")
		return
	}
	c.JSON(http.StatusOK, summary)
}
