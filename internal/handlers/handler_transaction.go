package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to ledger transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:entryID", h.getTransaction)
		transactions.PUT("/:entryID", h.updateTransaction)
		transactions.DELETE("/:entryID", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a ledger entry; transfers produce a linked entry pair
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {array} dto.TransactionResponse "Created entries; two for a transfer"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.txnService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create transaction")
		return
	}

	logger.Info("Transaction created successfully",
		slog.String("entry_id", entries[0].EntryID),
		slog.Int("entry_count", len(entries)),
	)
	c.JSON(http.StatusCreated, dto.ToTransactionResponses(entries))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves a ledger entry with its splits by entry ID
// @Tags transactions
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{entryID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.txnService.GetTransactionByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(entry))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to a ledger entry; transfer pairs stay consistent
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{entryID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.txnService.UpdateTransaction(c.Request.Context(), entryID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(entry))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a ledger entry; a transfer counterpart is deleted with it
// @Tags transactions
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 204 "Transaction deleted"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{entryID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.txnService.DeleteTransaction(c.Request.Context(), entryID); err != nil {
		respondServiceError(c, logger, err, "delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
