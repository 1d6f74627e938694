package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	balanceService portssvc.BalanceSvcFacade
	txnService     portssvc.TransactionSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, bs portssvc.BalanceSvcFacade, ts portssvc.TransactionSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		balanceService: bs,
		txnService:     ts,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, bs portssvc.BalanceSvcFacade, ts portssvc.TransactionSvcFacade) {
	h := newAccountHandler(as, bs, ts)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deactivateAccount)
		accounts.GET("/:accountID/transactions", h.listAccountTransactions)
		accounts.POST("/:accountID/recalculate", h.recalculateBalance)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account, optionally seeding it with an initial balance entry
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists accounts, active only by default
// @Tags accounts
// @Produce  json
// @Param   includeInactive query bool false "Include deactivated accounts"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("includeInactive", "false"))

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "list accounts")
		return
	}

	responses := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves an account by ID
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates an account's name or active flag
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Router /accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks an account inactive; its ledger history is preserved
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 204 "Account deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to deactivate account"
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	if err := h.accountService.DeactivateAccount(c.Request.Context(), accountID); err != nil {
		respondServiceError(c, logger, err, "deactivate account")
		return
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// listAccountTransactions godoc
// @Summary List an account's transactions
// @Description Lists ledger entries for an account, newest first, with cursor pagination
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /accounts/{accountID}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListAccountTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.txnService.ListTransactionsByAccount(c.Request.Context(), accountID, params)
	if err != nil {
		respondServiceError(c, logger, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// recalculateBalance godoc
// @Summary Recalculate an account's balance
// @Description Replays the account's ledger synchronously and returns the recomputed balance
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} map[string]string "Returns the recomputed balance"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to recalculate balance"
// @Router /accounts/{accountID}/recalculate [post]
func (h *accountHandler) recalculateBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	balance, err := h.balanceService.RecalculateAccount(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "recalculate balance")
		return
	}

	logger.Info("Account balance recalculated", slog.String("account_id", accountID), slog.String("balance", balance.String()))
	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "balance": balance.String()})
}
