package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(bs)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:budgetID", h.getBudget)
		budgets.DELETE("/:budgetID", h.deleteBudget)
		budgets.GET("/:budgetID/report", h.evaluateBudget)
	}
}

// budgetResponse is the API shape of a budget without evaluation data.
type budgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a spending budget for an expense category over a period
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} budgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to create budget"
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create budget")
		return
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, budgetResponse{
		BudgetID:    budget.BudgetID,
		CategoryID:  budget.CategoryID,
		Amount:      budget.Amount,
		PeriodStart: budget.PeriodStart,
		PeriodEnd:   budget.PeriodEnd,
	})
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce  json
// @Success 200 {array} budgetResponse
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budgets, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list budgets")
		return
	}

	responses := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = budgetResponse{
			BudgetID:    b.BudgetID,
			CategoryID:  b.CategoryID,
			Amount:      b.Amount,
			PeriodStart: b.PeriodStart,
			PeriodEnd:   b.PeriodEnd,
		}
	}
	c.JSON(http.StatusOK, responses)
}

// getBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} budgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to retrieve budget"
// @Router /budgets/{budgetID} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("budgetID")

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), budgetID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve budget")
		return
	}

	c.JSON(http.StatusOK, budgetResponse{
		BudgetID:    budget.BudgetID,
		CategoryID:  budget.CategoryID,
		Amount:      budget.Amount,
		PeriodStart: budget.PeriodStart,
		PeriodEnd:   budget.PeriodEnd,
	})
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 204 "Budget deleted"
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to delete budget"
// @Router /budgets/{budgetID} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("budgetID")

	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID); err != nil {
		respondServiceError(c, logger, err, "delete budget")
		return
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

// evaluateBudget godoc
// @Summary Evaluate a budget
// @Description Computes spend against the budget from the ledger; nothing is cached
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetReportResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Failed to evaluate budget"
// @Router /budgets/{budgetID}/report [get]
func (h *budgetHandler) evaluateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("budgetID")

	report, err := h.budgetService.EvaluateBudget(c.Request.Context(), budgetID)
	if err != nil {
		respondServiceError(c, logger, err, "evaluate budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetReportResponse(report))
}
