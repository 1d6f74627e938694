package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PeriodStart time.Time       `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time       `json:"periodEnd" binding:"required"`
}

// BudgetReportResponse is the spend-vs-budget evaluation for one budget.
type BudgetReportResponse struct {
	BudgetID    string          `json:"budgetID"`
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Exceeded    bool            `json:"exceeded"`
}

// ToBudgetReportResponse converts a domain.BudgetReport to its API shape.
func ToBudgetReportResponse(r *domain.BudgetReport) BudgetReportResponse {
	return BudgetReportResponse{
		BudgetID:    r.Budget.BudgetID,
		CategoryID:  r.Budget.CategoryID,
		Amount:      r.Budget.Amount,
		PeriodStart: r.Budget.PeriodStart,
		PeriodEnd:   r.Budget.PeriodEnd,
		Spent:       r.Spent,
		Remaining:   r.Remaining,
		Exceeded:    r.Exceeded,
	}
}
