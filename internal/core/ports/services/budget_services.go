package services

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// BudgetSvcFacade evaluates budgets against recorded spend.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error

	// EvaluateBudget sums the expense entries for the budget's category
	// inside its period and reports spend against the limit. Computed on
	// demand from the ledger, never cached.
	EvaluateBudget(ctx context.Context, budgetID string) (*domain.BudgetReport, error)
}
