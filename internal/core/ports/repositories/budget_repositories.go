package repositories

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetRepositoryFacade defines operations for budget data and the
// aggregation query the budget evaluator consumes.
type BudgetRepositoryFacade interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error

	// SumSpendByCategory totals converted_amount over non-transfer expense
	// entries (including splits) for a category within a date range.
	SumSpendByCategory(ctx context.Context, categoryID string, from, to time.Time) (decimal.Decimal, error)
}
