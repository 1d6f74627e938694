package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
)

// Both match errors.Is(err, apperrors.ErrValidation).
var (
	ErrBudgetPeriodInvalid  = fmt.Errorf("%w: budget period end must be after period start", apperrors.ErrValidation)
	ErrBudgetCategoryIncome = fmt.Errorf("%w: budgets apply to expense categories only", apperrors.ErrValidation)
)

// budgetService evaluates spend against budgets. Reports are computed from
// the ledger on every request; nothing is cached, so the evaluator can lag
// behind a pending recalculation only by whatever entries are mid-write.
type budgetService struct {
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, categoryRepo: categoryRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget persists a spending cap for an expense category.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if !req.PeriodEnd.After(req.PeriodStart) {
		return nil, ErrBudgetPeriodInvalid
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", req.CategoryID, err)
	}
	if category.CategoryType != domain.CategoryExpense {
		return nil, fmt.Errorf("%w: category %s is %s", ErrBudgetCategoryIncome, req.CategoryID, category.CategoryType)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		logger.Error("Failed to save budget", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	logger.Info("Budget created", slog.String("budget_id", budget.BudgetID), slog.String("category_id", budget.CategoryID))
	return &budget, nil
}

// GetBudgetByID retrieves a budget.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	return budget, nil
}

// ListBudgets retrieves all budgets.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// DeleteBudget removes a budget. Ledger entries are untouched.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		logger.Error("Failed to delete budget", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	return nil
}

// EvaluateBudget reports spend against the budget limit for its period.
// Implements portssvc.BudgetSvcFacade
func (s *budgetService) EvaluateBudget(ctx context.Context, budgetID string) (*domain.BudgetReport, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}

	spent, err := s.budgetRepo.SumSpendByCategory(ctx, budget.CategoryID, budget.PeriodStart, budget.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to sum spend for category %s: %w", budget.CategoryID, err)
	}

	return &domain.BudgetReport{
		Budget:    *budget,
		Spent:     spent,
		Remaining: budget.Amount.Sub(spent),
		Exceeded:  spent.GreaterThan(budget.Amount),
	}, nil
}
