package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, category_id, amount, period_start, period_end, created_at, last_updated_at`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var m models.Budget
	if err := row.Scan(&m.BudgetID, &m.CategoryID, &m.Amount, &m.PeriodStart, &m.PeriodEnd, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (budget_id, category_id, amount, period_start, period_end, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.BudgetID, m.CategoryID, m.Amount, m.PeriodStart, m.PeriodEnd, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, m.BudgetID)
		}
		return apperrors.NewAppError(500, "failed to save budget "+m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget by ID "+budgetID, err)
	}

	budget := mapping.ToDomainBudget(*m)
	return &budget, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ORDER BY period_start DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget rows", err)
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget "+budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SumSpendByCategory totals converted amounts for a category across
// expense entries and their splits in one pass. Split rows are prorated by
// the entry's conversion rate so cross-currency entries compare in base
// currency terms.
func (r *PgxBudgetRepository) SumSpendByCategory(ctx context.Context, categoryID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(spend), 0) FROM (
			SELECT e.converted_amount AS spend
			FROM ledger_entries e
			WHERE e.category_id = $1
			  AND e.entry_type = 'EXPENSE'
			  AND e.transaction_date >= $2 AND e.transaction_date <= $3
			UNION ALL
			SELECT s.amount * e.conversion_rate AS spend
			FROM entry_splits s
			JOIN ledger_entries e ON e.entry_id = s.entry_id
			WHERE s.category_id = $1
			  AND e.entry_type = 'EXPENSE'
			  AND e.transaction_date >= $2 AND e.transaction_date <= $3
		) spend_rows;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, categoryID, from, to).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum spend for category "+categoryID, err)
	}
	return total, nil
}
