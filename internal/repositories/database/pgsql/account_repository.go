package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, name, currency_code, balance, is_active, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.CurrencyCode,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, name, currency_code, balance, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.CurrencyCode,
		modelAcc.Balance,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return apperrors.NewAppError(500, "failed to save account "+modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a specific account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}

	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by IDs", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	for _, id := range accountIDs {
		if _, found := accounts[id]; !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
	}
	return accounts, nil
}

// ListAccounts retrieves accounts, optionally including inactive ones.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}

// UpdateAccount updates an account's details. The balance column is owned
// by the balance recalculation and is not touched here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, is_active = $3, last_updated_at = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.IsActive,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
