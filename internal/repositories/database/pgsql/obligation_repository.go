package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrackio/fintrack_backend/internal/models"
	"github.com/fintrackio/fintrack_backend/internal/utils/ledger"
	"github.com/fintrackio/fintrack_backend/internal/utils/mapping"
)

type PgxObligationRepository struct {
	BaseRepository
}

// newPgxObligationRepository creates a new repository for obligation data.
func newPgxObligationRepository(pool *pgxpool.Pool) portsrepo.ObligationRepositoryFacade {
	return &PgxObligationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ObligationRepositoryFacade = (*PgxObligationRepository)(nil)

const obligationColumns = `obligation_id, kind, contact_id, currency_code, description, amount_total, amount_paid, status, created_at, last_updated_at`

func scanObligation(row pgx.Row) (*models.Obligation, error) {
	var m models.Obligation
	err := row.Scan(
		&m.ObligationID,
		&m.Kind,
		&m.ContactID,
		&m.CurrencyCode,
		&m.Description,
		&m.AmountTotal,
		&m.AmountPaid,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveObligation persists a new obligation.
func (r *PgxObligationRepository) SaveObligation(ctx context.Context, obligation domain.Obligation) error {
	m := mapping.ToModelObligation(obligation)

	query := `
		INSERT INTO obligations (obligation_id, kind, contact_id, currency_code, description, amount_total, amount_paid, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ObligationID,
		m.Kind,
		m.ContactID,
		m.CurrencyCode,
		m.Description,
		m.AmountTotal,
		m.AmountPaid,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: obligation with ID %s already exists", apperrors.ErrDuplicate, m.ObligationID)
		}
		return apperrors.NewAppError(500, "failed to save obligation "+m.ObligationID, err)
	}
	return nil
}

// FindObligationByID retrieves an obligation by its ID.
func (r *PgxObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations WHERE obligation_id = $1;`

	m, err := scanObligation(r.Pool.QueryRow(ctx, query, obligationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find obligation by ID "+obligationID, err)
	}

	obligation := mapping.ToDomainObligation(*m)
	return &obligation, nil
}

// ListObligations retrieves obligations, optionally filtered by kind.
func (r *PgxObligationRepository) ListObligations(ctx context.Context, kind *domain.ObligationKind) ([]domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations`
	args := []interface{}{}
	if kind != nil {
		query += ` WHERE kind = $1`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query obligations", err)
	}
	defer rows.Close()

	obligations := []domain.Obligation{}
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan obligation row", err)
		}
		obligations = append(obligations, mapping.ToDomainObligation(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating obligation rows", err)
	}
	return obligations, nil
}

// ListPaymentsByObligation retrieves the payments applied to an obligation.
func (r *PgxObligationRepository) ListPaymentsByObligation(ctx context.Context, obligationID string) ([]domain.ObligationPayment, error) {
	query := `
		SELECT payment_id, obligation_id, account_id, entry_id, amount, paid_at, note, created_at, last_updated_at
		FROM obligation_payments
		WHERE obligation_id = $1
		ORDER BY paid_at, payment_id;
	`
	rows, err := r.Pool.Query(ctx, query, obligationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for obligation "+obligationID, err)
	}
	defer rows.Close()

	payments := []domain.ObligationPayment{}
	for rows.Next() {
		var m models.ObligationPayment
		err := rows.Scan(
			&m.PaymentID,
			&m.ObligationID,
			&m.AccountID,
			&m.EntryID,
			&m.Amount,
			&m.PaidAt,
			&m.Note,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainObligationPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

// SavePayment writes, in one transaction: the cash-movement ledger entry,
// the provisional account balance, the payment row, and the obligation's
// updated paid amount and status. The obligation row is locked and
// re-read first; the service's precheck ran on a snapshot that may be
// stale by the time the lock is acquired, so the settled and
// remaining-amount checks repeat here against the locked row.
func (r *PgxObligationRepository) SavePayment(ctx context.Context, payment domain.ObligationPayment, entry domain.LedgerEntry, optimisticBalance decimal.Decimal) (*domain.Obligation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := scanObligation(tx.QueryRow(ctx, `SELECT `+obligationColumns+` FROM obligations WHERE obligation_id = $1 FOR UPDATE;`, payment.ObligationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: obligation %s", apperrors.ErrNotFound, payment.ObligationID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock obligation "+payment.ObligationID, err)
	}
	obligation := mapping.ToDomainObligation(*m)

	if obligation.Status == domain.ObligationPaid {
		return nil, fmt.Errorf("%w: %s", domain.ErrObligationSettled, obligation.ObligationID)
	}
	remaining := obligation.Remaining()
	if payment.Amount.GreaterThan(remaining.Add(ledger.Tolerance)) {
		return nil, fmt.Errorf("%w: remaining %s, payment %s", domain.ErrOverpayment, remaining.String(), payment.Amount.String())
	}

	obligation.AmountPaid = obligation.AmountPaid.Add(payment.Amount)
	obligation.Status = domain.StatusForPaid(obligation.AmountPaid, obligation.AmountTotal)
	obligation.LastUpdatedAt = payment.LastUpdatedAt

	modelEntry := mapping.ToModelLedgerEntry(entry)
	_, err = tx.Exec(ctx, entryInsertQuery,
		modelEntry.EntryID,
		modelEntry.AccountID,
		modelEntry.EntryType,
		modelEntry.Amount,
		modelEntry.TransactionDate,
		modelEntry.Description,
		modelEntry.CategoryID,
		modelEntry.ConversionRate,
		modelEntry.ConvertedAmount,
		modelEntry.RunningBalance,
		modelEntry.RelatedEntryID,
		modelEntry.DestinationAccountID,
		modelEntry.FromAccountID,
		modelEntry.CreatedAt,
		modelEntry.LastUpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment ledger entry "+modelEntry.EntryID, err)
	}

	// Provisional balance; the queued recompute overwrites it.
	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = $2, last_updated_at = $3 WHERE account_id = $1;`,
		payment.AccountID, optimisticBalance, payment.LastUpdatedAt); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update balance for account "+payment.AccountID, err)
	}

	modelPayment := mapping.ToModelObligationPayment(payment)
	_, err = tx.Exec(ctx, `
		INSERT INTO obligation_payments (payment_id, obligation_id, account_id, entry_id, amount, paid_at, note, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		modelPayment.PaymentID,
		modelPayment.ObligationID,
		modelPayment.AccountID,
		modelPayment.EntryID,
		modelPayment.Amount,
		modelPayment.PaidAt,
		modelPayment.Note,
		modelPayment.CreatedAt,
		modelPayment.LastUpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment "+modelPayment.PaymentID, err)
	}

	modelObligation := mapping.ToModelObligation(obligation)
	_, err = tx.Exec(ctx, `
		UPDATE obligations SET amount_paid = $2, status = $3, last_updated_at = $4 WHERE obligation_id = $1;`,
		modelObligation.ObligationID,
		modelObligation.AmountPaid,
		modelObligation.Status,
		modelObligation.LastUpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update obligation "+modelObligation.ObligationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &obligation, nil
}
