package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

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
	"github.com/fintrackio/fintrack_backend/internal/utils/pagination"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for ledger entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, account_id, entry_type, amount, transaction_date, description, category_id,
	conversion_rate, converted_amount, running_balance, related_entry_id, destination_account_id, from_account_id,
	created_at, last_updated_at`

const entryInsertQuery = `
	INSERT INTO ledger_entries (entry_id, account_id, entry_type, amount, transaction_date, description, category_id,
		conversion_rate, converted_amount, running_balance, related_entry_id, destination_account_id, from_account_id,
		created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

const splitInsertQuery = `
	INSERT INTO entry_splits (split_id, entry_id, category_id, amount)
	VALUES ($1, $2, $3, $4);
`

func scanEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.AccountID,
		&m.EntryType,
		&m.Amount,
		&m.TransactionDate,
		&m.Description,
		&m.CategoryID,
		&m.ConversionRate,
		&m.ConvertedAmount,
		&m.RunningBalance,
		&m.RelatedEntryID,
		&m.DestinationAccountID,
		&m.FromAccountID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func queueEntryInsert(batch *pgx.Batch, m models.LedgerEntry) {
	batch.Queue(entryInsertQuery,
		m.EntryID,
		m.AccountID,
		m.EntryType,
		m.Amount,
		m.TransactionDate,
		m.Description,
		m.CategoryID,
		m.ConversionRate,
		m.ConvertedAmount,
		m.RunningBalance,
		m.RelatedEntryID,
		m.DestinationAccountID,
		m.FromAccountID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
}

// SaveEntries persists one or two entries and their splits in a single
// database transaction.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		queueEntryInsert(batch, mapping.ToModelLedgerEntry(entry))
		for _, split := range entry.Splits {
			modelSplit := mapping.ToModelEntrySplit(entry.EntryID, split)
			batch.Queue(splitInsertQuery, modelSplit.SplitID, modelSplit.EntryID, modelSplit.CategoryID, modelSplit.Amount)
		}
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: ledger entry already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert ledger entries", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateEntries rewrites one or two entries atomically. Splits are replaced
// wholesale; the split set on each entry is authoritative.
func (r *PgxEntryRepository) UpdateEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE ledger_entries
		SET account_id = $2, entry_type = $3, amount = $4, transaction_date = $5, description = $6,
			category_id = $7, conversion_rate = $8, converted_amount = $9,
			related_entry_id = $10, destination_account_id = $11, from_account_id = $12, last_updated_at = $13
		WHERE entry_id = $1;
	`
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		tag, err := tx.Exec(ctx, updateQuery,
			m.EntryID,
			m.AccountID,
			m.EntryType,
			m.Amount,
			m.TransactionDate,
			m.Description,
			m.CategoryID,
			m.ConversionRate,
			m.ConvertedAmount,
			m.RelatedEntryID,
			m.DestinationAccountID,
			m.FromAccountID,
			m.LastUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update ledger entry "+m.EntryID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, m.EntryID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM entry_splits WHERE entry_id = $1;`, m.EntryID); err != nil {
			return apperrors.NewAppError(500, "failed to clear splits for entry "+m.EntryID, err)
		}
		for _, split := range entry.Splits {
			modelSplit := mapping.ToModelEntrySplit(entry.EntryID, split)
			if _, err := tx.Exec(ctx, splitInsertQuery, modelSplit.SplitID, modelSplit.EntryID, modelSplit.CategoryID, modelSplit.Amount); err != nil {
				return apperrors.NewAppError(500, "failed to insert split for entry "+m.EntryID, err)
			}
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry and its splits.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM entry_splits WHERE entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete splits for entry "+entryID, err)
	}

	// Clear the counterpart's back-reference if one still points here.
	if _, err := tx.Exec(ctx, `UPDATE ledger_entries SET related_entry_id = NULL WHERE related_entry_id = $1;`, entryID); err != nil {
		return apperrors.NewAppError(500, "failed to unlink counterpart of entry "+entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEntryRepository) loadSplits(ctx context.Context, entryIDs []string) (map[string][]domain.EntrySplit, error) {
	query := `SELECT split_id, entry_id, category_id, amount FROM entry_splits WHERE entry_id = ANY($1) ORDER BY split_id;`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry splits", err)
	}
	defer rows.Close()

	splits := make(map[string][]domain.EntrySplit)
	for rows.Next() {
		var m models.EntrySplit
		if err := rows.Scan(&m.SplitID, &m.EntryID, &m.CategoryID, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan split row", err)
		}
		splits[m.EntryID] = append(splits[m.EntryID], mapping.ToDomainEntrySplit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating split rows", err)
	}
	return splits, nil
}

// FindEntryByID retrieves a single entry with its splits.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(*m)
	splits, err := r.loadSplits(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Splits = splits[entryID]
	return &entry, nil
}

// ListEntriesByAccount retrieves a page of an account's entries in
// (transaction_date, entry_id) descending order with token pagination.
func (r *PgxEntryRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE account_id = $1`
	orderByClause := `ORDER BY transaction_date DESC, entry_id DESC`

	args := []interface{}{accountID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, entry_id) < ($2, $3)`
		args = append(args, lastDate, lastEntryID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries for account "+accountID, err)
	}
	defer rows.Close()

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var newNextToken *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.EntryID)
		newNextToken = &token
	}

	entries := mapping.ToDomainLedgerEntrySlice(modelEntries)
	if len(entries) > 0 {
		entryIDs := make([]string, len(entries))
		for i := range entries {
			entryIDs[i] = entries[i].EntryID
		}
		splits, err := r.loadSplits(ctx, entryIDs)
		if err != nil {
			return nil, nil, err
		}
		for i := range entries {
			entries[i].Splits = splits[entries[i].EntryID]
		}
	}

	return entries, newNextToken, nil
}

// RecalculateAccountBalance replays the account's full ledger in
// (transaction_date, entry_id) order inside one transaction: the account
// row is locked, every running balance is rewritten, and the final balance
// lands on the account. The result is a pure function of the stored
// entries, so reruns converge on identical values.
func (r *PgxEntryRepository) RecalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	// Lock the account row for the duration of the recompute.
	var locked string
	err = tx.QueryRow(ctx, `SELECT account_id FROM accounts WHERE account_id = $1 FOR UPDATE;`, accountID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to lock account "+accountID, err)
	}

	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE account_id = $1 ORDER BY transaction_date, entry_id;`
	rows, err := tx.Query(ctx, query, accountID)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to query entries for account "+accountID, err)
	}

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return decimal.Zero, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "error iterating entry rows", err)
	}
	rows.Close()

	entries := mapping.ToDomainLedgerEntrySlice(modelEntries)
	finalBalance, err := ledger.ComputeRunningBalances(entries)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to compute running balances for account "+accountID, err)
	}

	batch := &pgx.Batch{}
	for i := range entries {
		// Skip rows whose stored running balance is already correct.
		if entries[i].RunningBalance.Equal(modelEntries[i].RunningBalance) {
			continue
		}
		batch.Queue(`UPDATE ledger_entries SET running_balance = $2 WHERE entry_id = $1;`, entries[i].EntryID, entries[i].RunningBalance)
	}
	batch.Queue(`UPDATE accounts SET balance = $2 WHERE account_id = $1;`, accountID, finalBalance)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to write recalculated balances for account "+accountID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return finalBalance, nil
}
