package repositories

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryReader defines read operations for ledger entries.
type EntryReader interface {
	// FindEntryByID retrieves a single entry with its splits.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByAccount retrieves a page of entries for an account in
	// (transaction_date, entry_id) descending order with a cursor token.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// EntryWriter defines write operations for ledger entries. All multi-row
// methods execute inside a single database transaction.
type EntryWriter interface {
	// SaveEntries persists one or two entries (a transfer pair) atomically,
	// along with their splits.
	SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// UpdateEntries rewrites one or two entries (and their splits) atomically.
	UpdateEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// DeleteEntry removes an entry and its splits.
	DeleteEntry(ctx context.Context, entryID string) error
}

// BalanceRecalcSupport is the persistence half of the balance recalculator:
// a full, atomic recompute of one account's running balances and cached
// balance. The account row is locked for the duration so concurrent
// readers never observe a partially updated sequence.
type BalanceRecalcSupport interface {
	// RecalculateAccountBalance recomputes every running balance for the
	// account in (transaction_date, entry_id) order and returns the final
	// balance it persisted on the account row.
	RecalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// EntryRepositoryFacade combines all ledger entry repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	BalanceRecalcSupport
}
