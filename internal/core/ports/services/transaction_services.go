package services

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// TransactionWriterSvc defines the ledger mutation operations. Every
// operation is atomic: either all its rows land or none do.
type TransactionWriterSvc interface {
	// CreateTransaction writes one ledger entry, or a linked pair for a
	// transfer. The returned slice holds the created entries (source first
	// for transfers). Balance recalculation is dispatched asynchronously
	// for every affected account.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) ([]domain.LedgerEntry, error)

	// UpdateTransaction mutates an entry; for transfer entries both sides
	// of the pair are kept consistent. A missing counterpart degrades to
	// non-transfer handling.
	UpdateTransaction(ctx context.Context, entryID string, req dto.UpdateTransactionRequest) (*domain.LedgerEntry, error)

	// DeleteTransaction removes an entry (and its counterpart for a
	// transfer) and recalculates the affected accounts synchronously so the
	// caller observes post-delete balances immediately.
	DeleteTransaction(ctx context.Context, entryID string) error
}

// TransactionReaderSvc defines read operations for ledger entries.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	ListTransactionsByAccount(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReaderSvc
}
