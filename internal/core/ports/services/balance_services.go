package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceSvcFacade recomputes account balances from the full ledger.
type BalanceSvcFacade interface {
	// RecalculateAccount replays the account's ledger in deterministic
	// order, rewrites each entry's running balance and returns the final
	// balance. Safe to run repeatedly; the result depends only on the
	// stored entries.
	RecalculateAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// RecalcDispatcher decouples writers from balance recomputation.
type RecalcDispatcher interface {
	// Enqueue schedules a recalculation for the account. Normally
	// asynchronous; implementations may run it inline rather than drop
	// the request when they cannot accept it. Duplicate requests are
	// harmless because recalculation is idempotent.
	Enqueue(accountID string)

	// RunSync performs the recalculation inline, for callers that must
	// observe the corrected balance before returning.
	RunSync(ctx context.Context, accountID string) error
}
