package repositories

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ObligationReader defines read operations for obligations.
type ObligationReader interface {
	// FindObligationByID retrieves an obligation by its ID.
	FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error)

	// ListObligations retrieves obligations, optionally filtered by kind.
	ListObligations(ctx context.Context, kind *domain.ObligationKind) ([]domain.Obligation, error)

	// ListPaymentsByObligation retrieves the payments applied to an obligation.
	ListPaymentsByObligation(ctx context.Context, obligationID string) ([]domain.ObligationPayment, error)
}

// ObligationWriter defines write operations for obligations.
type ObligationWriter interface {
	// SaveObligation persists a new obligation.
	SaveObligation(ctx context.Context, obligation domain.Obligation) error

	// SavePayment persists, in one database transaction: the cash-movement
	// ledger entry (plus the provisional optimistic account balance), the
	// payment row, and the obligation's updated paid amount and status.
	// The paid amount and status are recomputed from a re-read of the
	// obligation row under its lock, so two concurrent payments serialize
	// and the loser fails with domain.ErrOverpayment (or
	// domain.ErrObligationSettled) instead of overwriting the winner.
	// Returns the obligation as written. Any failure rolls the whole unit
	// back.
	SavePayment(ctx context.Context, payment domain.ObligationPayment, entry domain.LedgerEntry, optimisticBalance decimal.Decimal) (*domain.Obligation, error)
}

// ObligationRepositoryFacade combines all obligation repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}
