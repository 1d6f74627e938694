package services

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// ObligationReaderSvc defines read operations for obligations
type ObligationReaderSvc interface {
	GetObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error)
	ListObligations(ctx context.Context, kind *domain.ObligationKind) ([]domain.Obligation, error)
	ListPayments(ctx context.Context, obligationID string) ([]domain.ObligationPayment, error)
}

// ObligationWriterSvc defines write operations for obligations
type ObligationWriterSvc interface {
	CreateObligation(ctx context.Context, req dto.CreateObligationRequest) (*domain.Obligation, error)

	// RecordPayment applies a payment against an obligation: validates the
	// amount against the remaining balance, writes the payment row, the
	// corresponding ledger entry and the updated obligation status in a
	// single transaction, then dispatches balance recalculation.
	RecordPayment(ctx context.Context, obligationID string, req dto.RecordPaymentRequest) (*domain.ObligationPayment, error)
}

// ObligationSvcFacade combines all obligation service interfaces
type ObligationSvcFacade interface {
	ObligationReaderSvc
	ObligationWriterSvc
}
