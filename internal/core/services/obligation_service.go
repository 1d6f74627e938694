package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/utils/ledger"
)

// All of these match errors.Is(err, apperrors.ErrValidation). The settled
// and overpayment sentinels live in the domain package since the
// repository raises them too; they are re-exported here for callers.
var (
	ErrObligationSettled    = domain.ErrObligationSettled
	ErrOverpayment          = domain.ErrOverpayment
	ErrPaymentCurrency      = fmt.Errorf("%w: payment account currency does not match the obligation currency", apperrors.ErrValidation)
	ErrPaymentAmountInvalid = fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
)

// obligationService tracks receivables and payables and applies payments
// against them. A payment writes its ledger entry, the payment row and the
// obligation's new status as one atomic unit in the repository.
type obligationService struct {
	obligationRepo portsrepo.ObligationRepositoryFacade
	accountSvc     portssvc.AccountSvcFacade
	contactRepo    portsrepo.ContactRepositoryFacade
	currencySvc    portssvc.CurrencySvcFacade
	dispatcher     portssvc.RecalcDispatcher
}

// NewObligationService creates a new ObligationService.
func NewObligationService(
	obligationRepo portsrepo.ObligationRepositoryFacade,
	accountSvc portssvc.AccountSvcFacade,
	contactRepo portsrepo.ContactRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
	dispatcher portssvc.RecalcDispatcher,
) portssvc.ObligationSvcFacade {
	return &obligationService{
		obligationRepo: obligationRepo,
		accountSvc:     accountSvc,
		contactRepo:    contactRepo,
		currencySvc:    currencySvc,
		dispatcher:     dispatcher,
	}
}

var _ portssvc.ObligationSvcFacade = (*obligationService)(nil)

// CreateObligation persists a new receivable or payable in OPEN status.
// Implements portssvc.ObligationSvcFacade
func (s *obligationService) CreateObligation(ctx context.Context, req dto.CreateObligationRequest) (*domain.Obligation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.AmountTotal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: obligation amount must be positive", apperrors.ErrValidation)
	}
	if money.GetCurrency(req.CurrencyCode) == nil {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
	}
	if _, err := s.contactRepo.FindContactByID(ctx, req.ContactID); err != nil {
		return nil, fmt.Errorf("failed to resolve contact %s: %w", req.ContactID, err)
	}

	now := time.Now().UTC()
	obligation := domain.Obligation{
		ObligationID: uuid.NewString(),
		Kind:         req.Kind,
		ContactID:    req.ContactID,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
		AmountTotal:  req.AmountTotal,
		AmountPaid:   decimal.Zero,
		Status:       domain.ObligationOpen,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.obligationRepo.SaveObligation(ctx, obligation); err != nil {
		logger.Error("Failed to save obligation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save obligation: %w", err)
	}

	logger.Info("Obligation created", slog.String("obligation_id", obligation.ObligationID), slog.String("kind", string(req.Kind)))
	return &obligation, nil
}

// GetObligationByID retrieves an obligation.
// Implements portssvc.ObligationSvcFacade
func (s *obligationService) GetObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find obligation %s: %w", obligationID, err)
	}
	return obligation, nil
}

// ListObligations retrieves obligations, optionally filtered by kind.
// Implements portssvc.ObligationSvcFacade
func (s *obligationService) ListObligations(ctx context.Context, kind *domain.ObligationKind) ([]domain.Obligation, error) {
	obligations, err := s.obligationRepo.ListObligations(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	return obligations, nil
}

// ListPayments retrieves the payments applied to an obligation.
// Implements portssvc.ObligationSvcFacade
func (s *obligationService) ListPayments(ctx context.Context, obligationID string) ([]domain.ObligationPayment, error) {
	if _, err := s.obligationRepo.FindObligationByID(ctx, obligationID); err != nil {
		return nil, fmt.Errorf("failed to find obligation %s: %w", obligationID, err)
	}
	payments, err := s.obligationRepo.ListPaymentsByObligation(ctx, obligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for obligation %s: %w", obligationID, err)
	}
	return payments, nil
}

// RecordPayment applies a payment against an obligation. Receivable
// payments land as INCOME on the target account, payable payments leave as
// EXPENSE. The tolerance allowance covers rounding on the final
// installment, not deliberate overpayment.
// Implements portssvc.ObligationSvcFacade
func (s *obligationService) RecordPayment(ctx context.Context, obligationID string, req dto.RecordPaymentRequest) (*domain.ObligationPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w", ErrPaymentAmountInvalid)
	}

	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find obligation %s: %w", obligationID, err)
	}
	if obligation.Status == domain.ObligationPaid {
		return nil, fmt.Errorf("%w: %s", ErrObligationSettled, obligationID)
	}

	// Precheck on the snapshot read above; the repository repeats it under
	// the obligation row lock, which is what actually serializes two
	// concurrent payments.
	remaining := obligation.Remaining()
	if req.Amount.GreaterThan(remaining.Add(ledger.Tolerance)) {
		return nil, fmt.Errorf("%w: remaining %s, payment %s", ErrOverpayment, remaining.String(), req.Amount.String())
	}

	account, err := s.accountSvc.GetAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrAccountInactive, req.AccountID)
	}
	if account.CurrencyCode != obligation.CurrencyCode {
		return nil, fmt.Errorf("%w: account is %s, obligation is %s", ErrPaymentCurrency, account.CurrencyCode, obligation.CurrencyCode)
	}

	entryType := domain.EntryIncome
	if obligation.Kind == domain.Payable {
		entryType = domain.EntryExpense
	}

	converted, rate, err := s.currencySvc.Convert(ctx, req.Amount, account.CurrencyCode, req.PaidAt)
	if err != nil {
		return nil, fmt.Errorf("failed to convert payment amount: %w", err)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	description := req.Note
	if description == "" {
		description = fmt.Sprintf("Payment for %s", obligation.Description)
	}

	entry := domain.LedgerEntry{
		EntryID:         uuid.Must(uuid.NewV7()).String(),
		AccountID:       req.AccountID,
		EntryType:       entryType,
		Amount:          req.Amount,
		TransactionDate: req.PaidAt,
		Description:     description,
		CategoryID:      req.CategoryID,
		ConversionRate:  rate,
		ConvertedAmount: converted,
		AuditFields:     audit,
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	payment := domain.ObligationPayment{
		PaymentID:    uuid.NewString(),
		ObligationID: obligationID,
		AccountID:    req.AccountID,
		EntryID:      entry.EntryID,
		Amount:       req.Amount,
		PaidAt:       req.PaidAt,
		Note:         req.Note,
		AuditFields:  audit,
	}

	// The account balance written here is optimistic; the queued recompute
	// replaces it with the replayed value.
	signed, err := entry.SignedAmount()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	optimisticBalance := account.Balance.Add(signed)

	updated, err := s.obligationRepo.SavePayment(ctx, payment, entry, optimisticBalance)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		logger.Error("Failed to save obligation payment", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.dispatcher.Enqueue(req.AccountID)

	logger.Info("Obligation payment recorded",
		slog.String("obligation_id", obligationID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("status", string(updated.Status)))
	return &payment, nil
}
