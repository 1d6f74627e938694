package services

import (
	"context"
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
)

// accountService provides account CRUD on top of the account repository.
// Account balances are never written here; the balance recalculator owns
// them.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	entryRepo   portsrepo.EntryRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
	dispatcher  portssvc.RecalcDispatcher
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	entryRepo portsrepo.EntryRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
	dispatcher portssvc.RecalcDispatcher,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		currencySvc: currencySvc,
		dispatcher:  dispatcher,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account; an initial balance becomes an
// INITIAL ledger entry so the recompute reproduces it.
// Implements portssvc.AccountSvcFacade
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if money.GetCurrency(req.CurrencyCode) == nil {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
	}
	if req.InitialBalance != nil && req.InitialBalance.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		CurrencyCode: req.CurrencyCode,
		Balance:      decimal.Zero,
		IsActive:     true,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	if req.InitialBalance != nil && req.InitialBalance.GreaterThan(decimal.Zero) {
		converted, rate, err := s.currencySvc.Convert(ctx, *req.InitialBalance, req.CurrencyCode, now)
		if err != nil {
			return nil, fmt.Errorf("failed to convert initial balance: %w", err)
		}
		entry := domain.LedgerEntry{
			EntryID:         uuid.Must(uuid.NewV7()).String(),
			AccountID:       account.AccountID,
			EntryType:       domain.EntryInitial,
			Amount:          *req.InitialBalance,
			TransactionDate: now,
			Description:     "Initial balance",
			ConversionRate:  rate,
			ConvertedAmount: converted,
			AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		}
		if err := s.entryRepo.SaveEntries(ctx, []domain.LedgerEntry{entry}); err != nil {
			logger.Error("Failed to save initial balance entry", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
			return nil, fmt.Errorf("failed to save initial balance entry: %w", err)
		}
		s.dispatcher.Enqueue(account.AccountID)
		account.Balance = *req.InitialBalance
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves a single account.
// Implements portssvc.AccountSvcFacade
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by id.
// Implements portssvc.AccountSvcFacade
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts, optionally including inactive ones.
// Implements portssvc.AccountSvcFacade
func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an account's mutable details.
// Implements portssvc.AccountSvcFacade
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount marks an account inactive. Its ledger history stays
// intact and keeps participating in budget evaluation.
// Implements portssvc.AccountSvcFacade
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
