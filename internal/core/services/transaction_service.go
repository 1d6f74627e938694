package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

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

// All of these match errors.Is(err, apperrors.ErrValidation).
var (
	ErrSameAccountTransfer   = fmt.Errorf("%w: transfer source and destination accounts must differ", apperrors.ErrValidation)
	ErrMissingDestination    = fmt.Errorf("%w: transfer requires a destination account", apperrors.ErrValidation)
	ErrSplitSumMismatch      = fmt.Errorf("%w: split amounts do not sum to the entry amount", apperrors.ErrValidation)
	ErrCategoryOnTransfer    = fmt.Errorf("%w: transfers cannot carry a category or splits", apperrors.ErrValidation)
	ErrCategoryRequired      = fmt.Errorf("%w: income and expense entries require a category or splits", apperrors.ErrValidation)
	ErrCategoryTypeMismatch  = fmt.Errorf("%w: category type does not match entry type", apperrors.ErrValidation)
	ErrReceivedAmountContext = fmt.Errorf("%w: received amount is only valid for transfers", apperrors.ErrValidation)
	ErrAccountInactive       = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
)

// transactionService implements ledger entry creation, update and deletion.
// Writes persist entries with a provisional running balance and hand the
// affected accounts to the recalc dispatcher; the recalculated sequence is
// the source of truth.
type transactionService struct {
	entryRepo   portsrepo.EntryRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	categorySvc portssvc.CategorySvcFacade
	currencySvc portssvc.CurrencySvcFacade
	dispatcher  portssvc.RecalcDispatcher
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	entryRepo portsrepo.EntryRepositoryFacade,
	accountSvc portssvc.AccountSvcFacade,
	categorySvc portssvc.CategorySvcFacade,
	currencySvc portssvc.CurrencySvcFacade,
	dispatcher portssvc.RecalcDispatcher,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		entryRepo:   entryRepo,
		accountSvc:  accountSvc,
		categorySvc: categorySvc,
		currencySvc: currencySvc,
		dispatcher:  dispatcher,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// entryTypeForKind maps the caller-facing kind to the stored entry type of
// the primary (source-account) entry.
func entryTypeForKind(kind dto.TransactionKind) (domain.EntryType, error) {
	switch kind {
	case dto.KindIncome:
		return domain.EntryIncome, nil
	case dto.KindExpense:
		return domain.EntryExpense, nil
	case dto.KindTransfer:
		return domain.EntryTransferOut, nil
	case dto.KindInitial:
		return domain.EntryInitial, nil
	case dto.KindAdjustmentPositive:
		return domain.EntryAdjustmentPositive, nil
	case dto.KindAdjustmentNegative:
		return domain.EntryAdjustmentNegative, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, kind)
	}
}

// validateCategorization checks category/split rules for an entry type and
// resolves the referenced categories.
func (s *transactionService) validateCategorization(ctx context.Context, entryType domain.EntryType, amount decimal.Decimal, categoryID *string, splits []dto.SplitRequest) error {
	if entryType.IsTransfer() {
		if categoryID != nil || len(splits) > 0 {
			return ErrCategoryOnTransfer
		}
		return nil
	}
	if categoryID != nil && len(splits) > 0 {
		return fmt.Errorf("%w: category and splits are mutually exclusive", apperrors.ErrValidation)
	}

	wantType := entryType.CategoryType()

	// Types that take a category must carry one, either directly or via
	// splits. Initial balances and adjustments take none.
	if categoryID == nil && len(splits) == 0 {
		if wantType != "" {
			return ErrCategoryRequired
		}
		return nil
	}

	checkCategory := func(id string) error {
		cat, err := s.categorySvc.GetCategoryByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to resolve category %s: %w", id, err)
		}
		if wantType != "" && cat.CategoryType != wantType {
			return fmt.Errorf("%w: category %s is %s", ErrCategoryTypeMismatch, id, cat.CategoryType)
		}
		return nil
	}

	if categoryID != nil {
		return checkCategory(*categoryID)
	}

	if len(splits) > 0 {
		sum := decimal.Zero
		for _, sp := range splits {
			if sp.Amount.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("%w: split amount must be positive", apperrors.ErrValidation)
			}
			if err := checkCategory(sp.CategoryID); err != nil {
				return err
			}
			sum = sum.Add(sp.Amount)
		}
		if !ledger.WithinTolerance(sum, amount) {
			return fmt.Errorf("%w: splits sum to %s, entry amount is %s", ErrSplitSumMismatch, sum.String(), amount.String())
		}
	}
	return nil
}

// fetchActiveAccount resolves an account and rejects inactive ones for writes.
func (s *transactionService) fetchActiveAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountSvc.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !acc.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrAccountInactive, accountID)
	}
	return acc, nil
}

// convert resolves the conversion rate for the account's currency on the
// transaction date and applies it.
func (s *transactionService) convert(ctx context.Context, amount decimal.Decimal, currencyCode string, date time.Time) (rate, converted decimal.Decimal, err error) {
	converted, rate, err = s.currencySvc.Convert(ctx, amount, currencyCode, date)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return rate, converted, nil
}

func splitsFromRequests(reqs []dto.SplitRequest) []domain.EntrySplit {
	if len(reqs) == 0 {
		return nil
	}
	splits := make([]domain.EntrySplit, len(reqs))
	for i, r := range reqs {
		splits[i] = domain.EntrySplit{
			SplitID:    uuid.NewString(),
			CategoryID: r.CategoryID,
			Amount:     r.Amount,
		}
	}
	return splits
}

// CreateTransaction writes one ledger entry, or two linked entries for a
// transfer, then dispatches balance recalculation for the affected accounts.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) ([]domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	entryType, err := entryTypeForKind(req.Kind)
	if err != nil {
		return nil, err
	}

	if req.Kind != dto.KindTransfer && (req.DestinationAccountID != nil || req.ReceivedAmount != nil) {
		return nil, fmt.Errorf("%w", ErrReceivedAmountContext)
	}

	if err := s.validateCategorization(ctx, entryType, req.Amount, req.CategoryID, req.Splits); err != nil {
		return nil, err
	}

	sourceAcc, err := s.fetchActiveAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	sourceRate, sourceConverted, err := s.convert(ctx, req.Amount, sourceAcc.CurrencyCode, req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to convert amount for account %s: %w", req.AccountID, err)
	}

	// Entry ids are UUIDv7: same-date entries recalc in insertion order.
	sourceEntry := domain.LedgerEntry{
		EntryID:         uuid.Must(uuid.NewV7()).String(),
		AccountID:       req.AccountID,
		EntryType:       entryType,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		ConversionRate:  sourceRate,
		ConvertedAmount: sourceConverted,
		Splits:          splitsFromRequests(req.Splits),
		AuditFields:     audit,
	}

	entries := []domain.LedgerEntry{sourceEntry}

	if req.Kind == dto.KindTransfer {
		if req.DestinationAccountID == nil {
			return nil, ErrMissingDestination
		}
		if *req.DestinationAccountID == req.AccountID {
			return nil, ErrSameAccountTransfer
		}
		destAcc, err := s.fetchActiveAccount(ctx, *req.DestinationAccountID)
		if err != nil {
			return nil, err
		}

		receivedAmount := req.Amount
		if req.ReceivedAmount != nil {
			if req.ReceivedAmount.LessThanOrEqual(decimal.Zero) {
				return nil, fmt.Errorf("%w: received amount must be positive", apperrors.ErrValidation)
			}
			receivedAmount = *req.ReceivedAmount
		} else if destAcc.CurrencyCode != sourceAcc.CurrencyCode {
			return nil, fmt.Errorf("%w: received amount is required when transferring between %s and %s accounts",
				apperrors.ErrValidation, sourceAcc.CurrencyCode, destAcc.CurrencyCode)
		}

		destRate, destConverted, err := s.convert(ctx, receivedAmount, destAcc.CurrencyCode, req.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("failed to convert amount for account %s: %w", destAcc.AccountID, err)
		}

		destEntry := domain.LedgerEntry{
			EntryID:         uuid.Must(uuid.NewV7()).String(),
			AccountID:       destAcc.AccountID,
			EntryType:       domain.EntryTransferIn,
			Amount:          receivedAmount,
			TransactionDate: req.TransactionDate,
			Description:     req.Description,
			ConversionRate:  destRate,
			ConvertedAmount: destConverted,
			AuditFields:     audit,
		}

		// Reciprocal links.
		entries[0].RelatedEntryID = &destEntry.EntryID
		entries[0].DestinationAccountID = &destEntry.AccountID
		destEntry.RelatedEntryID = &entries[0].EntryID
		destEntry.FromAccountID = &entries[0].AccountID

		entries = append(entries, destEntry)
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		logger.Error("Failed to save ledger entries", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save ledger entries: %w", err)
	}

	for i := range entries {
		s.dispatcher.Enqueue(entries[i].AccountID)
	}

	logger.Info("Transaction created", slog.String("entry_id", entries[0].EntryID), slog.String("kind", string(req.Kind)))
	return entries, nil
}

// GetTransactionByID retrieves a single ledger entry with its splits.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) GetTransactionByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListTransactionsByAccount returns a cursor page of an account's entries.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	entries, nextToken, err := s.entryRepo.ListEntriesByAccount(ctx, accountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for account %s: %w", accountID, err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(entries),
		NextToken:    nextToken,
	}, nil
}

// loadPair fetches an entry and, for transfers, its counterpart. A transfer
// entry whose counterpart row is missing degrades to standalone handling.
func (s *transactionService) loadPair(ctx context.Context, entryID string) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if !entry.EntryType.IsTransfer() || entry.RelatedEntryID == nil {
		return entry, nil, nil
	}

	counterpart, err := s.entryRepo.FindEntryByID(ctx, *entry.RelatedEntryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transfer counterpart missing, treating entry as standalone",
				slog.String("entry_id", entry.EntryID), slog.String("related_entry_id", *entry.RelatedEntryID))
			return entry, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to find counterpart of entry %s: %w", entryID, err)
	}
	return entry, counterpart, nil
}

// UpdateTransaction mutates an entry and keeps a transfer pair consistent.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) UpdateTransaction(ctx context.Context, entryID string, req dto.UpdateTransactionRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, counterpart, err := s.loadPair(ctx, entryID)
	if err != nil {
		return nil, err
	}
	requested := entry

	isTransfer := counterpart != nil
	if !isTransfer {
		if req.ReceivedAmount != nil || req.DestinationAccountID != nil {
			return nil, fmt.Errorf("%w", ErrReceivedAmountContext)
		}
	} else if req.CategoryID != nil || len(req.Splits) > 0 {
		return nil, ErrCategoryOnTransfer
	}

	// A transfer can be addressed from either side. Normalize so entry is
	// the TRANSFER_OUT leg: when the caller addressed the receiving leg,
	// its account is the transfer's destination and its amount is the
	// received amount.
	if isTransfer && entry.EntryType == domain.EntryTransferIn {
		entry, counterpart = counterpart, entry
		req.AccountID, req.DestinationAccountID = req.DestinationAccountID, req.AccountID
		req.Amount, req.ReceivedAmount = req.ReceivedAmount, req.Amount
	}

	oldAccounts := map[string]struct{}{entry.AccountID: {}}
	if counterpart != nil {
		oldAccounts[counterpart.AccountID] = struct{}{}
	}

	now := time.Now().UTC()

	if req.AccountID != nil && *req.AccountID != entry.AccountID {
		if _, err := s.fetchActiveAccount(ctx, *req.AccountID); err != nil {
			return nil, err
		}
		entry.AccountID = *req.AccountID
		if counterpart != nil {
			counterpart.FromAccountID = req.AccountID
		}
	}
	if req.DestinationAccountID != nil && counterpart != nil && *req.DestinationAccountID != counterpart.AccountID {
		if *req.DestinationAccountID == entry.AccountID {
			return nil, ErrSameAccountTransfer
		}
		if _, err := s.fetchActiveAccount(ctx, *req.DestinationAccountID); err != nil {
			return nil, err
		}
		counterpart.AccountID = *req.DestinationAccountID
		entry.DestinationAccountID = req.DestinationAccountID
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
		// Same-currency transfers keep both sides equal unless the caller
		// overrides the received amount explicitly.
		if counterpart != nil && req.ReceivedAmount == nil {
			srcAcc, err := s.accountSvc.GetAccountByID(ctx, entry.AccountID)
			if err != nil {
				return nil, err
			}
			dstAcc, err := s.accountSvc.GetAccountByID(ctx, counterpart.AccountID)
			if err != nil {
				return nil, err
			}
			if srcAcc.CurrencyCode == dstAcc.CurrencyCode {
				counterpart.Amount = *req.Amount
			}
		}
	}
	if req.ReceivedAmount != nil && counterpart != nil {
		if req.ReceivedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: received amount must be positive", apperrors.ErrValidation)
		}
		counterpart.Amount = *req.ReceivedAmount
	}

	if req.TransactionDate != nil {
		entry.TransactionDate = *req.TransactionDate
		if counterpart != nil {
			counterpart.TransactionDate = *req.TransactionDate
		}
	}
	if req.Description != nil {
		entry.Description = *req.Description
		if counterpart != nil {
			counterpart.Description = *req.Description
		}
	}
	if req.CategoryID != nil {
		entry.CategoryID = req.CategoryID
		entry.Splits = nil
	}
	if len(req.Splits) > 0 {
		entry.CategoryID = nil
		entry.Splits = splitsFromRequests(req.Splits)
	}

	// Splits kept unchanged from a previous write were already resolved;
	// only their sum is re-checked below.
	if len(req.Splits) > 0 || len(entry.Splits) == 0 {
		if err := s.validateCategorization(ctx, entry.EntryType, entry.Amount, entry.CategoryID, req.Splits); err != nil {
			return nil, err
		}
	}
	// An amount change must still agree with splits kept from before.
	if len(req.Splits) == 0 && len(entry.Splits) > 0 {
		if sum := ledger.SumSplits(entry.Splits); !ledger.WithinTolerance(sum, entry.Amount) {
			return nil, fmt.Errorf("%w: splits sum to %s, entry amount is %s", ErrSplitSumMismatch, sum.String(), entry.Amount.String())
		}
	}

	// Re-derive conversions for whatever moved.
	updated := []*domain.LedgerEntry{entry}
	if counterpart != nil {
		updated = append(updated, counterpart)
	}
	for _, e := range updated {
		acc, err := s.accountSvc.GetAccountByID(ctx, e.AccountID)
		if err != nil {
			return nil, err
		}
		rate, converted, err := s.convert(ctx, e.Amount, acc.CurrencyCode, e.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("failed to convert amount for account %s: %w", e.AccountID, err)
		}
		e.ConversionRate = rate
		e.ConvertedAmount = converted
		e.LastUpdatedAt = now
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	toPersist := make([]domain.LedgerEntry, len(updated))
	for i, e := range updated {
		toPersist[i] = *e
	}
	if err := s.entryRepo.UpdateEntries(ctx, toPersist); err != nil {
		logger.Error("Failed to update ledger entries", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update ledger entries: %w", err)
	}

	// Recalculate every account the entry touched before or after the move.
	for _, e := range updated {
		oldAccounts[e.AccountID] = struct{}{}
	}
	for accountID := range oldAccounts {
		s.dispatcher.Enqueue(accountID)
	}

	logger.Info("Transaction updated", slog.String("entry_id", entryID))
	return requested, nil
}

// DeleteTransaction removes an entry, and its counterpart for transfers,
// then recalculates the affected accounts synchronously.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) DeleteTransaction(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, counterpart, err := s.loadPair(ctx, entryID)
	if err != nil {
		return err
	}

	// Counterpart first: if its delete fails the primary entry and its link
	// are still intact.
	if counterpart != nil {
		if err := s.entryRepo.DeleteEntry(ctx, counterpart.EntryID); err != nil {
			logger.Error("Failed to delete transfer counterpart", slog.String("error", err.Error()), slog.String("entry_id", counterpart.EntryID))
			return fmt.Errorf("failed to delete counterpart entry %s: %w", counterpart.EntryID, err)
		}
	}
	if err := s.entryRepo.DeleteEntry(ctx, entry.EntryID); err != nil {
		logger.Error("Failed to delete ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	// Synchronous so callers observe post-delete balances immediately.
	if err := s.dispatcher.RunSync(ctx, entry.AccountID); err != nil {
		return fmt.Errorf("failed to recalculate account %s: %w", entry.AccountID, err)
	}
	if counterpart != nil && counterpart.AccountID != entry.AccountID {
		if err := s.dispatcher.RunSync(ctx, counterpart.AccountID); err != nil {
			return fmt.Errorf("failed to recalculate account %s: %w", counterpart.AccountID, err)
		}
	}

	logger.Info("Transaction deleted", slog.String("entry_id", entryID))
	return nil
}
