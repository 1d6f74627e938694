package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
)

// balanceService delegates the full-recompute to the repository, which
// locks the account row and rewrites the running balances in one
// transaction. The service layer owns logging and nothing else; the
// computation itself must stay atomic with the row lock.
type balanceService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{entryRepo: entryRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// RecalculateAccount replays the account's ledger and returns the final
// balance. Implements portssvc.BalanceSvcFacade
func (s *balanceService) RecalculateAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balance, err := s.entryRepo.RecalculateAccountBalance(ctx, accountID)
	if err != nil {
		logger.Error("Balance recalculation failed", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	logger.Debug("Balance recalculated", slog.String("account_id", accountID), slog.String("balance", balance.String()))
	return balance, nil
}
