package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/utils/ledger"
)

// ErrNoRateForDate matches errors.Is(err, apperrors.ErrValidation).
var ErrNoRateForDate = fmt.Errorf("%w: no exchange rate available on or before date", apperrors.ErrValidation)

// currencyService resolves conversion rates against the configured base
// currency. Rates come from the stored rate feed; the base currency itself
// is always 1.
type currencyService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	baseCurrency string
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(rateRepo portsrepo.ExchangeRateRepositoryFacade, baseCurrency string) portssvc.CurrencySvcFacade {
	return &currencyService{rateRepo: rateRepo, baseCurrency: baseCurrency}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// BaseCurrency returns the configured base currency code.
func (s *currencyService) BaseCurrency() string {
	return s.baseCurrency
}

// RateForDate returns the conversion rate for a currency as of a date: the
// most recent stored rate whose effective date does not exceed it.
// Implements portssvc.CurrencySvcFacade
func (s *currencyService) RateForDate(ctx context.Context, currencyCode string, date time.Time) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if money.GetCurrency(currencyCode) == nil {
		return decimal.Zero, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, currencyCode)
	}
	if currencyCode == s.baseCurrency {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindRateForDate(ctx, currencyCode, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s as of %s", ErrNoRateForDate, currencyCode, date.Format("2006-01-02"))
		}
		logger.Error("Failed to look up exchange rate", slog.String("error", err.Error()), slog.String("currency_code", currencyCode))
		return decimal.Zero, fmt.Errorf("failed to look up rate for %s: %w", currencyCode, err)
	}
	return rate.Rate, nil
}

// Convert applies RateForDate to an amount.
// Implements portssvc.CurrencySvcFacade
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, date time.Time) (decimal.Decimal, decimal.Decimal, error) {
	rate, err := s.RateForDate(ctx, currencyCode, date)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return ledger.Convert(amount, rate), rate, nil
}
