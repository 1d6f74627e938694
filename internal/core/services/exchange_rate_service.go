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

// exchangeRateService manages the stored rate feed the currency converter
// reads from.
type exchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	baseCurrency string
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, baseCurrency string) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo, baseCurrency: baseCurrency}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if money.GetCurrency(req.CurrencyCode) == nil {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
	}
	if req.CurrencyCode == s.baseCurrency {
		return nil, fmt.Errorf("%w: the base currency rate is fixed at 1", apperrors.ErrValidation)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyCode:   req.CurrencyCode,
		Rate:           req.Rate,
		DateEffective:  req.DateEffective,
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("error", err.Error()), slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	logger.Info("Exchange rate saved", slog.String("currency_code", rate.CurrencyCode), slog.String("rate", rate.Rate.String()))
	return &rate, nil
}

func (s *exchangeRateService) GetRateForDate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRateForDate(ctx, currencyCode, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find rate for %s: %w", currencyCode, err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRatesByCurrency(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates for %s: %w", currencyCode, err)
	}
	return rates, nil
}
