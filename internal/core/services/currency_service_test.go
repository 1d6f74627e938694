package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      portssvc.CurrencySvcFacade
	asOf         time.Time
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCurrencyService(suite.mockRateRepo, "USD")
	suite.asOf = time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
}

func (suite *CurrencyServiceTestSuite) TestBaseCurrencyAlwaysResolvesToOne() {
	rate, err := suite.service.RateForDate(context.Background(), "USD", suite.asOf)

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateForDate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestRateForDateUsesLatestEffectiveRate() {
	stored := &domain.ExchangeRate{
		CurrencyCode:  "EUR",
		Rate:          decimal.RequireFromString("1.08"),
		DateEffective: suite.asOf.AddDate(0, 0, -3),
	}
	suite.mockRateRepo.On("FindRateForDate", mock.Anything, "EUR", suite.asOf).Return(stored, nil)

	rate, err := suite.service.RateForDate(context.Background(), "EUR", suite.asOf)

	suite.Require().NoError(err)
	suite.True(rate.Equal(stored.Rate))
}

func (suite *CurrencyServiceTestSuite) TestRateForDateFailsWhenNoRateOnFile() {
	suite.mockRateRepo.On("FindRateForDate", mock.Anything, "EUR", suite.asOf).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.RateForDate(context.Background(), "EUR", suite.asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNoRateForDate)
}

func (suite *CurrencyServiceTestSuite) TestRateForDateRejectsUnknownCurrency() {
	_, err := suite.service.RateForDate(context.Background(), "ZZZ", suite.asOf)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestConvertAppliesRate() {
	stored := &domain.ExchangeRate{
		CurrencyCode:  "EUR",
		Rate:          decimal.RequireFromString("1.10"),
		DateEffective: suite.asOf,
	}
	suite.mockRateRepo.On("FindRateForDate", mock.Anything, "EUR", suite.asOf).Return(stored, nil)

	converted, rate, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "EUR", suite.asOf)

	suite.Require().NoError(err)
	suite.True(rate.Equal(stored.Rate))
	suite.True(converted.Equal(decimal.RequireFromString("110")))
}

func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
