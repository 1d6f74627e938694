package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySvcFacade resolves conversion rates between currencies and the
// configured base currency.
type CurrencySvcFacade interface {
	// RateForDate returns the conversion rate from the given currency to
	// the base currency as of the given date: the most recent stored rate
	// whose effective date does not exceed it. The base currency itself
	// always resolves to 1.
	RateForDate(ctx context.Context, currencyCode string, date time.Time) (decimal.Decimal, error)

	// Convert applies RateForDate to an amount, returning the converted
	// base-currency amount and the rate used.
	Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, date time.Time) (converted, rate decimal.Decimal, err error)

	// BaseCurrency returns the configured base currency code.
	BaseCurrency() string
}
