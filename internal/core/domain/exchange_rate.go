package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a conversion rate from a quote currency to the user's
// base currency, effective from DateEffective. Rates come from an external
// source; the converter picks the most recent rate with
// date_effective <= the transaction date.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	CurrencyCode   string          `json:"currencyCode"`   // Quote currency
	Rate           decimal.Decimal `json:"rate"`           // Units of base currency per quote unit
	DateEffective  time.Time       `json:"dateEffective"`
	AuditFields
}
