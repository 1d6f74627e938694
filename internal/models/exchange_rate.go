package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the database representation of an exchange rate row.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	CurrencyCode   string          `db:"currency_code"`
	Rate           decimal.Decimal `db:"rate"`
	DateEffective  time.Time       `db:"date_effective"`
	AuditFields
}

// Currency is the database representation of a currency row.
type Currency struct {
	CurrencyCode  string `db:"currency_code"`
	Symbol        string `db:"symbol"`
	Name          string `db:"name"`
	DecimalPlaces int    `db:"decimal_places"`
	AuditFields
}
