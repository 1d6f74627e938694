package models

import "github.com/shopspring/decimal"

// Account is the database representation of an account row.
type Account struct {
	AccountID    string          `db:"account_id"`
	Name         string          `db:"name"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
