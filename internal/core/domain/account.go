package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a financial account within the core domain.
// Balance is the cached account-currency balance as of the latest completed
// recalculation pass; it is mutated only by the balance recalculator (plus
// the provisional optimistic step of an obligation payment, which the next
// recalculation supersedes).
type Account struct {
	AccountID    string          `json:"accountID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"` // FK -> currencies.code
	Balance      decimal.Decimal `json:"balance"`
	IsActive     bool            `json:"isActive"` // Soft delete or status flag
	AuditFields
}
