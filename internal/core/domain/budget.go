package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spend for one category over a date range. Amount is in the
// user's base currency so cross-currency entries compare via their
// converted amounts.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary Key (UUID)
	CategoryID  string          `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	AuditFields
}

// BudgetReport is the evaluator's spend-vs-budget result for one budget.
type BudgetReport struct {
	Budget    Budget          `json:"budget"`
	Spent     decimal.Decimal `json:"spent"` // Base currency
	Remaining decimal.Decimal `json:"remaining"`
	Exceeded  bool            `json:"exceeded"`
}
