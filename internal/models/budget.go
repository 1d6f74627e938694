package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the database representation of a budget row.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	CategoryID  string          `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	PeriodStart time.Time       `db:"period_start"`
	PeriodEnd   time.Time       `db:"period_end"`
	AuditFields
}
