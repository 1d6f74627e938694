package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Obligation is the database representation of a receivable/payable row.
type Obligation struct {
	ObligationID string          `db:"obligation_id"`
	Kind         string          `db:"kind"`
	ContactID    string          `db:"contact_id"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
	AmountTotal  decimal.Decimal `db:"amount_total"`
	AmountPaid   decimal.Decimal `db:"amount_paid"`
	Status       string          `db:"status"`
	AuditFields
}

// ObligationPayment is the database representation of a payment row.
type ObligationPayment struct {
	PaymentID    string          `db:"payment_id"`
	ObligationID string          `db:"obligation_id"`
	AccountID    string          `db:"account_id"`
	EntryID      string          `db:"entry_id"`
	Amount       decimal.Decimal `db:"amount"`
	PaidAt       time.Time       `db:"paid_at"`
	Note         string          `db:"note"`
	AuditFields
}
