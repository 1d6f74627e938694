package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
)

// Payment-application errors. Defined here because both the service layer
// (precheck) and the repository (authoritative check under the row lock)
// raise them. Both match errors.Is(err, apperrors.ErrValidation).
var (
	ErrObligationSettled = fmt.Errorf("%w: obligation is already fully paid", apperrors.ErrValidation)
	ErrOverpayment       = fmt.Errorf("%w: payment exceeds the remaining obligation amount", apperrors.ErrValidation)
)

// ObligationKind distinguishes money owed to the user from money the user owes.
type ObligationKind string

const (
	Receivable ObligationKind = "RECEIVABLE"
	Payable    ObligationKind = "PAYABLE"
)

// ObligationStatus tracks the payment state machine of an obligation.
type ObligationStatus string

const (
	ObligationOpen    ObligationStatus = "OPEN"
	ObligationPartial ObligationStatus = "PARTIAL"
	ObligationPaid    ObligationStatus = "PAID"
)

// StatusForPaid derives the status from the paid and total amounts:
// PAID iff amount_paid >= amount_total, PARTIAL iff 0 < amount_paid < total,
// OPEN otherwise.
func StatusForPaid(amountPaid, amountTotal decimal.Decimal) ObligationStatus {
	switch {
	case amountPaid.GreaterThanOrEqual(amountTotal):
		return ObligationPaid
	case amountPaid.GreaterThan(decimal.Zero):
		return ObligationPartial
	default:
		return ObligationOpen
	}
}

// Obligation is a receivable or payable tracked against a contact.
// AmountPaid only ever increases; partial-payment reversal is not modeled.
type Obligation struct {
	ObligationID string           `json:"obligationID"` // Primary Key (UUID)
	Kind         ObligationKind   `json:"kind"`
	ContactID    string           `json:"contactID"`
	CurrencyCode string           `json:"currencyCode"`
	Description  string           `json:"description"`
	AmountTotal  decimal.Decimal  `json:"amountTotal"`
	AmountPaid   decimal.Decimal  `json:"amountPaid"`
	Status       ObligationStatus `json:"status"`
	AuditFields
}

// Remaining returns the unpaid portion of the obligation.
func (o Obligation) Remaining() decimal.Decimal {
	return o.AmountTotal.Sub(o.AmountPaid)
}

// ObligationPayment links one cash movement (a ledger entry on the account
// where money landed or left) to the obligation it settles against.
type ObligationPayment struct {
	PaymentID    string          `json:"paymentID"` // Primary Key (UUID)
	ObligationID string          `json:"obligationID"`
	AccountID    string          `json:"accountID"`
	EntryID      string          `json:"entryID"` // The income/expense ledger entry
	Amount       decimal.Decimal `json:"amount"`
	PaidAt       time.Time       `json:"paidAt"`
	Note         string          `json:"note"`
	AuditFields
}
