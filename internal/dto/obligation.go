package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateObligationRequest defines the data needed to create a receivable or payable.
type CreateObligationRequest struct {
	Kind         domain.ObligationKind `json:"kind" binding:"required,oneof=RECEIVABLE PAYABLE"`
	ContactID    string                `json:"contactID" binding:"required"`
	CurrencyCode string                `json:"currencyCode" binding:"required,len=3,currency"`
	Description  string                `json:"description"`
	AmountTotal  decimal.Decimal       `json:"amountTotal" binding:"required"`
}

// RecordPaymentRequest defines the data needed to apply a payment against
// an obligation.
type RecordPaymentRequest struct {
	AccountID  string          `json:"accountID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaidAt     time.Time       `json:"paidAt" binding:"required"`
	Note       string          `json:"note"`
	CategoryID *string         `json:"categoryID"` // Optional category for the ledger entry
}

// ObligationResponse defines the data returned for an obligation.
type ObligationResponse struct {
	ObligationID string          `json:"obligationID"`
	Kind         string          `json:"kind"`
	ContactID    string          `json:"contactID"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
	AmountTotal  decimal.Decimal `json:"amountTotal"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// PaymentResponse defines the data returned for an obligation payment.
type PaymentResponse struct {
	PaymentID    string          `json:"paymentID"`
	ObligationID string          `json:"obligationID"`
	AccountID    string          `json:"accountID"`
	EntryID      string          `json:"entryID"`
	Amount       decimal.Decimal `json:"amount"`
	PaidAt       time.Time       `json:"paidAt"`
	Note         string          `json:"note,omitempty"`
}

// ToObligationResponse converts a domain.Obligation to its API shape.
func ToObligationResponse(o *domain.Obligation) ObligationResponse {
	return ObligationResponse{
		ObligationID: o.ObligationID,
		Kind:         string(o.Kind),
		ContactID:    o.ContactID,
		CurrencyCode: o.CurrencyCode,
		Description:  o.Description,
		AmountTotal:  o.AmountTotal,
		AmountPaid:   o.AmountPaid,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

// ToPaymentResponse converts a domain.ObligationPayment to its API shape.
func ToPaymentResponse(p *domain.ObligationPayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		ObligationID: p.ObligationID,
		AccountID:    p.AccountID,
		EntryID:      p.EntryID,
		Amount:       p.Amount,
		PaidAt:       p.PaidAt,
		Note:         p.Note,
	}
}
