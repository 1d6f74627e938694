package mapping

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/models"
)

// ToModelObligation converts a domain Obligation to a model Obligation
func ToModelObligation(d domain.Obligation) models.Obligation {
	return models.Obligation{
		ObligationID: d.ObligationID,
		Kind:         string(d.Kind),
		ContactID:    d.ContactID,
		CurrencyCode: d.CurrencyCode,
		Description:  d.Description,
		AmountTotal:  d.AmountTotal,
		AmountPaid:   d.AmountPaid,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainObligation converts a model Obligation to a domain Obligation
func ToDomainObligation(m models.Obligation) domain.Obligation {
	return domain.Obligation{
		ObligationID: m.ObligationID,
		Kind:         domain.ObligationKind(m.Kind),
		ContactID:    m.ContactID,
		CurrencyCode: m.CurrencyCode,
		Description:  m.Description,
		AmountTotal:  m.AmountTotal,
		AmountPaid:   m.AmountPaid,
		Status:       domain.ObligationStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelObligationPayment converts a domain ObligationPayment to a model row
func ToModelObligationPayment(d domain.ObligationPayment) models.ObligationPayment {
	return models.ObligationPayment{
		PaymentID:    d.PaymentID,
		ObligationID: d.ObligationID,
		AccountID:    d.AccountID,
		EntryID:      d.EntryID,
		Amount:       d.Amount,
		PaidAt:       d.PaidAt,
		Note:         d.Note,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainObligationPayment converts a model row to a domain ObligationPayment
func ToDomainObligationPayment(m models.ObligationPayment) domain.ObligationPayment {
	return domain.ObligationPayment{
		PaymentID:    m.PaymentID,
		ObligationID: m.ObligationID,
		AccountID:    m.AccountID,
		EntryID:      m.EntryID,
		Amount:       m.Amount,
		PaidAt:       m.PaidAt,
		Note:         m.Note,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
