package mapping

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		Balance:      d.Balance,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		Balance:      m.Balance,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
