package mapping

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		CategoryType: string(d.CategoryType),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		CategoryType: domain.CategoryType(m.CategoryType),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContact converts a domain Contact to a model Contact
func ToModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID:   d.ContactID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContact converts a model Contact to a domain Contact
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:   m.ContactID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		CurrencyCode:   d.CurrencyCode,
		Rate:           d.Rate,
		DateEffective:  d.DateEffective,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		CurrencyCode:   m.CurrencyCode,
		Rate:           m.Rate,
		DateEffective:  m.DateEffective,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		CategoryID:  d.CategoryID,
		Amount:      d.Amount,
		PeriodStart: d.PeriodStart,
		PeriodEnd:   d.PeriodEnd,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
