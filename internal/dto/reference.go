package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name         string              `json:"name" binding:"required"`
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=INCOME EXPENSE"`
}

// UpdateCategoryRequest defines the data allowed when updating a category.
// The category type is fixed at creation.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID   string `json:"categoryID"`
	Name         string `json:"name"`
	CategoryType string `json:"categoryType"`
}

// CreateContactRequest defines the data needed to create a contact.
type CreateContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

// ContactResponse defines the data returned for a contact.
type ContactResponse struct {
	ContactID string `json:"contactID"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreateExchangeRateRequest feeds a rate into the rate-for-date lookup.
type CreateExchangeRateRequest struct {
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3,currency"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	DateEffective time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	CurrencyCode   string          `json:"currencyCode"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
}

// ToCategoryResponse converts a domain.Category to its API shape.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		Name:         c.Name,
		CategoryType: string(c.CategoryType),
	}
}

// ToContactResponse converts a domain.Contact to its API shape.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID: c.ContactID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its API shape.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: r.ExchangeRateID,
		CurrencyCode:   r.CurrencyCode,
		Rate:           r.Rate,
		DateEffective:  r.DateEffective,
	}
}
