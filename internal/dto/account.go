package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string           `json:"name" binding:"required"`
	CurrencyCode   string           `json:"currencyCode" binding:"required,len=3,currency"`
	InitialBalance *decimal.Decimal `json:"initialBalance"` // Optional; creates an INITIAL entry
}

// UpdateAccountRequest defines the data allowed for updating an account.
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	CurrencyCode  string          `json:"currencyCode"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		CurrencyCode:  acc.CurrencyCode,
		Balance:       acc.Balance,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}
