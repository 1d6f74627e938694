package services

import (
	"context"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
