package services

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// CategorySvcFacade defines operations for categories
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ContactSvcFacade defines operations for contacts
type ContactSvcFacade interface {
	CreateContact(ctx context.Context, req dto.CreateContactRequest) (*domain.Contact, error)
	GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

// ExchangeRateSvcFacade defines operations for stored exchange rates
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
	GetRateForDate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)
}
