package repositories

import (
	"context"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
)

// CategoryRepositoryFacade defines operations for category data.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ContactRepositoryFacade defines operations for contact data.
type ContactRepositoryFacade interface {
	SaveContact(ctx context.Context, contact domain.Contact) error
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

// ExchangeRateRepositoryFacade defines operations for exchange rate data.
// Rates are an external feed; the core only ever asks for the most recent
// rate effective on or before a date.
type ExchangeRateRepositoryFacade interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	FindRateForDate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error)
	ListRatesByCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)
}
