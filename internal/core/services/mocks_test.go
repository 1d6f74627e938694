package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrackio/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockEntryRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) RecalculateAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

// --- Mock ObligationRepository ---
type MockObligationRepository struct {
	mock.Mock
}

var _ portsrepo.ObligationRepositoryFacade = (*MockObligationRepository)(nil)

func (m *MockObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	args := m.Called(ctx, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) ListObligations(ctx context.Context, kind *domain.ObligationKind) ([]domain.Obligation, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Obligation), args.Error(1)
}

func (m *MockObligationRepository) ListPaymentsByObligation(ctx context.Context, obligationID string) ([]domain.ObligationPayment, error) {
	args := m.Called(ctx, obligationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ObligationPayment), args.Error(1)
}

func (m *MockObligationRepository) SaveObligation(ctx context.Context, obligation domain.Obligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) SavePayment(ctx context.Context, payment domain.ObligationPayment, entry domain.LedgerEntry, optimisticBalance decimal.Decimal) (*domain.Obligation, error) {
	args := m.Called(ctx, payment, entry, optimisticBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Obligation), args.Error(1)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

var _ portsrepo.ContactRepositoryFacade = (*MockContactRepository)(nil)

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

var _ portsrepo.CategoryRepositoryFacade = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindRateForDate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRatesByCurrency(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

func (m *MockBudgetRepository) SumSpendByCategory(ctx context.Context, categoryID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, categoryID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock AccountService (as used by TransactionService and ObligationService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func (m *MockCurrencyService) RateForDate(ctx context.Context, currencyCode string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyService) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, date time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, amount, currencyCode, date)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockCurrencyService) BaseCurrency() string {
	args := m.Called()
	return args.String(0)
}

// --- Mock RecalcDispatcher ---
type MockDispatcher struct {
	mock.Mock
}

var _ portssvc.RecalcDispatcher = (*MockDispatcher)(nil)

func (m *MockDispatcher) Enqueue(accountID string) {
	m.Called(accountID)
}

func (m *MockDispatcher) RunSync(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
