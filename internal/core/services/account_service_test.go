package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockEntryRepo   *MockEntryRepository
	mockCurrencySvc *MockCurrencyService
	mockDispatcher  *MockDispatcher
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.mockDispatcher = new(MockDispatcher)
	suite.service = services.NewAccountService(
		suite.mockAccountRepo,
		suite.mockEntryRepo,
		suite.mockCurrencySvc,
		suite.mockDispatcher,
	)
}

func (suite *AccountServiceTestSuite) TestCreateAccountWithoutInitialBalance() {
	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)

	account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:         "Checking",
		CurrencyCode: "USD",
	})

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
	suite.True(account.IsActive)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
	suite.mockDispatcher.AssertNotCalled(suite.T(), "Enqueue", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccountWithInitialBalanceWritesInitialEntry() {
	initial := decimal.NewFromInt(500)
	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil)
	suite.mockCurrencySvc.On("Convert", mock.Anything, initial, "USD", mock.Anything).
		Return(initial, decimal.NewFromInt(1), nil)

	var savedEntries []domain.LedgerEntry
	suite.mockEntryRepo.On("SaveEntries", mock.Anything, mock.AnythingOfType("[]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			savedEntries = args.Get(1).([]domain.LedgerEntry)
		}).Return(nil)
	suite.mockDispatcher.On("Enqueue", mock.AnythingOfType("string")).Return()

	account, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:           "Checking",
		CurrencyCode:   "USD",
		InitialBalance: &initial,
	})

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(initial))
	suite.Require().Len(savedEntries, 1)
	suite.Equal(domain.EntryInitial, savedEntries[0].EntryType)
	suite.True(savedEntries[0].Amount.Equal(initial))
	suite.mockDispatcher.AssertCalled(suite.T(), "Enqueue", account.AccountID)
}

func (suite *AccountServiceTestSuite) TestCreateAccountRejectsUnknownCurrency() {
	_, err := suite.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:         "Checking",
		CurrencyCode: "ZZZ",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	account := domain.Account{AccountID: "acc-1", Name: "Old", CurrencyCode: "USD", IsActive: true}
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, account.AccountID).Return(&account, nil)
	suite.mockAccountRepo.On("DeactivateAccount", mock.Anything, account.AccountID, mock.AnythingOfType("time.Time")).Return(nil)

	err := suite.service.DeactivateAccount(context.Background(), account.AccountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertCalled(suite.T(), "DeactivateAccount", mock.Anything, account.AccountID, mock.AnythingOfType("time.Time"))
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
