package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackio/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/dto"
)

type ObligationServiceTestSuite struct {
	suite.Suite
	mockObligationRepo *MockObligationRepository
	mockAccountSvc     *MockAccountService
	mockContactRepo    *MockContactRepository
	mockCurrencySvc    *MockCurrencyService
	mockDispatcher     *MockDispatcher
	service            portssvc.ObligationSvcFacade

	account domain.Account
	contact domain.Contact
	paidAt  time.Time
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockObligationRepo = new(MockObligationRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.mockDispatcher = new(MockDispatcher)
	suite.service = services.NewObligationService(
		suite.mockObligationRepo,
		suite.mockAccountSvc,
		suite.mockContactRepo,
		suite.mockCurrencySvc,
		suite.mockDispatcher,
	)

	suite.account = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Checking",
		CurrencyCode: "USD",
		Balance:      decimal.NewFromInt(500),
		IsActive:     true,
	}
	suite.contact = domain.Contact{ContactID: uuid.NewString(), Name: "Alex"}
	suite.paidAt = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *ObligationServiceTestSuite) receivable(total, paid int64) *domain.Obligation {
	totalDec := decimal.NewFromInt(total)
	paidDec := decimal.NewFromInt(paid)
	return &domain.Obligation{
		ObligationID: uuid.NewString(),
		Kind:         domain.Receivable,
		ContactID:    suite.contact.ContactID,
		CurrencyCode: "USD",
		Description:  "Loan to Alex",
		AmountTotal:  totalDec,
		AmountPaid:   paidDec,
		Status:       domain.StatusForPaid(paidDec, totalDec),
	}
}

func (suite *ObligationServiceTestSuite) expectPaymentPlumbing(amount decimal.Decimal) {
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil)
	suite.mockCurrencySvc.On("Convert", mock.Anything, amount, "USD", mock.Anything).
		Return(amount, decimal.NewFromInt(1), nil)
	suite.mockDispatcher.On("Enqueue", suite.account.AccountID).Return()
}

func (suite *ObligationServiceTestSuite) TestCreateObligation() {
	suite.mockContactRepo.On("FindContactByID", mock.Anything, suite.contact.ContactID).Return(&suite.contact, nil)
	suite.mockObligationRepo.On("SaveObligation", mock.Anything, mock.AnythingOfType("domain.Obligation")).Return(nil)

	obligation, err := suite.service.CreateObligation(context.Background(), dto.CreateObligationRequest{
		Kind:         domain.Receivable,
		ContactID:    suite.contact.ContactID,
		CurrencyCode: "USD",
		Description:  "Loan to Alex",
		AmountTotal:  decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationOpen, obligation.Status)
	suite.True(obligation.AmountPaid.IsZero())
}

func (suite *ObligationServiceTestSuite) TestCreateObligationRejectsUnknownContact() {
	suite.mockContactRepo.On("FindContactByID", mock.Anything, suite.contact.ContactID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateObligation(context.Background(), dto.CreateObligationRequest{
		Kind:         domain.Payable,
		ContactID:    suite.contact.ContactID,
		CurrencyCode: "USD",
		AmountTotal:  decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// Walks a 100 receivable through 30/40/30 installments and checks the
// status transitions OPEN -> PARTIAL -> PARTIAL -> PAID.
func (suite *ObligationServiceTestSuite) TestRecordPaymentInstallmentWalk() {
	steps := []struct {
		alreadyPaid int64
		payment     int64
		wantStatus  domain.ObligationStatus
	}{
		{alreadyPaid: 0, payment: 30, wantStatus: domain.ObligationPartial},
		{alreadyPaid: 30, payment: 40, wantStatus: domain.ObligationPartial},
		{alreadyPaid: 70, payment: 30, wantStatus: domain.ObligationPaid},
	}

	for _, step := range steps {
		suite.SetupTest()
		obligation := suite.receivable(100, step.alreadyPaid)
		amount := decimal.NewFromInt(step.payment)

		suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)
		suite.expectPaymentPlumbing(amount)

		updated := *obligation
		updated.AmountPaid = obligation.AmountPaid.Add(amount)
		updated.Status = domain.StatusForPaid(updated.AmountPaid, updated.AmountTotal)

		var savedEntry domain.LedgerEntry
		suite.mockObligationRepo.On("SavePayment", mock.Anything,
			mock.AnythingOfType("domain.ObligationPayment"),
			mock.AnythingOfType("domain.LedgerEntry"),
			mock.AnythingOfType("decimal.Decimal"),
		).Run(func(args mock.Arguments) {
			savedEntry = args.Get(2).(domain.LedgerEntry)
		}).Return(&updated, nil)

		payment, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
			AccountID: suite.account.AccountID,
			Amount:    amount,
			PaidAt:    suite.paidAt,
		})

		suite.Require().NoError(err)
		suite.True(payment.Amount.Equal(amount))
		suite.Equal(step.wantStatus, updated.Status)
		suite.True(updated.AmountPaid.Equal(decimal.NewFromInt(step.alreadyPaid + step.payment)))
		suite.Equal(domain.EntryIncome, savedEntry.EntryType)
		suite.Equal(payment.EntryID, savedEntry.EntryID)
		suite.mockDispatcher.AssertCalled(suite.T(), "Enqueue", suite.account.AccountID)
	}
}

func (suite *ObligationServiceTestSuite) TestRecordPaymentPayableCreatesExpense() {
	obligation := suite.receivable(100, 0)
	obligation.Kind = domain.Payable
	amount := decimal.NewFromInt(100)

	suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)
	suite.expectPaymentPlumbing(amount)

	updated := *obligation
	updated.AmountPaid = amount
	updated.Status = domain.StatusForPaid(updated.AmountPaid, updated.AmountTotal)

	var savedEntry domain.LedgerEntry
	var optimisticBalance decimal.Decimal
	suite.mockObligationRepo.On("SavePayment", mock.Anything,
		mock.AnythingOfType("domain.ObligationPayment"),
		mock.AnythingOfType("domain.LedgerEntry"),
		mock.AnythingOfType("decimal.Decimal"),
	).Run(func(args mock.Arguments) {
		savedEntry = args.Get(2).(domain.LedgerEntry)
		optimisticBalance = args.Get(3).(decimal.Decimal)
	}).Return(&updated, nil)

	_, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    amount,
		PaidAt:    suite.paidAt,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.EntryExpense, savedEntry.EntryType)
	// 500 on the account, 100 paid out.
	suite.True(optimisticBalance.Equal(decimal.NewFromInt(400)))
}

func (suite *ObligationServiceTestSuite) TestRecordPaymentRejectsOverpayment() {
	obligation := suite.receivable(100, 70)

	suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)

	_, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    decimal.NewFromInt(31),
		PaidAt:    suite.paidAt,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrOverpayment)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "SavePayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// The precheck runs on a snapshot; a payment racing another one can pass
// it and still lose on the locked re-read inside the repository. The
// repository's rejection must come back as an overpayment error and no
// recalculation may be scheduled.
func (suite *ObligationServiceTestSuite) TestRecordPaymentRepositoryOverpaymentSurfaces() {
	obligation := suite.receivable(100, 0)
	amount := decimal.NewFromInt(60)

	suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil)
	suite.mockCurrencySvc.On("Convert", mock.Anything, amount, "USD", mock.Anything).
		Return(amount, decimal.NewFromInt(1), nil)

	suite.mockObligationRepo.On("SavePayment", mock.Anything,
		mock.AnythingOfType("domain.ObligationPayment"),
		mock.AnythingOfType("domain.LedgerEntry"),
		mock.AnythingOfType("decimal.Decimal"),
	).Return(nil, fmt.Errorf("%w: remaining 40, payment 60", domain.ErrOverpayment))

	_, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    amount,
		PaidAt:    suite.paidAt,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrOverpayment)
	suite.mockDispatcher.AssertNotCalled(suite.T(), "Enqueue", mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestRecordPaymentAllowsRoundingOnFinalInstallment() {
	obligation := suite.receivable(100, 70)
	amount := decimal.RequireFromString("30.01")

	suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)
	suite.expectPaymentPlumbing(amount)

	updated := *obligation
	updated.AmountPaid = obligation.AmountPaid.Add(amount)
	updated.Status = domain.StatusForPaid(updated.AmountPaid, updated.AmountTotal)
	suite.mockObligationRepo.On("SavePayment", mock.Anything,
		mock.AnythingOfType("domain.ObligationPayment"),
		mock.AnythingOfType("domain.LedgerEntry"),
		mock.AnythingOfType("decimal.Decimal"),
	).Return(&updated, nil)

	_, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    amount,
		PaidAt:    suite.paidAt,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationPaid, updated.Status)
}

func (suite *ObligationServiceTestSuite) TestRecordPaymentRejectsSettledObligation() {
	obligation := suite.receivable(100, 100)

	suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)

	_, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    decimal.NewFromInt(1),
		PaidAt:    suite.paidAt,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrObligationSettled)
}

func (suite *ObligationServiceTestSuite) TestRecordPaymentRejectsCurrencyMismatch() {
	obligation := suite.receivable(100, 0)
	obligation.CurrencyCode = "EUR"

	suite.mockObligationRepo.On("FindObligationByID", mock.Anything, obligation.ObligationID).Return(obligation, nil)
	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, suite.account.AccountID).Return(&suite.account, nil)

	_, err := suite.service.RecordPayment(context.Background(), obligation.ObligationID, dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    decimal.NewFromInt(50),
		PaidAt:    suite.paidAt,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaymentCurrency)
}

func (suite *ObligationServiceTestSuite) TestRecordPaymentRejectsNonPositiveAmount() {
	_, err := suite.service.RecordPayment(context.Background(), uuid.NewString(), dto.RecordPaymentRequest{
		AccountID: suite.account.AccountID,
		Amount:    decimal.Zero,
		PaidAt:    suite.paidAt,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPaymentAmountInvalid)
}

func TestObligationService(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
