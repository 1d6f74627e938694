package services_test

import (
	"context"
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

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.BudgetSvcFacade

	expenseCategory domain.Category
	periodStart     time.Time
	periodEnd       time.Time
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo)

	suite.expenseCategory = domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         "Groceries",
		CategoryType: domain.CategoryExpense,
	}
	suite.periodStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.periodEnd = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
}

func (suite *BudgetServiceTestSuite) budget(amount int64) *domain.Budget {
	return &domain.Budget{
		BudgetID:    uuid.NewString(),
		CategoryID:  suite.expenseCategory.CategoryID,
		Amount:      decimal.NewFromInt(amount),
		PeriodStart: suite.periodStart,
		PeriodEnd:   suite.periodEnd,
	}
}

func (suite *BudgetServiceTestSuite) TestCreateBudget() {
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.expenseCategory.CategoryID).Return(&suite.expenseCategory, nil)
	suite.mockBudgetRepo.On("SaveBudget", mock.Anything, mock.AnythingOfType("domain.Budget")).Return(nil)

	budget, err := suite.service.CreateBudget(context.Background(), dto.CreateBudgetRequest{
		CategoryID:  suite.expenseCategory.CategoryID,
		Amount:      decimal.NewFromInt(400),
		PeriodStart: suite.periodStart,
		PeriodEnd:   suite.periodEnd,
	})

	suite.Require().NoError(err)
	suite.NotEmpty(budget.BudgetID)
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetRejectsIncomeCategory() {
	incomeCategory := domain.Category{
		CategoryID:   uuid.NewString(),
		Name:         "Salary",
		CategoryType: domain.CategoryIncome,
	}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, incomeCategory.CategoryID).Return(&incomeCategory, nil)

	_, err := suite.service.CreateBudget(context.Background(), dto.CreateBudgetRequest{
		CategoryID:  incomeCategory.CategoryID,
		Amount:      decimal.NewFromInt(400),
		PeriodStart: suite.periodStart,
		PeriodEnd:   suite.periodEnd,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBudgetCategoryIncome)
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetRejectsInvertedPeriod() {
	_, err := suite.service.CreateBudget(context.Background(), dto.CreateBudgetRequest{
		CategoryID:  suite.expenseCategory.CategoryID,
		Amount:      decimal.NewFromInt(400),
		PeriodStart: suite.periodEnd,
		PeriodEnd:   suite.periodStart,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBudgetPeriodInvalid)
}

func (suite *BudgetServiceTestSuite) TestEvaluateBudgetUnderLimit() {
	budget := suite.budget(400)
	suite.mockBudgetRepo.On("FindBudgetByID", mock.Anything, budget.BudgetID).Return(budget, nil)
	suite.mockBudgetRepo.On("SumSpendByCategory", mock.Anything, budget.CategoryID, suite.periodStart, suite.periodEnd).
		Return(decimal.NewFromInt(250), nil)

	report, err := suite.service.EvaluateBudget(context.Background(), budget.BudgetID)

	suite.Require().NoError(err)
	suite.True(report.Spent.Equal(decimal.NewFromInt(250)))
	suite.True(report.Remaining.Equal(decimal.NewFromInt(150)))
	suite.False(report.Exceeded)
}

func (suite *BudgetServiceTestSuite) TestEvaluateBudgetExceeded() {
	budget := suite.budget(400)
	suite.mockBudgetRepo.On("FindBudgetByID", mock.Anything, budget.BudgetID).Return(budget, nil)
	suite.mockBudgetRepo.On("SumSpendByCategory", mock.Anything, budget.CategoryID, suite.periodStart, suite.periodEnd).
		Return(decimal.RequireFromString("412.50"), nil)

	report, err := suite.service.EvaluateBudget(context.Background(), budget.BudgetID)

	suite.Require().NoError(err)
	suite.True(report.Exceeded)
	suite.True(report.Remaining.Equal(decimal.RequireFromString("-12.50")))
}

func (suite *BudgetServiceTestSuite) TestEvaluateBudgetNotFound() {
	budgetID := uuid.NewString()
	suite.mockBudgetRepo.On("FindBudgetByID", mock.Anything, budgetID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.EvaluateBudget(context.Background(), budgetID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
