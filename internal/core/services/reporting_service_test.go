package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/core/services"
)

// --- Mock ProjectReader ---
type MockProjectReader struct {
	mock.Mock
}

func (m *MockProjectReader) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectReader) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// --- Mock BudgetReader ---
type MockBudgetReader struct {
	mock.Mock
}

func (m *MockBudgetReader) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetReader) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetReader) ListBudgetsByProject(ctx context.Context, projectID string) ([]domain.Budget, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockProjects *MockProjectReader
	mockBudgets  *MockBudgetReader
	mockExpenses *MockExpenseRepository
	service      portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockProjects = new(MockProjectReader)
	suite.mockBudgets = new(MockBudgetReader)
	suite.mockExpenses = new(MockExpenseRepository)
	suite.service = services.NewReportingService(suite.mockProjects, suite.mockBudgets, suite.mockExpenses)
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestProjectTotals() {
	ctx := context.Background()

	suite.mockBudgets.On("ListBudgetsByProject", ctx, "p1").Return([]domain.Budget{
		{BudgetID: "b1", ProjectID: "p1", Amount: dec(1000)},
		{BudgetID: "b2", ProjectID: "p1", Amount: dec(500)},
	}, nil)
	suite.mockExpenses.On("ListExpensesByProject", ctx, "p1").Return([]domain.Expense{
		{ExpenseID: "e1", ProjectID: "p1", Amount: dec(300)},
	}, nil)

	budget, err := suite.service.TotalBudgetForProject(ctx, "p1")
	suite.Require().NoError(err)
	suite.True(budget.Equal(dec(1500)))

	spent, err := suite.service.TotalExpensesForProject(ctx, "p1")
	suite.Require().NoError(err)
	suite.True(spent.Equal(dec(300)))

	remaining, err := suite.service.RemainingBudgetForProject(ctx, "p1")
	suite.Require().NoError(err)
	suite.True(remaining.Equal(dec(1200)))
}

func (suite *ReportingServiceTestSuite) TestRemainingBudget_NegativeWhenOverspent() {
	ctx := context.Background()

	suite.mockBudgets.On("ListBudgetsByProject", ctx, "p2").Return([]domain.Budget{
		{BudgetID: "b3", ProjectID: "p2", Amount: dec(200)},
	}, nil)
	suite.mockExpenses.On("ListExpensesByProject", ctx, "p2").Return([]domain.Expense{
		{ExpenseID: "e2", ProjectID: "p2", Amount: dec(350)},
	}, nil)

	remaining, err := suite.service.RemainingBudgetForProject(ctx, "p2")
	suite.Require().NoError(err)
	suite.True(remaining.Equal(dec(-150)), "overspend must surface as a negative remaining budget")
}

func (suite *ReportingServiceTestSuite) TestLedgerSummary_ContingencyEqualsRemaining() {
	ctx := context.Background()

	suite.mockProjects.On("ListProjects", ctx).Return([]domain.Project{
		{ProjectID: "p1", Name: "Water Supply"},
		{ProjectID: "p2", Name: "Health Outreach"},
	}, nil)
	suite.mockBudgets.On("ListBudgets", ctx).Return([]domain.Budget{
		{BudgetID: "b1", ProjectID: "p1", Amount: dec(1500)},
		{BudgetID: "b3", ProjectID: "p2", Amount: dec(200)},
	}, nil)
	suite.mockBudgets.On("ListBudgetsByProject", ctx, "p1").Return([]domain.Budget{
		{BudgetID: "b1", ProjectID: "p1", Amount: dec(1500)},
	}, nil)
	suite.mockBudgets.On("ListBudgetsByProject", ctx, "p2").Return([]domain.Budget{
		{BudgetID: "b3", ProjectID: "p2", Amount: dec(200)},
	}, nil)
	suite.mockExpenses.On("ListExpenses", ctx).Return([]domain.Expense{
		{ExpenseID: "e1", ProjectID: "p1", Amount: dec(300)},
		{ExpenseID: "e2", ProjectID: "p2", Amount: dec(350)},
	}, nil)
	suite.mockExpenses.On("ListExpensesByProject", ctx, "p1").Return([]domain.Expense{
		{ExpenseID: "e1", ProjectID: "p1", Amount: dec(300)},
	}, nil)
	suite.mockExpenses.On("ListExpensesByProject", ctx, "p2").Return([]domain.Expense{
		{ExpenseID: "e2", ProjectID: "p2", Amount: dec(350)},
	}, nil)

	summary, err := suite.service.GetLedgerSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalBudget.Equal(dec(1700)))
	suite.True(summary.TotalExpenses.Equal(dec(650)))
	suite.True(summary.TotalRemainingBudget.Equal(dec(1050)))
	suite.True(summary.TotalContingencyBudget.Equal(summary.TotalRemainingBudget),
		"contingency budget is the total remaining budget by definition")
}

func (suite *ReportingServiceTestSuite) TestLedgerSummary_EmptyLedgerIsZero() {
	ctx := context.Background()

	suite.mockProjects.On("ListProjects", ctx).Return([]domain.Project{}, nil)
	suite.mockBudgets.On("ListBudgets", ctx).Return([]domain.Budget{}, nil)
	suite.mockExpenses.On("ListExpenses", ctx).Return([]domain.Expense{}, nil)

	summary, err := suite.service.GetLedgerSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalBudget.IsZero())
	suite.True(summary.TotalExpenses.IsZero())
	suite.True(summary.TotalRemainingBudget.IsZero())
	suite.True(summary.TotalContingencyBudget.IsZero())
}

func (suite *ReportingServiceTestSuite) TestSpendingTrend_GroupsByMonthInOrder() {
	ctx := context.Background()

	suite.mockExpenses.On("ListExpenses", ctx).Return([]domain.Expense{
		{ExpenseID: "e1", Amount: dec(100), Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
		{ExpenseID: "e2", Amount: dec(40), Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ExpenseID: "e3", Amount: dec(60), Date: time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)},
	}, nil)

	trend, err := suite.service.GetSpendingTrend(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(trend, 2)
	suite.Equal("2025-01", trend[0].Month)
	suite.True(trend[0].Total.Equal(dec(40)))
	suite.Equal("2025-03", trend[1].Month)
	suite.True(trend[1].Total.Equal(dec(160)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
