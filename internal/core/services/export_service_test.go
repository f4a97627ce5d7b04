package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/core/services"
)

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockExpenses   *MockExpenseRepository
	mockProjects   *MockProjectReader
	mockBudgets    *MockBudgetReader
	mockCurrencies *MockCurrencyRepository
	service        portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockExpenses = new(MockExpenseRepository)
	suite.mockProjects = new(MockProjectReader)
	suite.mockBudgets = new(MockBudgetReader)
	suite.mockCurrencies = new(MockCurrencyRepository)
	suite.service = services.NewExportService(suite.mockExpenses, suite.mockProjects, suite.mockBudgets, suite.mockCurrencies)
}

func exportableExpense() *domain.Expense {
	return &domain.Expense{
		ExpenseID:   "exp-1",
		ProjectID:   "proj-1",
		BudgetID:    "bud-1",
		Amount:      decimal.NewFromInt(300),
		CurrencyID:  "usd",
		Description: "Field equipment",
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		RequestedBy: "Abebe",
		Status:      domain.StatusApproved,
		ApprovedBy:  "Hana",
		CreatedAt:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		IsLocked:    true,
	}
}

// openWorkbook reads the exported bytes back so assertions run against what
// a spreadsheet application would actually display.
func (suite *ExportServiceTestSuite) openWorkbook(data []byte) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { f.Close() })
	return f
}

func (suite *ExportServiceTestSuite) cell(f *excelize.File, sheet, cell string) string {
	value, err := f.GetCellValue(sheet, cell)
	suite.Require().NoError(err)
	return value
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExpenseDetailWorkbook_ResolvedReferences() {
	ctx := context.Background()
	expense := exportableExpense()

	suite.mockExpenses.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1", Name: "Water Supply"}, nil).Once()
	suite.mockBudgets.On("FindBudgetByID", ctx, "bud-1").Return(&domain.Budget{BudgetID: "bud-1", ProjectID: "proj-1"}, nil).Once()
	suite.mockCurrencies.On("FindCurrencyByID", ctx, "usd").Return(&domain.Currency{CurrencyID: "usd", Code: "USD", Symbol: "$"}, nil).Once()

	data, filename, err := suite.service.ExpenseDetailWorkbook(ctx, "exp-1")

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(filename, "expense_exp-1_"))
	suite.True(strings.HasSuffix(filename, ".xlsx"))

	f := suite.openWorkbook(data)
	const sheet = "Expense Details"
	suite.Equal("Expense Transaction Details", suite.cell(f, sheet, "A1"))
	suite.Equal("Field", suite.cell(f, sheet, "A3"))
	suite.Equal("Value", suite.cell(f, sheet, "B3"))
	suite.Equal("Expense ID", suite.cell(f, sheet, "A4"))
	suite.Equal("exp-1", suite.cell(f, sheet, "B4"))
	suite.Equal("Water Supply", suite.cell(f, sheet, "B5"))
	suite.Equal("bud-1", suite.cell(f, sheet, "B6"))
	suite.Equal("$300 USD", suite.cell(f, sheet, "B7"))
	suite.Equal("Mar 14, 2025", suite.cell(f, sheet, "B9"))
	suite.Equal("Approved", suite.cell(f, sheet, "B10"))
	suite.Equal("Abebe", suite.cell(f, sheet, "B11"))
	suite.Equal("Hana", suite.cell(f, sheet, "B12"))

	suite.mockExpenses.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExpenseDetailWorkbook_DanglingReferencesFallBack() {
	ctx := context.Background()
	expense := exportableExpense()
	expense.Status = domain.StatusPending
	expense.ApprovedBy = ""

	suite.mockExpenses.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBudgets.On("FindBudgetByID", ctx, "bud-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencies.On("FindCurrencyByID", ctx, "usd").Return(nil, apperrors.ErrNotFound).Once()

	data, _, err := suite.service.ExpenseDetailWorkbook(ctx, "exp-1")

	suite.Require().NoError(err)

	f := suite.openWorkbook(data)
	const sheet = "Expense Details"
	suite.Equal("N/A", suite.cell(f, sheet, "B5"), "deleted project")
	suite.Equal("N/A", suite.cell(f, sheet, "B6"), "deleted budget")
	suite.Equal(domain.FallbackSymbol+"300", suite.cell(f, sheet, "B7"), "deleted currency keeps the fallback symbol")
	suite.Equal("Pending", suite.cell(f, sheet, "B10"))
	suite.Equal("N/A", suite.cell(f, sheet, "B12"), "empty approver")
	suite.Equal("N/A", suite.cell(f, sheet, "B13"), "empty authorizer")
}

func (suite *ExportServiceTestSuite) TestExpenseDetailWorkbook_ExpenseNotFound() {
	ctx := context.Background()
	suite.mockExpenses.On("FindExpenseByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	data, filename, err := suite.service.ExpenseDetailWorkbook(ctx, "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(data)
	suite.Empty(filename)
}

func (suite *ExportServiceTestSuite) TestExpensesWorkbook_RowsAndFallbacks() {
	ctx := context.Background()
	first := exportableExpense()
	second := exportableExpense()
	second.ExpenseID = "exp-2"
	second.ProjectID = "gone"
	second.CurrencyID = "gone"
	second.Status = domain.StatusPending
	second.ApprovedBy = ""

	suite.mockExpenses.On("ListExpenses", ctx).Return([]domain.Expense{*first, *second}, nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1", Name: "Water Supply"}, nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencies.On("FindCurrencyByID", ctx, "usd").Return(&domain.Currency{CurrencyID: "usd", Code: "USD", Symbol: "$"}, nil).Once()
	suite.mockCurrencies.On("FindCurrencyByID", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()

	data, filename, err := suite.service.ExpensesWorkbook(ctx)

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(filename, "expenses_"))
	suite.True(strings.HasSuffix(filename, ".xlsx"))

	f := suite.openWorkbook(data)
	const sheet = "Expenses"
	suite.Equal("Expense Transactions", suite.cell(f, sheet, "A1"))
	suite.Equal("ID", suite.cell(f, sheet, "A3"))
	suite.Equal("Project", suite.cell(f, sheet, "B3"))
	suite.Equal("Authorized By", suite.cell(f, sheet, "J3"))

	suite.Equal("exp-1", suite.cell(f, sheet, "A4"))
	suite.Equal("Water Supply", suite.cell(f, sheet, "B4"))
	suite.Equal("USD", suite.cell(f, sheet, "D4"))
	suite.Equal("approved", suite.cell(f, sheet, "G4"))

	suite.Equal("exp-2", suite.cell(f, sheet, "A5"))
	suite.Equal("N/A", suite.cell(f, sheet, "B5"), "deleted project")
	suite.Equal("N/A", suite.cell(f, sheet, "D5"), "deleted currency")
	suite.Equal("N/A", suite.cell(f, sheet, "I5"), "empty approver")
}

func (suite *ExportServiceTestSuite) TestExpenseDetailPDF() {
	ctx := context.Background()
	expense := exportableExpense()

	suite.mockExpenses.On("FindExpenseByID", ctx, "exp-1").Return(expense, nil).Once()
	suite.mockProjects.On("FindProjectByID", ctx, "proj-1").Return(&domain.Project{ProjectID: "proj-1", Name: "Water Supply"}, nil).Once()
	suite.mockBudgets.On("FindBudgetByID", ctx, "bud-1").Return(&domain.Budget{BudgetID: "bud-1", ProjectID: "proj-1"}, nil).Once()
	suite.mockCurrencies.On("FindCurrencyByID", ctx, "usd").Return(&domain.Currency{CurrencyID: "usd", Code: "USD", Symbol: "$"}, nil).Once()

	data, filename, err := suite.service.ExpenseDetailPDF(ctx, "exp-1")

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(filename, "expense_exp-1_"))
	suite.True(strings.HasSuffix(filename, ".pdf"))
	suite.True(bytes.HasPrefix(data, []byte("%PDF")), "output starts with the PDF magic bytes")
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
