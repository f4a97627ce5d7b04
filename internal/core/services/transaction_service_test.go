package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/core/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockTransactionRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestGetTransactionSummary() {
	ctx := context.Background()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{
		{TransactionID: "t1", Type: domain.TxnIncome, Amount: decimal.NewFromInt(2000), Date: date},
		{TransactionID: "t2", Type: domain.TxnExpense, Amount: decimal.NewFromInt(450), Date: date},
		{TransactionID: "t3", Type: domain.TxnIncome, Amount: decimal.NewFromInt(300), Date: date},
	}, nil).Once()

	summary, err := suite.service.GetTransactionSummary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(2300)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(450)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(1850)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       string(domain.TxnExpense),
		Amount:     decimal.NewFromInt(-5),
		CategoryID: "food",
		Date:       time.Now().UTC(),
	}

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateCategory_DuplicateNameRejected() {
	ctx := context.Background()

	suite.mockRepo.On("ListCategories", ctx).Return([]domain.Category{
		{CategoryID: "food", Name: "Food & Dining", Type: domain.TxnExpense, Color: "#ef4444"},
	}, nil).Once()

	_, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name:  "food & dining",
		Type:  string(domain.TxnExpense),
		Color: "#000000",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()

	suite.mockRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Fieldwork" && c.Type == domain.TxnExpense && c.CategoryID != ""
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name:  "Fieldwork",
		Type:  string(domain.TxnExpense),
		Color: "#123456",
	})

	suite.Require().NoError(err)
	suite.Equal("Fieldwork", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
