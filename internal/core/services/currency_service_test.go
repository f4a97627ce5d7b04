package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/core/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		Code:   "KES",
		Name:   "Kenyan Shilling",
		Symbol: "KSh",
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.Code == req.Code && c.Name == req.Name && c.Symbol == req.Symbol && c.CurrencyID != ""
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(req.Code, currency.Code)
	suite.NotEmpty(currency.CurrencyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_DefaultRefused() {
	ctx := context.Background()
	def := &domain.Currency{CurrencyID: "usd", Code: "USD", Name: "US Dollar", Symbol: "$", IsDefault: true}

	suite.mockRepo.On("FindCurrencyByID", ctx, "usd").Return(def, nil).Once()

	applied, err := suite.service.DeleteCurrency(ctx, "usd")

	suite.Require().NoError(err)
	suite.False(applied, "default currency must survive a delete request")
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCurrency", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestDeleteCurrency_NonDefaultApplied() {
	ctx := context.Background()
	birr := &domain.Currency{CurrencyID: "birr", Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br"}

	suite.mockRepo.On("FindCurrencyByID", ctx, "birr").Return(birr, nil).Once()
	suite.mockRepo.On("DeleteCurrency", ctx, "birr").Return(nil).Once()

	applied, err := suite.service.DeleteCurrency(ctx, "birr")

	suite.Require().NoError(err)
	suite.True(applied)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetDefaultCurrency_FallsBackWhenNoneFlagged() {
	ctx := context.Background()
	currencies := []domain.Currency{
		{CurrencyID: "birr", Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br"},
		{CurrencyID: "kes", Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh"},
	}

	suite.mockRepo.On("ListCurrencies", ctx).Return(currencies, nil).Once()

	def, err := suite.service.GetDefaultCurrency(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(def)
	suite.Equal("birr", def.CurrencyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetDefaultCurrency_PrefersFlagged() {
	ctx := context.Background()
	currencies := []domain.Currency{
		{CurrencyID: "birr", Code: "ETB", Name: "Ethiopian Birr", Symbol: "Br"},
		{CurrencyID: "usd", Code: "USD", Name: "US Dollar", Symbol: "$", IsDefault: true},
	}

	suite.mockRepo.On("ListCurrencies", ctx).Return(currencies, nil).Once()

	def, err := suite.service.GetDefaultCurrency(ctx)

	suite.Require().NoError(err)
	suite.Equal("usd", def.CurrencyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
