package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// currencyService manages the user-defined currency set. The one policy it
// enforces is default-currency protection: the default currency cannot be
// deleted, and the refusal is a silent no-op rather than an error.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	// Presence and format checks are handled by DTO binding.
	currency := domain.Currency{
		CurrencyID: uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Symbol:     req.Symbol,
		IsDefault:  req.IsDefault,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) GetDefaultCurrency(ctx context.Context) (*domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	for i := range currencies {
		if currencies[i].IsDefault {
			return &currencies[i], nil
		}
	}
	// No currency is flagged: fall back to any existing one so forms can
	// still function.
	if len(currencies) > 0 {
		return &currencies[0], nil
	}
	return nil, fmt.Errorf("default currency: %w", apperrors.ErrNotFound)
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency for update: %w", err)
	}

	if req.Code != nil {
		currency.Code = *req.Code
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.IsDefault != nil {
		currency.IsDefault = *req.IsDefault
	}

	if err := s.currencyRepo.SaveCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}
	return currency, nil
}

// DeleteCurrency removes a currency unless it is flagged as the system
// default. The refusal is reported through applied, never as an error.
func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID string) (bool, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return false, fmt.Errorf("failed to get currency for delete: %w", err)
	}
	if currency.IsDefault {
		return false, nil
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		return false, fmt.Errorf("failed to delete currency: %w", err)
	}
	return true, nil
}
