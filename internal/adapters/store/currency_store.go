package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// currencyList returns the currencies sorted by code. Callers must hold at
// least the read lock.
func (s *Store) currencyList() []domain.Currency {
	list := make([]domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Code != list[j].Code {
			return list[i].Code < list[j].Code
		}
		return list[i].CurrencyID < list[j].CurrencyID
	})
	return list
}

// FindCurrencyByID retrieves a currency by its identifier.
func (s *Store) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.currencies[currencyID]
	if !ok {
		return nil, fmt.Errorf("currency %s: %w", currencyID, apperrors.ErrNotFound)
	}
	return &c, nil
}

// ListCurrencies retrieves all currencies.
func (s *Store) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currencyList(), nil
}

// SaveCurrency inserts or updates a currency and persists the collection.
func (s *Store) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currencies[currency.CurrencyID] = currency
	return s.saveDoc(ctx, docKeyCurrencies, s.currencyList())
}

// DeleteCurrency removes a currency unconditionally. Budgets and expenses
// may keep referencing the removed id; readers fall back to a default
// display symbol.
func (s *Store) DeleteCurrency(ctx context.Context, currencyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.currencies[currencyID]; !ok {
		return fmt.Errorf("currency %s: %w", currencyID, apperrors.ErrNotFound)
	}
	delete(s.currencies, currencyID)
	return s.saveDoc(ctx, docKeyCurrencies, s.currencyList())
}
