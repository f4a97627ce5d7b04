package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// transactionList returns the transactions sorted by date, newest first.
// Callers must hold at least the read lock.
func (s *Store) transactionList() []domain.Transaction {
	list := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].TransactionID < list[j].TransactionID
	})
	return list
}

// categoryList returns the categories sorted by name. Callers must hold at
// least the read lock.
func (s *Store) categoryList() []domain.Category {
	list := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].CategoryID < list[j].CategoryID
	})
	return list
}

// FindTransactionByID retrieves a transaction by its identifier.
func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return &t, nil
}

// ListTransactions retrieves all transactions.
func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactionList(), nil
}

// SaveTransaction inserts or updates a transaction and persists the collection.
func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[txn.TransactionID] = txn
	return s.saveDoc(ctx, docKeyTransactions, s.transactionList())
}

// DeleteTransaction removes a transaction.
func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[transactionID]; !ok {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	delete(s.transactions, transactionID)
	return s.saveDoc(ctx, docKeyTransactions, s.transactionList())
}

// ListCategories retrieves all categories.
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryList(), nil
}

// SaveCategory inserts or updates a category and persists the collection.
func (s *Store) SaveCategory(ctx context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.CategoryID] = category
	return s.saveDoc(ctx, docKeyCategories, s.categoryList())
}
