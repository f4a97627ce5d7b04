package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// expenseList returns the expenses sorted by creation time. Callers must
// hold at least the read lock.
func (s *Store) expenseList() []domain.Expense {
	list := make([]domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ExpenseID < list[j].ExpenseID
	})
	return list
}

// FindExpenseByID retrieves an expense by its identifier.
func (s *Store) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.expenses[expenseID]
	if !ok {
		return nil, fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return &e, nil
}

// ListExpenses retrieves all expenses.
func (s *Store) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenseList(), nil
}

// ListExpensesByProject retrieves the expenses recorded against one project.
func (s *Store) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []domain.Expense
	for _, e := range s.expenseList() {
		if e.ProjectID == projectID {
			list = append(list, e)
		}
	}
	return list, nil
}

// SaveExpense inserts or updates an expense and persists the collection.
// The lock policy is enforced by the expense service before this is called.
func (s *Store) SaveExpense(ctx context.Context, expense domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[expense.ExpenseID] = expense
	return s.saveDoc(ctx, docKeyExpenses, s.expenseList())
}

// DeleteExpense removes an expense unconditionally.
func (s *Store) DeleteExpense(ctx context.Context, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[expenseID]; !ok {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	delete(s.expenses, expenseID)
	return s.saveDoc(ctx, docKeyExpenses, s.expenseList())
}
