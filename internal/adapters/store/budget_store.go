package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// budgetList returns the budgets sorted by creation time. Callers must hold
// at least the read lock.
func (s *Store) budgetList() []domain.Budget {
	list := make([]domain.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].BudgetID < list[j].BudgetID
	})
	return list
}

// FindBudgetByID retrieves a budget by its identifier.
func (s *Store) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.budgets[budgetID]
	if !ok {
		return nil, fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
	}
	return &b, nil
}

// ListBudgets retrieves all budgets.
func (s *Store) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budgetList(), nil
}

// ListBudgetsByProject retrieves the budgets owned by one project.
func (s *Store) ListBudgetsByProject(ctx context.Context, projectID string) ([]domain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []domain.Budget
	for _, b := range s.budgetList() {
		if b.ProjectID == projectID {
			list = append(list, b)
		}
	}
	return list, nil
}

// SaveBudget inserts or updates a budget and persists the collection.
func (s *Store) SaveBudget(ctx context.Context, budget domain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[budget.BudgetID] = budget
	return s.saveDoc(ctx, docKeyBudgets, s.budgetList())
}

// DeleteBudget removes a budget.
func (s *Store) DeleteBudget(ctx context.Context, budgetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[budgetID]; !ok {
		return fmt.Errorf("budget %s: %w", budgetID, apperrors.ErrNotFound)
	}
	delete(s.budgets, budgetID)
	return s.saveDoc(ctx, docKeyBudgets, s.budgetList())
}
