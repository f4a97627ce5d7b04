package repositories

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget by its identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)

	// ListBudgetsByProject retrieves the budgets owned by one project.
	ListBudgetsByProject(ctx context.Context, projectID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget inserts or updates a budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
