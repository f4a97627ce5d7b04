package repositories

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListExpensesByProject retrieves the expenses recorded against one project.
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense inserts or updates an expense. The lock policy is enforced
	// by the service layer, not here.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense unconditionally.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
