package services

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its identifier.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves all expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListExpensesByProject retrieves the expenses recorded against one project.
	ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense persists a new expense. The expense is locked as part of
	// creation; it is never observable unlocked.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense applies a partial update. On a locked expense only the
	// workflow fields (status, approvedBy, authorizedBy) are honoured; a
	// patch without any of them leaves the record untouched and returns
	// applied=false with no error.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (exp *domain.Expense, applied bool, err error)

	// DeleteExpense removes an expense if it is not locked. Locked expenses
	// stay in place and applied is false, with no error.
	DeleteExpense(ctx context.Context, expenseID string) (applied bool, err error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
