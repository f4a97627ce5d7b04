package services

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a specific budget by its identifier.
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)

	// ListBudgetsByProject retrieves the budgets owned by one project.
	ListBudgetsByProject(ctx context.Context, projectID string) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// CreateBudget persists a new budget.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpdateBudget applies a partial update to a budget.
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
