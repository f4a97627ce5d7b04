package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// budgetService manages budget allocations. Budgets carry no policy beyond a
// non-negative amount; dangling project or currency references are tolerated
// and resolved at read time.
type budgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("budget amount must not be negative: %w", apperrors.ErrValidation)
	}

	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		ProjectID:   req.ProjectID,
		Amount:      req.Amount,
		CurrencyID:  req.CurrencyID,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) ListBudgetsByProject(ctx context.Context, projectID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for project: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("budget amount must not be negative: %w", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.ProjectID != nil {
		budget.ProjectID = *req.ProjectID
	}
	if req.CurrencyID != nil {
		budget.CurrencyID = *req.CurrencyID
	}
	if req.Description != nil {
		budget.Description = *req.Description
	}

	if err := s.budgetRepo.SaveBudget(ctx, *budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
