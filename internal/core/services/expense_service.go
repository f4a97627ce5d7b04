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

// expenseService enforces the expense lock lifecycle. An expense is locked
// as part of creation and stays locked forever: only the workflow fields
// (status, approvedBy, authorizedBy) remain mutable, and deletion is refused
// outside a project cascade. Refusals are reported through the applied
// return value, never as errors, so callers keep the original silent-no-op
// behaviour while tests can still tell the two outcomes apart.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("expense amount must not be negative: %w", apperrors.ErrValidation)
	}

	status := domain.ExpenseStatus(req.Status)
	if req.Status == "" {
		status = domain.StatusPending
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ProjectID:   req.ProjectID,
		BudgetID:    req.BudgetID,
		Amount:      req.Amount,
		CurrencyID:  req.CurrencyID,
		Description: req.Description,
		Date:        req.Date,
		RequestedBy: req.RequestedBy,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		// Locked atomically with creation; an unlocked expense is never
		// observable.
		IsLocked: true,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) ListExpensesByProject(ctx context.Context, projectID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for project: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// UpdateExpense applies a patch under the lock policy. On a locked expense
// only the workflow fields are honoured; everything else in the patch is
// ignored. A patch with no workflow field is a no-op and returns
// applied=false with the record unchanged.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, bool, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get expense for update: %w", err)
	}

	if expense.IsLocked {
		if !req.HasWorkflowField() {
			return expense, false, nil
		}
		applyWorkflowFields(expense, req)
	} else {
		// Unreachable through the normal lifecycle, kept for completeness:
		// an unlocked expense accepts the full patch.
		applyWorkflowFields(expense, req)
		if req.Amount != nil {
			if req.Amount.IsNegative() {
				return nil, false, fmt.Errorf("expense amount must not be negative: %w", apperrors.ErrValidation)
			}
			expense.Amount = *req.Amount
		}
		if req.Description != nil {
			expense.Description = *req.Description
		}
		if req.Date != nil {
			expense.Date = *req.Date
		}
		if req.ProjectID != nil {
			expense.ProjectID = *req.ProjectID
		}
		if req.BudgetID != nil {
			expense.BudgetID = *req.BudgetID
		}
		if req.CurrencyID != nil {
			expense.CurrencyID = *req.CurrencyID
		}
		if req.RequestedBy != nil {
			expense.RequestedBy = *req.RequestedBy
		}
	}

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		return nil, false, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, true, nil
}

func applyWorkflowFields(expense *domain.Expense, req dto.UpdateExpenseRequest) {
	if req.Status != nil {
		expense.Status = domain.ExpenseStatus(*req.Status)
	}
	if req.ApprovedBy != nil {
		expense.ApprovedBy = *req.ApprovedBy
	}
	if req.AuthorizedBy != nil {
		expense.AuthorizedBy = *req.AuthorizedBy
	}
}

// DeleteExpense refuses to delete a locked expense: the record stays and
// applied is false. Only a project cascade removes locked expenses.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) (bool, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to get expense for delete: %w", err)
	}
	if expense.IsLocked {
		return false, nil
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	return true, nil
}
