package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record a new expense.
// The resulting expense is locked immediately.
type CreateExpenseRequest struct {
	ProjectID   string          `json:"projectId" binding:"required"`
	BudgetID    string          `json:"budgetId" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CurrencyID  string          `json:"currencyId" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	RequestedBy string          `json:"requestedBy" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending approved authorized rejected"`
}

// UpdateExpenseRequest carries an optional-field patch for an expense.
// On a locked expense only Status, ApprovedBy and AuthorizedBy are honoured;
// the remaining fields are ignored silently.
type UpdateExpenseRequest struct {
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=pending approved authorized rejected"`
	ApprovedBy   *string `json:"approvedBy,omitempty"`
	AuthorizedBy *string `json:"authorizedBy,omitempty"`

	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	ProjectID   *string          `json:"projectId,omitempty"`
	BudgetID    *string          `json:"budgetId,omitempty"`
	CurrencyID  *string          `json:"currencyId,omitempty"`
	RequestedBy *string          `json:"requestedBy,omitempty"`
}

// HasWorkflowField reports whether the patch touches any of the fields that
// remain mutable after the expense is locked.
func (r UpdateExpenseRequest) HasWorkflowField() bool {
	return r.Status != nil || r.ApprovedBy != nil || r.AuthorizedBy != nil
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    string          `json:"id"`
	ProjectID    string          `json:"projectId"`
	BudgetID     string          `json:"budgetId"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyID   string          `json:"currencyId"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	RequestedBy  string          `json:"requestedBy"`
	ApprovedBy   string          `json:"approvedBy,omitempty"`
	AuthorizedBy string          `json:"authorizedBy,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	IsLocked     bool            `json:"isLocked"`
}

// ExpenseMutationResponse wraps an expense together with an indicator of
// whether the requested mutation was actually applied. Lock refusals are
// reported here instead of as errors.
type ExpenseMutationResponse struct {
	Applied bool            `json:"applied"`
	Reason  string          `json:"reason,omitempty"`
	Expense ExpenseResponse `json:"expense"`
}

// DeleteExpenseResponse reports whether the deletion was applied. Locked
// expenses are never deleted outside a project cascade.
type DeleteExpenseResponse struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		ProjectID:    e.ProjectID,
		BudgetID:     e.BudgetID,
		Amount:       e.Amount,
		CurrencyID:   e.CurrencyID,
		Description:  e.Description,
		Date:         e.Date,
		RequestedBy:  e.RequestedBy,
		ApprovedBy:   e.ApprovedBy,
		AuthorizedBy: e.AuthorizedBy,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt,
		IsLocked:     e.IsLocked,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
