package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// CreateBudgetRequest defines the data needed to create a new budget.
type CreateBudgetRequest struct {
	ProjectID   string          `json:"projectId" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CurrencyID  string          `json:"currencyId" binding:"required"`
	Description string          `json:"description"`
}

// UpdateBudgetRequest carries an optional-field patch for a budget.
type UpdateBudgetRequest struct {
	ProjectID   *string          `json:"projectId,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	CurrencyID  *string          `json:"currencyId,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID    string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	Amount      decimal.Decimal `json:"amount"`
	CurrencyID  string          `json:"currencyId"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		ProjectID:   b.ProjectID,
		Amount:      b.Amount,
		CurrencyID:  b.CurrencyID,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to response DTOs
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
