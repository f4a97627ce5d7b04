package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is an allocation of funds to a project. A project may hold several
// budgets; its total budget is the sum of their amounts regardless of
// currency (no conversion is performed).
type Budget struct {
	BudgetID    string          `json:"id"`
	ProjectID   string          `json:"projectId"`
	Amount      decimal.Decimal `json:"amount"`
	CurrencyID  string          `json:"currencyId"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
