package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the approval workflow label on an expense. It is a plain
// data label: any value may be set from any other value, there is no guarded
// transition order.
type ExpenseStatus string

const (
	StatusPending    ExpenseStatus = "pending"
	StatusApproved   ExpenseStatus = "approved"
	StatusAuthorized ExpenseStatus = "authorized"
	StatusRejected   ExpenseStatus = "rejected"
)

// IsValid reports whether s is one of the known workflow labels.
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusAuthorized, StatusRejected:
		return true
	}
	return false
}

// Expense records money spent against a project budget. An expense is locked
// at creation: afterwards only Status, ApprovedBy and AuthorizedBy may
// change, and it cannot be deleted except through a project cascade.
type Expense struct {
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
	Status       ExpenseStatus   `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	IsLocked     bool            `json:"isLocked"`
}
