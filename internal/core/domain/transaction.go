package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes quick-entry income from expense records.
type TransactionType string

const (
	TxnIncome  TransactionType = "income"
	TxnExpense TransactionType = "expense"
)

// Transaction is a standalone income or expense entry outside the project
// ledger, categorised for the dashboard charts.
type Transaction struct {
	TransactionID string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	Description   string          `json:"description,omitempty"`
	Date          time.Time       `json:"date"`
}

// Category labels transactions for grouping and chart colours.
type Category struct {
	CategoryID string          `json:"id"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	Color      string          `json:"color"`
}

// DefaultCategories is the seed set used when no category document has been
// persisted yet.
var DefaultCategories = []Category{
	{CategoryID: "salary", Name: "Salary", Type: TxnIncome, Color: "#10b981"},
	{CategoryID: "freelance", Name: "Freelance", Type: TxnIncome, Color: "#3b82f6"},
	{CategoryID: "investment", Name: "Investment", Type: TxnIncome, Color: "#8b5cf6"},
	{CategoryID: "other-income", Name: "Other Income", Type: TxnIncome, Color: "#06b6d4"},
	{CategoryID: "food", Name: "Food & Dining", Type: TxnExpense, Color: "#ef4444"},
	{CategoryID: "transport", Name: "Transportation", Type: TxnExpense, Color: "#f59e0b"},
	{CategoryID: "shopping", Name: "Shopping", Type: TxnExpense, Color: "#ec4899"},
	{CategoryID: "bills", Name: "Bills & Utilities", Type: TxnExpense, Color: "#6366f1"},
	{CategoryID: "entertainment", Name: "Entertainment", Type: TxnExpense, Color: "#14b8a6"},
	{CategoryID: "health", Name: "Health & Fitness", Type: TxnExpense, Color: "#84cc16"},
	{CategoryID: "other-expense", Name: "Other Expense", Type: TxnExpense, Color: "#64748b"},
}
