package dto

import "github.com/shopspring/decimal"

// LedgerSummaryResponse holds the dashboard totals across the whole ledger.
// Contingency budget is defined as the total remaining budget over all
// projects; the two figures are always equal.
type LedgerSummaryResponse struct {
	TotalBudget            decimal.Decimal `json:"totalBudget"`
	TotalExpenses          decimal.Decimal `json:"totalExpenses"`
	TotalRemainingBudget   decimal.Decimal `json:"totalRemainingBudget"`
	TotalContingencyBudget decimal.Decimal `json:"totalContingencyBudget"`
}

// ProjectFinancialsResponse is one row of the per-project budget overview.
// RemainingBudget may be negative when a project is over budget.
type ProjectFinancialsResponse struct {
	ProjectID       string          `json:"projectId"`
	Name            string          `json:"name"`
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
}

// SpendingTrendRowResponse is one month of the spending trend chart.
// Month is formatted as "2006-01".
type SpendingTrendRowResponse struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}
