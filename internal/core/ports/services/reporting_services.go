package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eyobht/project_finance_app/internal/dto"
)

// ReportingSvcFacade exposes the derived aggregate figures. All methods are
// pure reads over the current ledger snapshot and are always recomputed; no
// caching is involved.
type ReportingSvcFacade interface {
	// TotalBudgetForProject sums the amounts of every budget owned by the
	// project, across currencies without conversion.
	TotalBudgetForProject(ctx context.Context, projectID string) (decimal.Decimal, error)

	// TotalExpensesForProject sums the amounts of every expense recorded
	// against the project.
	TotalExpensesForProject(ctx context.Context, projectID string) (decimal.Decimal, error)

	// RemainingBudgetForProject is total budget minus total expenses for the
	// project. A negative result means the project is over budget and is a
	// valid, displayed value.
	RemainingBudgetForProject(ctx context.Context, projectID string) (decimal.Decimal, error)

	// TotalRemainingBudget sums RemainingBudgetForProject over every project.
	TotalRemainingBudget(ctx context.Context) (decimal.Decimal, error)

	// TotalContingencyBudget is an alias of TotalRemainingBudget.
	TotalContingencyBudget(ctx context.Context) (decimal.Decimal, error)

	// TotalExpenses sums every expense amount, independent of project.
	TotalExpenses(ctx context.Context) (decimal.Decimal, error)

	// GetLedgerSummary bundles the dashboard totals into one response.
	GetLedgerSummary(ctx context.Context) (dto.LedgerSummaryResponse, error)

	// GetProjectFinancials returns one budget/spent/remaining row per project.
	GetProjectFinancials(ctx context.Context) ([]dto.ProjectFinancialsResponse, error)

	// GetSpendingTrend returns monthly expense totals ordered by month.
	GetSpendingTrend(ctx context.Context) ([]dto.SpendingTrendRowResponse, error)
}
