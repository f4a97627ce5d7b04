package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// reportingService computes the derived aggregate figures. Every call reads
// the current collections and recomputes from scratch; the collections are
// small and the functions are pure, so no caching is needed and concurrent
// readers need no coordination.
//
// Amounts are summed across currencies without conversion: the ledger has
// no exchange-rate model, so a converted figure cannot exist.
type reportingService struct {
	projectRepo portsrepo.ProjectReader
	budgetRepo  portsrepo.BudgetReader
	expenseRepo portsrepo.ExpenseReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(projectRepo portsrepo.ProjectReader, budgetRepo portsrepo.BudgetReader, expenseRepo portsrepo.ExpenseReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		projectRepo: projectRepo,
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TotalBudgetForProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	budgets, err := s.budgetRepo.ListBudgetsByProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list budgets for project: %w", err)
	}
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Amount)
	}
	return total, nil
}

func (s *reportingService) TotalExpensesForProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	expenses, err := s.expenseRepo.ListExpensesByProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list expenses for project: %w", err)
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

// RemainingBudgetForProject may be negative when a project is over budget;
// that is a displayed state, not an error.
func (s *reportingService) RemainingBudgetForProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	budget, err := s.TotalBudgetForProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	spent, err := s.TotalExpensesForProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return budget.Sub(spent), nil
}

func (s *reportingService) TotalRemainingBudget(ctx context.Context) (decimal.Decimal, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list projects: %w", err)
	}
	total := decimal.Zero
	for _, p := range projects {
		remaining, err := s.RemainingBudgetForProject(ctx, p.ProjectID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(remaining)
	}
	return total, nil
}

// TotalContingencyBudget is defined as the total remaining budget across all
// projects. The two figures are the same quantity under different names.
func (s *reportingService) TotalContingencyBudget(ctx context.Context) (decimal.Decimal, error) {
	return s.TotalRemainingBudget(ctx)
}

func (s *reportingService) TotalExpenses(ctx context.Context) (decimal.Decimal, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list expenses: %w", err)
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (s *reportingService) GetLedgerSummary(ctx context.Context) (dto.LedgerSummaryResponse, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return dto.LedgerSummaryResponse{}, fmt.Errorf("failed to list budgets: %w", err)
	}
	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.Amount)
	}

	totalExpenses, err := s.TotalExpenses(ctx)
	if err != nil {
		return dto.LedgerSummaryResponse{}, err
	}
	remaining, err := s.TotalRemainingBudget(ctx)
	if err != nil {
		return dto.LedgerSummaryResponse{}, err
	}

	return dto.LedgerSummaryResponse{
		TotalBudget:            totalBudget,
		TotalExpenses:          totalExpenses,
		TotalRemainingBudget:   remaining,
		TotalContingencyBudget: remaining,
	}, nil
}

func (s *reportingService) GetProjectFinancials(ctx context.Context) ([]dto.ProjectFinancialsResponse, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	rows := make([]dto.ProjectFinancialsResponse, 0, len(projects))
	for _, p := range projects {
		budget, err := s.TotalBudgetForProject(ctx, p.ProjectID)
		if err != nil {
			return nil, err
		}
		spent, err := s.TotalExpensesForProject(ctx, p.ProjectID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dto.ProjectFinancialsResponse{
			ProjectID:       p.ProjectID,
			Name:            p.Name,
			TotalBudget:     budget,
			TotalExpenses:   spent,
			RemainingBudget: budget.Sub(spent),
		})
	}
	return rows, nil
}

func (s *reportingService) GetSpendingTrend(ctx context.Context) ([]dto.SpendingTrendRowResponse, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		month := e.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(e.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	rows := make([]dto.SpendingTrendRowResponse, 0, len(months))
	for _, m := range months {
		rows = append(rows, dto.SpendingTrendRowResponse{Month: m, Total: byMonth[m]})
	}
	return rows, nil
}
