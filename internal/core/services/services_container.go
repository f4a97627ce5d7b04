package services

import (
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Staff = NewStaffService(repos.StaffRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)

	// The reporting and export services aggregate across entities, so they take
	// the narrower reader ports instead of a single repository facade.
	container.Reporting = NewReportingService(repos.ProjectRepo, repos.BudgetRepo, repos.ExpenseRepo)
	container.Export = NewExportService(repos.ExpenseRepo, repos.ProjectRepo, repos.BudgetRepo, repos.CurrencyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
	_ portssvc.ProjectSvcFacade     = (*projectService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.ExpenseSvcFacade     = (*expenseService)(nil)
	_ portssvc.StaffSvcFacade       = (*staffService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.ExportSvcFacade      = (*exportService)(nil)
)
