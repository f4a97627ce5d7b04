package services

import "context"

// ExportSvcFacade renders finalized expense records into downloadable
// documents. Exporters read through the ledger facade and never mutate it.
type ExportSvcFacade interface {
	// ExpenseDetailWorkbook renders one expense as a field/value spreadsheet.
	// Returns the file content and a suggested filename.
	ExpenseDetailWorkbook(ctx context.Context, expenseID string) ([]byte, string, error)

	// ExpenseDetailPDF renders one expense as a paginated PDF document.
	ExpenseDetailPDF(ctx context.Context, expenseID string) ([]byte, string, error)

	// ExpensesWorkbook renders all expenses as a tabular spreadsheet.
	ExpensesWorkbook(ctx context.Context) ([]byte, string, error)
}
