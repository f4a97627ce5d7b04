package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/utils"
)

// exportService renders locked expense records into downloadable documents.
// It resolves the expense's project, budget and currency through the ledger
// at render time; a dangling reference degrades to a display fallback
// ("N/A", default symbol) instead of failing the export. Exports are pure
// readers: nothing here mutates the ledger.
type exportService struct {
	expenseRepo  portsrepo.ExpenseReader
	projectRepo  portsrepo.ProjectReader
	budgetRepo   portsrepo.BudgetReader
	currencyRepo portsrepo.CurrencyReader
}

// NewExportService creates a new export service.
func NewExportService(
	expenseRepo portsrepo.ExpenseReader,
	projectRepo portsrepo.ProjectReader,
	budgetRepo portsrepo.BudgetReader,
	currencyRepo portsrepo.CurrencyReader,
) portssvc.ExportSvcFacade {
	return &exportService{
		expenseRepo:  expenseRepo,
		projectRepo:  projectRepo,
		budgetRepo:   budgetRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// expenseDetailRows assembles the label/value rows shared by the spreadsheet
// and PDF renderings of a single expense.
func (s *exportService) expenseDetailRows(ctx context.Context, expense *domain.Expense) ([][2]string, error) {
	projectName := "N/A"
	if project, err := s.projectRepo.FindProjectByID(ctx, expense.ProjectID); err == nil {
		projectName = project.Name
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	budgetID := "N/A"
	if budget, err := s.budgetRepo.FindBudgetByID(ctx, expense.BudgetID); err == nil {
		budgetID = budget.BudgetID
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	var currency *domain.Currency
	if c, err := s.currencyRepo.FindCurrencyByID(ctx, expense.CurrencyID); err == nil {
		currency = c
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	return [][2]string{
		{"Expense ID", expense.ExpenseID},
		{"Project", projectName},
		{"Budget ID", budgetID},
		{"Amount", utils.FormatAmount(expense.Amount, currency)},
		{"Description", expense.Description},
		{"Date", expense.Date.Format(utils.DateLayout)},
		{"Status", utils.CapitalizeStatus(expense.Status)},
		{"Requested By", expense.RequestedBy},
		{"Approved By", utils.OrNA(expense.ApprovedBy)},
		{"Authorized By", utils.OrNA(expense.AuthorizedBy)},
		{"Created At", expense.CreatedAt.Format(utils.TimestampLayout)},
	}, nil
}

// ExpenseDetailWorkbook renders one expense as a field/value spreadsheet.
func (s *exportService) ExpenseDetailWorkbook(ctx context.Context, expenseID string) ([]byte, string, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expense for export: %w", err)
	}
	rows, err := s.expenseDetailRows(ctx, expense)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve expense references: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Expense Details"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Expense Transaction Details")
	f.SetCellValue(sheet, "A3", "Field")
	f.SetCellValue(sheet, "B3", "Value")
	for i, row := range rows {
		cell := fmt.Sprint(i + 4)
		f.SetCellValue(sheet, "A"+cell, row[0])
		f.SetCellValue(sheet, "B"+cell, row[1])
	}
	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	name := fmt.Sprintf("expense_%s_%s.xlsx", expense.ExpenseID, time.Now().Format(utils.FileDateLayout))
	return buf.Bytes(), name, nil
}

// ExpenseDetailPDF renders one expense as a paginated PDF document.
func (s *exportService) ExpenseDetailPDF(ctx context.Context, expenseID string) ([]byte, string, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get expense for export: %w", err)
	}
	rows, err := s.expenseDetailRows(ctx, expense)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve expense references: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d of {nb} - Generated on %s", pdf.PageNo(), time.Now().Format(utils.TimestampLayout)),
			"", 0, "L", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Expense Transaction Details")
	pdf.Ln(12)
	pdf.SetLineWidth(0.5)
	pdf.Line(14, pdf.GetY(), 196, pdf.GetY())
	pdf.Ln(6)

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 8, row[1], "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write pdf: %w", err)
	}

	name := fmt.Sprintf("expense_%s_%s.pdf", expense.ExpenseID, time.Now().Format(utils.FileDateLayout))
	return buf.Bytes(), name, nil
}

// ExpensesWorkbook renders every expense as one row of a tabular spreadsheet.
func (s *exportService) ExpensesWorkbook(ctx context.Context) ([]byte, string, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list expenses for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Expenses"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Expense Transactions")
	headers := []string{"ID", "Project", "Amount", "Currency", "Description", "Date", "Status", "Requested By", "Approved By", "Authorized By", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}

	for i, e := range expenses {
		projectName := "N/A"
		if project, err := s.projectRepo.FindProjectByID(ctx, e.ProjectID); err == nil {
			projectName = project.Name
		}
		currencyCode := "N/A"
		if currency, err := s.currencyRepo.FindCurrencyByID(ctx, e.CurrencyID); err == nil {
			currencyCode = currency.Code
		}

		values := []any{
			e.ExpenseID,
			projectName,
			e.Amount.String(),
			currencyCode,
			e.Description,
			e.Date.Format(utils.DateLayout),
			string(e.Status),
			e.RequestedBy,
			utils.OrNA(e.ApprovedBy),
			utils.OrNA(e.AuthorizedBy),
			e.CreatedAt.Format(utils.TimestampLayout),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+4)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	name := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format(utils.FileDateLayout))
	return buf.Bytes(), name, nil
}
