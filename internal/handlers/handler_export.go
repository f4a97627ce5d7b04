package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/middleware"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// exportHandler handles HTTP requests for downloadable expense documents.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

// newExportHandler creates a new exportHandler.
func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{
		exportService: es,
	}
}

// registerExportRoutes registers the document download routes. They live in
// their own group so the static paths cannot collide with the /expenses/:id
// parameter routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	exports := rg.Group("/exports")
	{
		exports.GET("/expenses", h.exportExpensesWorkbook)
		exports.GET("/expenses/:id/xlsx", h.exportExpenseWorkbook)
		exports.GET("/expenses/:id/pdf", h.exportExpensePDF)
	}
}

// sendAttachment writes the rendered document with a download filename.
func sendAttachment(c *gin.Context, data []byte, filename, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// exportExpenseWorkbook godoc
// @Summary Export one expense as a spreadsheet
// @Description Renders the expense as a field/value Excel workbook
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "Expense ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to render document"
// @Router /exports/expenses/{id}/xlsx [get]
func (h *exportHandler) exportExpenseWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	data, filename, err := h.exportService.ExpenseDetailWorkbook(c.Request.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		} else {
			logger.Error("Failed to render expense workbook", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		}
		return
	}

	sendAttachment(c, data, filename, contentTypeXLSX)
}

// exportExpensePDF godoc
// @Summary Export one expense as a PDF
// @Description Renders the expense as a paginated PDF document
// @Tags exports
// @Produce  application/pdf
// @Param   id path string true "Expense ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to render document"
// @Router /exports/expenses/{id}/pdf [get]
func (h *exportHandler) exportExpensePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("id")

	data, filename, err := h.exportService.ExpenseDetailPDF(c.Request.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		} else {
			logger.Error("Failed to render expense PDF", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		}
		return
	}

	sendAttachment(c, data, filename, contentTypePDF)
}

// exportExpensesWorkbook godoc
// @Summary Export all expenses as a spreadsheet
// @Description Renders every expense as one row of an Excel workbook
// @Tags exports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Failed to render document"
// @Router /exports/expenses [get]
func (h *exportHandler) exportExpensesWorkbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, filename, err := h.exportService.ExpensesWorkbook(c.Request.Context())
	if err != nil {
		logger.Error("Failed to render expenses workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render document"})
		return
	}

	sendAttachment(c, data, filename, contentTypeXLSX)
}
