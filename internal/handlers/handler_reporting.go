package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getLedgerSummary)
		reports.GET("/projects", h.getProjectFinancials)
		reports.GET("/spending-trend", h.getSpendingTrend)
	}
}

// getLedgerSummary godoc
// @Summary Get the ledger summary
// @Description Returns the dashboard totals: total budget, total expenses, total remaining budget and the contingency budget. Totals are summed across currencies without conversion.
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getLedgerSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetLedgerSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute ledger summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getProjectFinancials godoc
// @Summary Get per-project financials
// @Description Returns one budget/spent/remaining row per project. Remaining budget may be negative for projects that are over budget.
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.ProjectFinancialsResponse
// @Failure 500 {object} map[string]string "Failed to compute project financials"
// @Router /reports/projects [get]
func (h *reportingHandler) getProjectFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.GetProjectFinancials(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute project financials", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute project financials"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// getSpendingTrend godoc
// @Summary Get the monthly spending trend
// @Description Returns expense totals grouped by month in chronological order
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.SpendingTrendRowResponse
// @Failure 500 {object} map[string]string "Failed to compute spending trend"
// @Router /reports/spending-trend [get]
func (h *reportingHandler) getSpendingTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trend, err := h.reportingService.GetSpendingTrend(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute spending trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute spending trend"})
		return
	}

	c.JSON(http.StatusOK, trend)
}
