package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerCurrencyRoutes(v1, service.Currency)
	registerProjectRoutes(v1, service.Project, service.Budget, service.Expense, service.Staff, service.Reporting)
	registerBudgetRoutes(v1, service.Budget)
	registerExpenseRoutes(v1, service.Expense)
	registerStaffRoutes(v1, service.Staff)
	registerTransactionRoutes(v1, service.Transaction)
	registerReportingRoutes(v1, service.Reporting)
	registerExportRoutes(v1, service.Export)
}
