package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/dto"
	"github.com/eyobht/project_finance_app/internal/middleware"
)

// projectHandler handles HTTP requests related to projects, including the
// nested budget/expense/staff listings and the per-project summary.
type projectHandler struct {
	projectService   portssvc.ProjectSvcFacade
	budgetService    portssvc.BudgetSvcFacade
	expenseService   portssvc.ExpenseSvcFacade
	staffService     portssvc.StaffSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(
	ps portssvc.ProjectSvcFacade,
	bs portssvc.BudgetSvcFacade,
	es portssvc.ExpenseSvcFacade,
	ss portssvc.StaffSvcFacade,
	rs portssvc.ReportingSvcFacade,
) *projectHandler {
	return &projectHandler{
		projectService:   ps,
		budgetService:    bs,
		expenseService:   es,
		staffService:     ss,
		reportingService: rs,
	}
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(
	rg *gin.RouterGroup,
	projectService portssvc.ProjectSvcFacade,
	budgetService portssvc.BudgetSvcFacade,
	expenseService portssvc.ExpenseSvcFacade,
	staffService portssvc.StaffSvcFacade,
	reportingService portssvc.ReportingSvcFacade,
) {
	h := newProjectHandler(projectService, budgetService, expenseService, staffService, reportingService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProjectByID)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.GET("/:id/budgets", h.listProjectBudgets)
		projects.GET("/:id/expenses", h.listProjectExpenses)
		projects.GET("/:id/staff", h.listProjectStaff)
		projects.GET("/:id/summary", h.getProjectSummary)
	}
}

// createProject godoc
// @Summary Create a new project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create project", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		}
		return
	}

	logger.Info("Project created successfully", slog.String("project_id", created.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(created))
}

// listProjects godoc
// @Summary List all projects
// @Tags projects
// @Produce  json
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectResponse(projects))
}

// getProjectByID godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Router /projects/{id} [get]
func (h *projectHandler) getProjectByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to get project", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Description Applies a partial update to a project; absent fields are left unchanged
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to update project"
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update project", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(updated))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes the project together with every budget, expense and staff record that references it. Locked expenses are removed as part of the cascade.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 204 "Project deleted"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to delete project"
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to delete project", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}

	logger.Info("Project deleted with cascade", slog.String("project_id", projectID))
	c.Status(http.StatusNoContent)
}

// listProjectBudgets godoc
// @Summary List the budgets of a project
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {array} dto.BudgetResponse
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Router /projects/{id}/budgets [get]
func (h *projectHandler) listProjectBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	budgets, err := h.budgetService.ListBudgetsByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list project budgets", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// listProjectExpenses godoc
// @Summary List the expenses of a project
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /projects/{id}/expenses [get]
func (h *projectHandler) listProjectExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	expenses, err := h.expenseService.ListExpensesByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list project expenses", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// listProjectStaff godoc
// @Summary List the staff assigned to a project
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {array} dto.StaffResponse
// @Failure 500 {object} map[string]string "Failed to list staff"
// @Router /projects/{id}/staff [get]
func (h *projectHandler) listProjectStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	staff, err := h.staffService.ListStaffByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list project staff", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// getProjectSummary godoc
// @Summary Get the financial summary of a project
// @Description Returns total budget, total expenses and remaining budget for the project. Remaining budget may be negative.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectFinancialsResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /projects/{id}/summary [get]
func (h *projectHandler) getProjectSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")
	ctx := c.Request.Context()

	project, err := h.projectService.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to get project for summary", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}

	totalBudget, err := h.reportingService.TotalBudgetForProject(ctx, projectID)
	if err != nil {
		logger.Error("Failed to compute project budget total", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	totalExpenses, err := h.reportingService.TotalExpensesForProject(ctx, projectID)
	if err != nil {
		logger.Error("Failed to compute project expense total", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ProjectFinancialsResponse{
		ProjectID:       project.ProjectID,
		Name:            project.Name,
		TotalBudget:     totalBudget,
		TotalExpenses:   totalExpenses,
		RemainingBudget: totalBudget.Sub(totalExpenses),
	})
}
