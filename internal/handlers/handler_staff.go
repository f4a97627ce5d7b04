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

// staffHandler handles HTTP requests related to project staff.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

// newStaffHandler creates a new staffHandler.
func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{
		staffService: ss,
	}
}

// registerStaffRoutes registers routes related to project staff.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.POST("", h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:id", h.getStaffByID)
		staff.PUT("/:id", h.updateStaff)
		staff.DELETE("/:id", h.deleteStaff)
	}
}

// createStaff godoc
// @Summary Register a staff member on a project
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create staff record"
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStaff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.staffService.CreateStaff(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create staff record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff record"})
		}
		return
	}

	logger.Info("Staff member registered", slog.String("staff_id", created.StaffID), slog.String("project_id", created.ProjectID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(created))
}

// listStaff godoc
// @Summary List all staff records
// @Tags staff
// @Produce  json
// @Success 200 {array} dto.StaffResponse
// @Failure 500 {object} map[string]string "Failed to list staff"
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list staff", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// getStaffByID godoc
// @Summary Get a staff record by ID
// @Tags staff
// @Produce  json
// @Param   id path string true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 404 {object} map[string]string "Staff record not found"
// @Failure 500 {object} map[string]string "Failed to retrieve staff record"
// @Router /staff/{id} [get]
func (h *staffHandler) getStaffByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	staff, err := h.staffService.GetStaffByID(c.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff record not found"})
		} else {
			logger.Error("Failed to get staff record", slog.String("staff_id", staffID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve staff record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// updateStaff godoc
// @Summary Update a staff record
// @Description Applies a partial update to a staff record; absent fields are left unchanged
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   id path string true "Staff ID"
// @Param   staff body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Staff record not found"
// @Failure 500 {object} map[string]string "Failed to update staff record"
// @Router /staff/{id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStaff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.staffService.UpdateStaff(c.Request.Context(), staffID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff record not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update staff record", slog.String("staff_id", staffID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff record"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(updated))
}

// deleteStaff godoc
// @Summary Delete a staff record
// @Tags staff
// @Produce  json
// @Param   id path string true "Staff ID"
// @Success 204 "Staff record deleted"
// @Failure 404 {object} map[string]string "Staff record not found"
// @Failure 500 {object} map[string]string "Failed to delete staff record"
// @Router /staff/{id} [delete]
func (h *staffHandler) deleteStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	staffID := c.Param("id")

	if err := h.staffService.DeleteStaff(c.Request.Context(), staffID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff record not found"})
		} else {
			logger.Error("Failed to delete staff record", slog.String("staff_id", staffID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff record"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
