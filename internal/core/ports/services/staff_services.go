package services

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// StaffReaderSvc defines read operations for project staff data
type StaffReaderSvc interface {
	// GetStaffByID retrieves a specific staff record by its identifier.
	GetStaffByID(ctx context.Context, staffID string) (*domain.ProjectStaff, error)

	// ListStaff retrieves all staff records.
	ListStaff(ctx context.Context) ([]domain.ProjectStaff, error)

	// ListStaffByProject retrieves the staff assigned to one project.
	ListStaffByProject(ctx context.Context, projectID string) ([]domain.ProjectStaff, error)
}

// StaffWriterSvc defines write operations for project staff data
type StaffWriterSvc interface {
	// CreateStaff registers a new staff member on a project.
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*domain.ProjectStaff, error)

	// UpdateStaff applies a partial update to a staff record.
	UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.ProjectStaff, error)

	// DeleteStaff removes a staff record.
	DeleteStaff(ctx context.Context, staffID string) error
}

// StaffSvcFacade combines all staff-related service interfaces
type StaffSvcFacade interface {
	StaffReaderSvc
	StaffWriterSvc
}
