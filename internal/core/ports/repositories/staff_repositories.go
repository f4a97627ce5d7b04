package repositories

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// StaffReader defines read operations for project staff data
type StaffReader interface {
	// FindStaffByID retrieves a specific staff record by its identifier.
	FindStaffByID(ctx context.Context, staffID string) (*domain.ProjectStaff, error)

	// ListStaff retrieves all staff records.
	ListStaff(ctx context.Context) ([]domain.ProjectStaff, error)

	// ListStaffByProject retrieves the staff assigned to one project.
	ListStaffByProject(ctx context.Context, projectID string) ([]domain.ProjectStaff, error)
}

// StaffWriter defines write operations for project staff data
type StaffWriter interface {
	// SaveStaff inserts or updates a staff record.
	SaveStaff(ctx context.Context, staff domain.ProjectStaff) error

	// DeleteStaff removes a staff record.
	DeleteStaff(ctx context.Context, staffID string) error
}

// StaffRepositoryFacade combines all staff-related repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
