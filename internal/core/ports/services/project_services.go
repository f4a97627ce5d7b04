package services

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a specific project by its identifier.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject persists a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)

	// UpdateProject applies a partial update to a project.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes the project and cascades to every budget,
	// expense and staff record referencing it. Locked expenses are removed
	// too; the cascade is the one place the lock does not hold.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
