package repositories

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject inserts or updates a project.
	SaveProject(ctx context.Context, project domain.Project) error

	// DeleteProjectCascade removes the project together with every budget,
	// expense and staff record referencing it, as one store operation.
	// Expense locks do not apply here.
	DeleteProjectCascade(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
