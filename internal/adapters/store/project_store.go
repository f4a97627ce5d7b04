package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// projectList returns the projects sorted by creation time. Callers must
// hold at least the read lock.
func (s *Store) projectList() []domain.Project {
	list := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ProjectID < list[j].ProjectID
	})
	return list
}

// FindProjectByID retrieves a project by its identifier.
func (s *Store) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}
	return &p, nil
}

// ListProjects retrieves all projects.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectList(), nil
}

// SaveProject inserts or updates a project and persists the collection.
func (s *Store) SaveProject(ctx context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ProjectID] = project
	return s.saveDoc(ctx, docKeyProjects, s.projectList())
}

// DeleteProjectCascade removes the project and every budget, expense and
// staff record referencing it in one store operation. The expense lock does
// not apply here: cascade deletion is the one sanctioned bypass.
func (s *Store) DeleteProjectCascade(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[projectID]; !ok {
		return fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
	}

	delete(s.projects, projectID)
	for id, b := range s.budgets {
		if b.ProjectID == projectID {
			delete(s.budgets, id)
		}
	}
	for id, e := range s.expenses {
		if e.ProjectID == projectID {
			delete(s.expenses, id)
		}
	}
	for id, st := range s.staff {
		if st.ProjectID == projectID {
			delete(s.staff, id)
		}
	}

	if err := s.saveDoc(ctx, docKeyProjects, s.projectList()); err != nil {
		return err
	}
	if err := s.saveDoc(ctx, docKeyBudgets, s.budgetList()); err != nil {
		return err
	}
	if err := s.saveDoc(ctx, docKeyExpenses, s.expenseList()); err != nil {
		return err
	}
	return s.saveDoc(ctx, docKeyStaff, s.staffList())
}
