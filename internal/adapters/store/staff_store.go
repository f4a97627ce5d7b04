package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// staffList returns the staff records sorted by creation time. Callers must
// hold at least the read lock.
func (s *Store) staffList() []domain.ProjectStaff {
	list := make([]domain.ProjectStaff, 0, len(s.staff))
	for _, st := range s.staff {
		list = append(list, st)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].StaffID < list[j].StaffID
	})
	return list
}

// FindStaffByID retrieves a staff record by its identifier.
func (s *Store) FindStaffByID(ctx context.Context, staffID string) (*domain.ProjectStaff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[staffID]
	if !ok {
		return nil, fmt.Errorf("staff %s: %w", staffID, apperrors.ErrNotFound)
	}
	return &st, nil
}

// ListStaff retrieves all staff records.
func (s *Store) ListStaff(ctx context.Context) ([]domain.ProjectStaff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.staffList(), nil
}

// ListStaffByProject retrieves the staff assigned to one project.
func (s *Store) ListStaffByProject(ctx context.Context, projectID string) ([]domain.ProjectStaff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []domain.ProjectStaff
	for _, st := range s.staffList() {
		if st.ProjectID == projectID {
			list = append(list, st)
		}
	}
	return list, nil
}

// SaveStaff inserts or updates a staff record and persists the collection.
func (s *Store) SaveStaff(ctx context.Context, staff domain.ProjectStaff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[staff.StaffID] = staff
	return s.saveDoc(ctx, docKeyStaff, s.staffList())
}

// DeleteStaff removes a staff record.
func (s *Store) DeleteStaff(ctx context.Context, staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff[staffID]; !ok {
		return fmt.Errorf("staff %s: %w", staffID, apperrors.ErrNotFound)
	}
	delete(s.staff, staffID)
	return s.saveDoc(ctx, docKeyStaff, s.staffList())
}
