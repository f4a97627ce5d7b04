package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// staffService manages project staff records. Staff carry no mutation
// policy; they are removed only explicitly or through a project cascade.
type staffService struct {
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new staff service.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (*domain.ProjectStaff, error) {
	staff := domain.ProjectStaff{
		StaffID:   uuid.NewString(),
		FullName:  req.FullName,
		Zone:      req.Zone,
		Wereda:    req.Wereda,
		Phone:     req.Phone,
		Email:     req.Email,
		ProjectID: req.ProjectID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	return &staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, staffID string) (*domain.ProjectStaff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]domain.ProjectStaff, error) {
	staff, err := s.staffRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	if staff == nil {
		return []domain.ProjectStaff{}, nil
	}
	return staff, nil
}

func (s *staffService) ListStaffByProject(ctx context.Context, projectID string) ([]domain.ProjectStaff, error) {
	staff, err := s.staffRepo.ListStaffByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for project: %w", err)
	}
	if staff == nil {
		return []domain.ProjectStaff{}, nil
	}
	return staff, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.ProjectStaff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff for update: %w", err)
	}

	if req.FullName != nil {
		staff.FullName = *req.FullName
	}
	if req.Zone != nil {
		staff.Zone = *req.Zone
	}
	if req.Wereda != nil {
		staff.Wereda = *req.Wereda
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.ProjectID != nil {
		staff.ProjectID = *req.ProjectID
	}

	if err := s.staffRepo.SaveStaff(ctx, *staff); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, staffID string) error {
	if err := s.staffRepo.DeleteStaff(ctx, staffID); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}
