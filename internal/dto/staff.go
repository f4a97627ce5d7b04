package dto

import (
	"time"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// CreateStaffRequest defines the data needed to register a project staff member.
type CreateStaffRequest struct {
	FullName  string `json:"fullName" binding:"required"`
	Zone      string `json:"zone" binding:"required"`
	Wereda    string `json:"wereda" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	ProjectID string `json:"projectId" binding:"required"`
}

// UpdateStaffRequest carries an optional-field patch for a staff record.
type UpdateStaffRequest struct {
	FullName  *string `json:"fullName,omitempty"`
	Zone      *string `json:"zone,omitempty"`
	Wereda    *string `json:"wereda,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	ProjectID *string `json:"projectId,omitempty"`
}

// StaffResponse defines the data returned for a staff record.
type StaffResponse struct {
	StaffID   string    `json:"id"`
	FullName  string    `json:"fullName"`
	Zone      string    `json:"zone"`
	Wereda    string    `json:"wereda"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	ProjectID string    `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToStaffResponse converts a domain.ProjectStaff to StaffResponse DTO
func ToStaffResponse(s *domain.ProjectStaff) StaffResponse {
	return StaffResponse{
		StaffID:   s.StaffID,
		FullName:  s.FullName,
		Zone:      s.Zone,
		Wereda:    s.Wereda,
		Phone:     s.Phone,
		Email:     s.Email,
		ProjectID: s.ProjectID,
		CreatedAt: s.CreatedAt,
	}
}

// ToListStaffResponse converts a slice of domain.ProjectStaff to response DTOs
func ToListStaffResponse(staff []domain.ProjectStaff) []StaffResponse {
	res := make([]StaffResponse, len(staff))
	for i := range staff {
		res[i] = ToStaffResponse(&staff[i])
	}
	return res
}
