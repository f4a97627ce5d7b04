package domain

import "time"

// ProjectStaff is a person assigned to a project, with their duty base
// (zone and wereda) and contact details.
type ProjectStaff struct {
	StaffID   string    `json:"id"`
	FullName  string    `json:"fullName"`
	Zone      string    `json:"zone"`
	Wereda    string    `json:"wereda"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	ProjectID string    `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}
