package domain

import "time"

// Project groups budgets, expenses and staff under one identifier.
// Deleting a project cascades to everything referencing it.
type Project struct {
	ProjectID   string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
