package domain

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
)

// Valid reports whether s is one of the enumerated statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project belongs to exactly one client through ClientID.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	ClientID    string        `json:"clientId"`
	// Client is set only when the reference was populated by the store.
	Client    *ClientRef `json:"client,omitempty"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ProjectFields holds the mutable fields of a project. An empty Status keeps
// the current one (or the default on create).
type ProjectFields struct {
	Name        string
	Description string
	Status      ProjectStatus
	ClientID    string
}

// Apply replaces the mutable fields with f.
func (p *Project) Apply(f ProjectFields) {
	p.Name = f.Name
	p.Description = f.Description
	p.ClientID = f.ClientID
	if f.Status != "" {
		p.Status = f.Status
	}
	if p.Status == "" {
		p.Status = StatusNotStarted
	}
}

// Validate checks the stored-shape invariants of a project.
func (p *Project) Validate() error {
	ve := &ValidationError{}
	requireText(ve, "name", p.Name, "Project name is required")
	requireText(ve, "description", p.Description, "Project description is required")
	if !p.Status.Valid() {
		ve.Add("status", "oneof", "Status is invalid")
	}
	if p.ClientID == "" {
		ve.Add("clientId", "required", "A valid client ID is required")
	}
	if p.CreatedBy == "" {
		ve.Add("createdBy", "required", "Creator is required")
	}
	return ve.ErrOrNil()
}
