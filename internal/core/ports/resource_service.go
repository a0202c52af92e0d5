package ports

import (
	"context"

	"github.com/workcity/project-tracker/internal/core/domain"
)

// ClientService defines use-case operations for clients. Authorization has
// already happened by the time any of these run.
type ClientService interface {
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, actor domain.Identity, f domain.ClientFields) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, f domain.ClientFields) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjectsByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	CreateProject(ctx context.Context, actor domain.Identity, f domain.ProjectFields) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, f domain.ProjectFields) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// ReferenceChecker verifies that a foreign key points at a live record.
type ReferenceChecker interface {
	CheckClient(ctx context.Context, clientID string) error
}
