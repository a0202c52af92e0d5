package ports

import (
	"context"

	"github.com/workcity/project-tracker/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	// List returns every project with Client populated (name only).
	List(ctx context.Context) ([]*domain.Project, error)
	// FindByID returns the project with Client populated (name and email).
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByClient returns the projects referencing clientID, unpopulated.
	// An unknown or malformed clientID yields an empty slice.
	ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
