package ports

import (
	"context"

	"github.com/workcity/project-tracker/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
// FindByID, Update and Delete return domain.ErrClientNotFound when the id is
// absent or not a valid identifier. Create and Update return
// domain.ErrDuplicateClientEmail on an email collision.
type ClientRepository interface {
	List(ctx context.Context) ([]*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
