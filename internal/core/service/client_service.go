package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger, now: time.Now}
}

func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateClient stores a new client owned by actor.
func (s *ClientService) CreateClient(ctx context.Context, actor domain.Identity, f domain.ClientFields) (*domain.Client, error) {
	now := s.now().UTC()
	c := &domain.Client{CreatedBy: actor.UserID, CreatedAt: now, UpdatedAt: now}
	c.Apply(f)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Str("created_by", actor.UserID).Msg("client created")
	return created, nil
}

// UpdateClient replaces the business fields of an existing client. The
// merged record is validated again before it is written.
func (s *ClientService) UpdateClient(ctx context.Context, id string, f domain.ClientFields) (*domain.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Apply(f)
	c.UpdatedAt = s.now().UTC()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Msg("client updated")
	return updated, nil
}

// DeleteClient removes a client. Projects referencing it are left in place.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}
