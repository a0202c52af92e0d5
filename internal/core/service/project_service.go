package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	refs   ports.ReferenceChecker
	logger zerolog.Logger
	now    func() time.Time
}

func NewProjectService(repo ports.ProjectRepository, refs ports.ReferenceChecker, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, refs: refs, logger: logger, now: time.Now}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// ListProjectsByClient does not check that the client exists.
func (s *ProjectService) ListProjectsByClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// CreateProject verifies the client reference and stores the project.
func (s *ProjectService) CreateProject(ctx context.Context, actor domain.Identity, f domain.ProjectFields) (*domain.Project, error) {
	if err := s.refs.CheckClient(ctx, f.ClientID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	p := &domain.Project{CreatedBy: actor.UserID, CreatedAt: now, UpdatedAt: now}
	p.Apply(f)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("project_id", created.ID).
		Str("client_id", created.ClientID).
		Str("created_by", actor.UserID).
		Msg("project created")
	return created, nil
}

// UpdateProject replaces the mutable fields of an existing project. The
// client reference is checked only when the payload carries one; an absent
// project is reported before an invalid reference.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, f domain.ProjectFields) (*domain.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.ClientID != "" {
		if err := s.refs.CheckClient(ctx, f.ClientID); err != nil {
			return nil, err
		}
	} else {
		f.ClientID = p.ClientID
	}

	p.Apply(f)
	p.Client = nil
	p.UpdatedAt = s.now().UTC()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", id).Str("status", string(updated.Status)).Msg("project updated")
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
