package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workcity/project-tracker/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubClientRepo struct {
	byID      map[string]*domain.Client
	seq       int
	createErr error
	existsErr error
	deleted   []string
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) Exists(_ context.Context, id string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubClientRepo) emailTaken(email, exceptID string) bool {
	for id, c := range r.byID {
		if c.Email == email && id != exceptID {
			return true
		}
	}
	return false
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.emailTaken(c.Email, "") {
		return nil, domain.ErrDuplicateClientEmail
	}
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("c%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	if r.emailTaken(c.Email, c.ID) {
		return nil, domain.ErrDuplicateClientEmail
	}
	clone := *c
	r.byID[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubProjectRepo struct {
	byID map[string]*domain.Project
	seq  int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Project, error) {
	out := []*domain.Project{}
	for _, p := range r.byID {
		if p.ClientID == clientID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("p%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

// countingChecker records every reference lookup.
type countingChecker struct {
	calls []string
	err   error
}

func (c *countingChecker) CheckClient(_ context.Context, clientID string) error {
	c.calls = append(c.calls, clientID)
	return c.err
}

type stubIssuer struct {
	issued []domain.Identity
}

func (s *stubIssuer) Issue(id domain.Identity) (string, error) {
	s.issued = append(s.issued, id)
	return "token-" + id.UserID, nil
}
