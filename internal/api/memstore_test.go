package api

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/workcity/project-tracker/internal/core/domain"
)

var errStoreDown = errors.New("store unavailable")

// memStore backs every repository port with maps keyed by ObjectID hex.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	clients  map[string]*domain.Client
	projects map[string]*domain.Project

	// failWrites makes client and project inserts fail.
	failWrites bool
	// failReads makes client and project listing fail.
	failReads bool
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*domain.User{},
		clients:  map[string]*domain.Client{},
		projects: map[string]*domain.Project{},
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	cp := *u
	cp.ID = primitive.NewObjectID().Hex()
	r.s.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

type memClients struct{ s *memStore }

func (r memClients) List(_ context.Context) ([]*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failReads {
		return nil, errStoreDown
	}
	out := make([]*domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memClients) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (r memClients) Exists(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.clients[id]
	return ok, nil
}

func (r memClients) emailTaken(email, except string) bool {
	for id, c := range r.s.clients {
		if id != except && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func (r memClients) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWrites {
		return nil, errStoreDown
	}
	if r.emailTaken(c.Email, "") {
		return nil, domain.ErrDuplicateClientEmail
	}
	cp := *c
	cp.ID = primitive.NewObjectID().Hex()
	r.s.clients[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memClients) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[c.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	if r.emailTaken(c.Email, c.ID) {
		return nil, domain.ErrDuplicateClientEmail
	}
	cp := *c
	r.s.clients[c.ID] = &cp
	out := cp
	return &out, nil
}

func (r memClients) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.s.clients, id)
	return nil
}

type memProjects struct{ s *memStore }

func (r memProjects) populate(p *domain.Project, withEmail bool) *domain.Project {
	cp := *p
	if c, ok := r.s.clients[p.ClientID]; ok {
		ref := &domain.ClientRef{ID: c.ID, Name: c.Name}
		if withEmail {
			ref.Email = c.Email
		}
		cp.Client = ref
	}
	return &cp
}

func (r memProjects) List(_ context.Context) ([]*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failReads {
		return nil, errStoreDown
	}
	out := make([]*domain.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		out = append(out, r.populate(p, false))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProjects) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return r.populate(p, true), nil
}

func (r memProjects) ListByClient(_ context.Context, clientID string) ([]*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*domain.Project{}
	for _, p := range r.s.projects {
		if p.ClientID == clientID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memProjects) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWrites {
		return nil, errStoreDown
	}
	cp := *p
	cp.ID = primitive.NewObjectID().Hex()
	r.s.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memProjects) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	cp := *p
	r.s.projects[p.ID] = &cp
	out := cp
	return &out, nil
}

func (r memProjects) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.s.projects, id)
	return nil
}
