package service

import (
	"context"
	"fmt"

	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

// ClientReferenceChecker verifies project -> client references.
//
// The check is a read followed later by an unrelated write; a client deleted
// in between leaves the project with a dangling reference.
type ClientReferenceChecker struct {
	clients ports.ClientRepository
}

func NewClientReferenceChecker(clients ports.ClientRepository) *ClientReferenceChecker {
	return &ClientReferenceChecker{clients: clients}
}

// CheckClient returns domain.ErrInvalidClientReference when clientID does
// not resolve to a stored client.
func (r *ClientReferenceChecker) CheckClient(ctx context.Context, clientID string) error {
	ok, err := r.clients.Exists(ctx, clientID)
	if err != nil {
		return fmt.Errorf("check client reference: %w", err)
	}
	if !ok {
		return domain.ErrInvalidClientReference
	}
	return nil
}
