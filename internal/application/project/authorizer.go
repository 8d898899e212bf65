package project

import (
	"context"
	"errors"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Authorizer is the ownership gate every project-scoped use case passes
// through. It resolves the project by (id, owner) in one lookup and
// answers NOT_AUTHORIZED uniformly, so a caller cannot distinguish a
// missing project from someone else's.
type Authorizer struct {
	projectRepo project.ProjectRepository
}

// NewAuthorizer creates a new Authorizer
func NewAuthorizer(projectRepo project.ProjectRepository) *Authorizer {
	return &Authorizer{projectRepo: projectRepo}
}

// Authorize returns the project if it exists and belongs to the owner
func (a *Authorizer) Authorize(ctx context.Context, projectID uuid.UUID, ownerUserID string) (*project.Project, error) {
	p, err := a.projectRepo.FindByIDForOwner(ctx, projectID, ownerUserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotAuthorized
		}
		return nil, err
	}
	return p, nil
}
