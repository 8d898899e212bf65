package project

import (
	"context"

	"github.com/buildtrack/backend/internal/domain/project"
)

// ProjectService handles project creation and listing
type ProjectService struct {
	projectRepo project.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo project.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create creates a project owned by the caller
func (s *ProjectService) Create(ctx context.Context, ownerUserID string, req CreateProjectRequest) (*ProjectResponse, error) {
	p, err := project.NewProject(ownerUserID, req.Name, req.LocationText)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToProjectResponse(p)
	return &response, nil
}

// List returns all projects of the caller
func (s *ProjectService) List(ctx context.Context, ownerUserID string) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.FindAllForOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	return ToProjectResponses(projects), nil
}
