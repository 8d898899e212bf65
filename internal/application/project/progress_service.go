package project

import (
	"context"
	"errors"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProgressService records per-project check results and stage statuses
type ProgressService struct {
	authorizer   *Authorizer
	stageRepo    catalog.StageRepository
	progressRepo project.ProgressRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	authorizer *Authorizer,
	stageRepo catalog.StageRepository,
	progressRepo project.ProgressRepository,
) *ProgressService {
	return &ProgressService{
		authorizer:   authorizer,
		stageRepo:    stageRepo,
		progressRepo: progressRepo,
	}
}

// UpdateCheckResult records the outcome of one checklist item. The check
// item must exist somewhere in the catalog; the write replaces any
// earlier result for the same (project, check item).
func (s *ProgressService) UpdateCheckResult(ctx context.Context, ownerUserID string, projectID, checkItemID uuid.UUID, req UpdateCheckResultRequest) error {
	if _, err := s.authorizer.Authorize(ctx, projectID, ownerUserID); err != nil {
		return err
	}

	if _, err := s.stageRepo.FindCheckItemByID(ctx, checkItemID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrUnknownCheckItem
		}
		return err
	}

	result := project.NewCheckResult(projectID, checkItemID, req.IsDone, req.Note)
	return s.progressRepo.UpsertCheckResult(ctx, result)
}

// SetStageStatus sets the project's status for one catalog stage,
// replacing any earlier status for the same (project, stage)
func (s *ProgressService) SetStageStatus(ctx context.Context, ownerUserID string, projectID, stageID uuid.UUID, req SetStageStatusRequest) (*StageStatusResponse, error) {
	if _, err := s.authorizer.Authorize(ctx, projectID, ownerUserID); err != nil {
		return nil, err
	}

	if _, err := s.stageRepo.FindByID(ctx, stageID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrStageNotFound
		}
		return nil, err
	}

	status, err := project.NewStageStatus(projectID, stageID, project.StageStatusValue(req.Status))
	if err != nil {
		return nil, err
	}

	if err := s.progressRepo.UpsertStageStatus(ctx, status); err != nil {
		return nil, err
	}

	return &StageStatusResponse{
		StageID:   status.StageID,
		Status:    string(status.Status),
		UpdatedAt: status.UpdatedAt,
	}, nil
}
