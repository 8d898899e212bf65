package project

import (
	"context"
	"errors"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StageViewService assembles the per-project view of one catalog stage
type StageViewService struct {
	authorizer   *Authorizer
	stageRepo    catalog.StageRepository
	progressRepo project.ProgressRepository
	noteRepo     project.NoteRepository
	mediaRepo    project.MediaRepository
}

// NewStageViewService creates a new StageViewService
func NewStageViewService(
	authorizer *Authorizer,
	stageRepo catalog.StageRepository,
	progressRepo project.ProgressRepository,
	noteRepo project.NoteRepository,
	mediaRepo project.MediaRepository,
) *StageViewService {
	return &StageViewService{
		authorizer:   authorizer,
		stageRepo:    stageRepo,
		progressRepo: progressRepo,
		noteRepo:     noteRepo,
		mediaRepo:    mediaRepo,
	}
}

// GetStageView returns the stage's catalog content merged with the
// project's progress, notes, and media for that stage. Every check item
// of the stage appears exactly once; items without a recorded result
// default to not done.
func (s *StageViewService) GetStageView(ctx context.Context, ownerUserID string, projectID, stageID uuid.UUID) (*StageViewResponse, error) {
	p, err := s.authorizer.Authorize(ctx, projectID, ownerUserID)
	if err != nil {
		return nil, err
	}

	stage, err := s.stageRepo.FindByID(ctx, stageID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrStageNotFound
		}
		return nil, err
	}

	checkItems, err := s.stageRepo.FindCheckItems(ctx, []uuid.UUID{stageID})
	if err != nil {
		return nil, err
	}

	statuses, err := s.progressRepo.FindStageStatuses(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var status *StageStatusResponse
	for i := range statuses {
		if statuses[i].StageID == stageID {
			status = &StageStatusResponse{
				StageID:   statuses[i].StageID,
				Status:    string(statuses[i].Status),
				UpdatedAt: statuses[i].UpdatedAt,
			}
			break
		}
	}

	results, err := s.progressRepo.FindCheckResults(ctx, projectID)
	if err != nil {
		return nil, err
	}
	resultsByItem := make(map[uuid.UUID]*project.CheckResult, len(results))
	for i := range results {
		resultsByItem[results[i].CheckItemID] = &results[i]
	}

	views := make([]CheckItemView, len(checkItems))
	for i, item := range checkItems {
		view := CheckItemView{
			CheckItemID: item.ID,
			Title:       item.Title,
			Description: item.Description,
			OrderIndex:  item.OrderIndex,
		}
		if r, ok := resultsByItem[item.ID]; ok {
			view.IsDone = r.IsDone
			view.Note = r.Note
		}
		views[i] = view
	}

	notes, err := s.noteRepo.FindByProject(ctx, projectID, &stageID)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaRepo.FindByProject(ctx, projectID, &stageID)
	if err != nil {
		return nil, err
	}

	return &StageViewResponse{
		Project:    ToProjectResponse(p),
		Stage:      ToStageResponse(stage),
		Status:     status,
		CheckItems: views,
		Notes:      ToNoteResponses(notes),
		Media:      ToMediaResponses(media),
	}, nil
}
