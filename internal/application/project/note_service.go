package project

import (
	"context"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
)

// NoteService handles free-text notes on projects
type NoteService struct {
	authorizer *Authorizer
	noteRepo   project.NoteRepository
}

// NewNoteService creates a new NoteService
func NewNoteService(authorizer *Authorizer, noteRepo project.NoteRepository) *NoteService {
	return &NoteService{
		authorizer: authorizer,
		noteRepo:   noteRepo,
	}
}

// Add records a note on the project. The stage id is stored as given
// without a catalog lookup.
func (s *NoteService) Add(ctx context.Context, ownerUserID string, projectID uuid.UUID, req AddNoteRequest) (*NoteResponse, error) {
	if _, err := s.authorizer.Authorize(ctx, projectID, ownerUserID); err != nil {
		return nil, err
	}

	note, err := project.NewNote(projectID, req.StageID, req.Body)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	response := ToNoteResponse(note)
	return &response, nil
}

// List returns the project's notes, optionally restricted to one stage
func (s *NoteService) List(ctx context.Context, ownerUserID string, projectID uuid.UUID, stageID *uuid.UUID) ([]NoteResponse, error) {
	if _, err := s.authorizer.Authorize(ctx, projectID, ownerUserID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.FindByProject(ctx, projectID, stageID)
	if err != nil {
		return nil, err
	}
	return ToNoteResponses(notes), nil
}
