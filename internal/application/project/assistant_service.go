package project

import (
	"context"
	"fmt"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
)

// AIResponder defines the interface for the question-answering backend.
// stageContext is empty when the question is not tied to a known stage.
type AIResponder interface {
	Ask(ctx context.Context, question, projectContext, stageContext string) (string, error)
}

// AssistantService answers questions about a project and records every
// answer as a note on the project
type AssistantService struct {
	authorizer *Authorizer
	stageRepo  catalog.StageRepository
	noteRepo   project.NoteRepository
	responder  AIResponder
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(
	authorizer *Authorizer,
	stageRepo catalog.StageRepository,
	noteRepo project.NoteRepository,
	responder AIResponder,
) *AssistantService {
	return &AssistantService{
		authorizer: authorizer,
		stageRepo:  stageRepo,
		noteRepo:   noteRepo,
		responder:  responder,
	}
}

// Ask sends the question with project and stage context to the responder
// and persists one "Q: .../A: ..." note. A stage id that does not resolve
// is silently dropped from the context, but the note keeps it.
func (s *AssistantService) Ask(ctx context.Context, ownerUserID string, projectID uuid.UUID, req AskRequest) (*AskResponse, error) {
	p, err := s.authorizer.Authorize(ctx, projectID, ownerUserID)
	if err != nil {
		return nil, err
	}

	var stage *catalog.Stage
	if req.StageID != nil {
		if found, err := s.stageRepo.FindByID(ctx, *req.StageID); err == nil {
			stage = found
		}
	}

	location := p.LocationText
	if location == "" {
		location = "n/a"
	}
	projectContext := fmt.Sprintf("Project: %s. Location: %s.", p.Name, location)

	var stageContext string
	if stage != nil {
		stageContext = fmt.Sprintf(
			"Stage: %s. Explanation: %s. Common mistakes: %s. Must document: %s.",
			stage.Title, stage.ShortExplanation, stage.CommonMistakes, stage.MustDocument,
		)
	}

	answer, err := s.responder.Ask(ctx, req.Question, projectContext, stageContext)
	if err != nil {
		return nil, err
	}

	note, err := project.NewNote(projectID, req.StageID, fmt.Sprintf("Q: %s\nA: %s", req.Question, answer))
	if err != nil {
		return nil, err
	}
	if err := s.noteRepo.Save(ctx, note); err != nil {
		return nil, err
	}

	return &AskResponse{Answer: answer}, nil
}
