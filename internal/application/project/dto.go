package project

import (
	"time"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
)

// CreateProjectRequest represents a request to create a new project
type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	LocationText string `json:"location_text" binding:"max=500"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LocationText string    `json:"location_text"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateCheckResultRequest represents a request to record a check outcome
type UpdateCheckResultRequest struct {
	IsDone bool   `json:"is_done"`
	Note   string `json:"note" binding:"max=2000"`
}

// SetStageStatusRequest represents a request to set a stage's status
type SetStageStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=not_started in_progress done"`
}

// AddNoteRequest represents a request to add a note to a project
type AddNoteRequest struct {
	StageID *uuid.UUID `json:"stage_id"`
	Body    string     `json:"body" binding:"required,min=1"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProjectID uuid.UUID  `json:"project_id"`
	StageID   *uuid.UUID `json:"stage_id"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateUploadRequest represents a request for a presigned media upload
type CreateUploadRequest struct {
	StageID     *uuid.UUID `json:"stage_id"`
	Filename    string     `json:"filename" binding:"required,min=1,max=255"`
	ContentType string     `json:"content_type" binding:"required,min=1,max=100"`
}

// CreateUploadResponse carries the presigned URL and the storage key the
// client must upload to
type CreateUploadResponse struct {
	MediaID     uuid.UUID `json:"media_id"`
	UploadURL   string    `json:"upload_url"`
	StoragePath string    `json:"storage_path"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MediaResponse represents a media record in API responses
type MediaResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	StageID     *uuid.UUID `json:"stage_id"`
	StoragePath string     `json:"storage_path"`
	Caption     string     `json:"caption"`
	TakenAt     *time.Time `json:"taken_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AskRequest represents a question for the project assistant
type AskRequest struct {
	StageID  *uuid.UUID `json:"stage_id"`
	Question string     `json:"question" binding:"required,min=1,max=2000"`
}

// AskResponse carries the assistant's answer
type AskResponse struct {
	Answer string `json:"answer"`
}

// StageStatusResponse represents a stage status in API responses
type StageStatusResponse struct {
	StageID   uuid.UUID `json:"stage_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckItemView is one checklist entry merged with the project's result.
// Items without a recorded result carry IsDone=false and an empty note.
type CheckItemView struct {
	CheckItemID uuid.UUID `json:"check_item_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	IsDone      bool      `json:"is_done"`
	Note        string    `json:"note"`
}

// StageViewResponse is the full per-project view of one stage
type StageViewResponse struct {
	Project    ProjectResponse      `json:"project"`
	Stage      StageResponse        `json:"stage"`
	Status     *StageStatusResponse `json:"status"`
	CheckItems []CheckItemView      `json:"check_items"`
	Notes      []NoteResponse       `json:"notes"`
	Media      []MediaResponse      `json:"media"`
}

// StageResponse represents a catalog stage in API responses
type StageResponse struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	ShortExplanation string    `json:"short_explanation"`
	CommonMistakes   string    `json:"common_mistakes"`
	MustDocument     string    `json:"must_document"`
	OrderIndex       int       `json:"order_index"`
}

// ToProjectResponse converts a domain Project to ProjectResponse
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		LocationText: p.LocationText,
		CreatedAt:    p.CreatedAt,
	}
}

// ToProjectResponses converts a slice of domain Projects to responses
func ToProjectResponses(projects []project.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ToProjectResponse(&p)
	}
	return responses
}

// ToNoteResponse converts a domain Note to NoteResponse
func ToNoteResponse(n *project.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		ProjectID: n.ProjectID,
		StageID:   n.StageID,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

// ToNoteResponses converts a slice of domain Notes to responses
func ToNoteResponses(notes []project.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = ToNoteResponse(&n)
	}
	return responses
}

// ToMediaResponse converts a domain Media to MediaResponse
func ToMediaResponse(m *project.Media) MediaResponse {
	return MediaResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		StageID:     m.StageID,
		StoragePath: m.StoragePath,
		Caption:     m.Caption,
		TakenAt:     m.TakenAt,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMediaResponses converts a slice of domain Media to responses
func ToMediaResponses(media []project.Media) []MediaResponse {
	responses := make([]MediaResponse, len(media))
	for i, m := range media {
		responses[i] = ToMediaResponse(&m)
	}
	return responses
}

// ToStageResponse converts a domain Stage to StageResponse
func ToStageResponse(s *catalog.Stage) StageResponse {
	return StageResponse{
		ID:               s.ID,
		Slug:             s.Slug,
		Title:            s.Title,
		ShortExplanation: s.ShortExplanation,
		CommonMistakes:   s.CommonMistakes,
		MustDocument:     s.MustDocument,
		OrderIndex:       s.OrderIndex,
	}
}
