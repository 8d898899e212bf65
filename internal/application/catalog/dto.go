package catalog

import (
	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

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

// CheckItemResponse represents a checklist item in API responses
type CheckItemResponse struct {
	ID          uuid.UUID `json:"id"`
	StageID     uuid.UUID `json:"stage_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
}

// AdminStageResponse is a stage with its check items grouped under it
type AdminStageResponse struct {
	StageResponse
	Checks []CheckItemResponse `json:"checks"`
}

// UpsertCheckItemRequest creates or replaces one checklist item. A nil
// ID creates a new item.
type UpsertCheckItemRequest struct {
	ID          *uuid.UUID `json:"id"`
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	OrderIndex  int        `json:"order_index"`
}

// UpsertStageRequest creates or replaces one stage and its nested check
// items. A nil ID creates a new stage.
type UpsertStageRequest struct {
	ID               *uuid.UUID               `json:"id"`
	Slug             string                   `json:"slug" binding:"required,slug,max=100"`
	Title            string                   `json:"title" binding:"required,min=1,max=200"`
	ShortExplanation string                   `json:"short_explanation"`
	CommonMistakes   string                   `json:"common_mistakes"`
	MustDocument     string                   `json:"must_document"`
	OrderIndex       int                      `json:"order_index"`
	Checks           []UpsertCheckItemRequest `json:"checks"`
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

// ToStageResponses converts a slice of domain Stages to responses
func ToStageResponses(stages []catalog.Stage) []StageResponse {
	responses := make([]StageResponse, len(stages))
	for i, s := range stages {
		responses[i] = ToStageResponse(&s)
	}
	return responses
}

// ToCheckItemResponse converts a domain CheckItem to CheckItemResponse
func ToCheckItemResponse(c *catalog.CheckItem) CheckItemResponse {
	return CheckItemResponse{
		ID:          c.ID,
		StageID:     c.StageID,
		Title:       c.Title,
		Description: c.Description,
		OrderIndex:  c.OrderIndex,
	}
}
