package project

import (
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Note is a free-text annotation on a project, optionally scoped to a
// stage. StageID is stored as given; it is not checked against the
// catalog.
type Note struct {
	shared.BaseEntity
	ProjectID uuid.UUID  `gorm:"type:uuid;not null;index"`
	StageID   *uuid.UUID `gorm:"type:uuid;index"`
	Body      string     `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Note) TableName() string {
	return "notes"
}

// NewNote creates a note on a project
func NewNote(projectID uuid.UUID, stageID *uuid.UUID, body string) (*Note, error) {
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Note body cannot be empty")
	}

	return &Note{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		StageID:    stageID,
		Body:       body,
	}, nil
}
