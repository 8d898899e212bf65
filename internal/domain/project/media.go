package project

import (
	"time"

	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Media is an uploaded photo or document attached to a project. The row
// is written when the upload URL is issued, so a row may exist for an
// upload that never completed.
type Media struct {
	shared.BaseEntity
	ProjectID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	StageID     *uuid.UUID `gorm:"type:uuid;index"`
	StoragePath string     `gorm:"type:varchar(500);not null"`
	Caption     string     `gorm:"type:text"`
	TakenAt     *time.Time
}

// TableName returns the table name for GORM
func (Media) TableName() string {
	return "media"
}

// NewMedia creates a media record pointing at a storage object
func NewMedia(projectID uuid.UUID, stageID *uuid.UUID, storagePath, caption string, takenAt *time.Time) (*Media, error) {
	if storagePath == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_PATH", "Media storage path cannot be empty")
	}

	return &Media{
		BaseEntity:  shared.NewBaseEntity(),
		ProjectID:   projectID,
		StageID:     stageID,
		StoragePath: storagePath,
		Caption:     caption,
		TakenAt:     takenAt,
	}, nil
}
