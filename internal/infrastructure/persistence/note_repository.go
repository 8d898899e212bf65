package persistence

import (
	"context"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository implements project.NoteRepository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// Save persists a note
func (r *GormNoteRepository) Save(ctx context.Context, note *project.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// FindByProject returns a project's notes, optionally scoped to a stage,
// newest first
func (r *GormNoteRepository) FindByProject(ctx context.Context, projectID uuid.UUID, stageID *uuid.UUID) ([]project.Note, error) {
	var notes []project.Note
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if stageID != nil {
		query = query.Where("stage_id = ?", *stageID)
	}
	if err := query.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
