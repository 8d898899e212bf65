package persistence

import (
	"context"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMediaRepository implements project.MediaRepository using GORM
type GormMediaRepository struct {
	db *gorm.DB
}

// NewGormMediaRepository creates a new GormMediaRepository
func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

// Save persists a media record
func (r *GormMediaRepository) Save(ctx context.Context, media *project.Media) error {
	return r.db.WithContext(ctx).Save(media).Error
}

// FindByProject returns a project's media records, optionally scoped to a
// stage, newest first
func (r *GormMediaRepository) FindByProject(ctx context.Context, projectID uuid.UUID, stageID *uuid.UUID) ([]project.Media, error) {
	var media []project.Media
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if stageID != nil {
		query = query.Where("stage_id = ?", *stageID)
	}
	if err := query.Order("created_at DESC").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}
