package persistence

import (
	"context"
	"errors"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements project.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByIDForOwner finds a project by ID scoped to the owning user.
// A project owned by someone else is indistinguishable from a missing one.
func (r *GormProjectRepository) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerUserID string) (*project.Project, error) {
	var p project.Project
	if err := r.db.WithContext(ctx).
		First(&p, "id = ? AND owner_user_id = ?", id, ownerUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAllForOwner returns the caller's projects, newest first
func (r *GormProjectRepository) FindAllForOwner(ctx context.Context, ownerUserID string) ([]project.Project, error) {
	var projects []project.Project
	if err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save persists a project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}
