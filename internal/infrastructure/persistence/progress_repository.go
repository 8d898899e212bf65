package persistence

import (
	"context"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressRepository implements project.ProgressRepository using GORM
type GormProgressRepository struct {
	db *gorm.DB
}

// NewGormProgressRepository creates a new GormProgressRepository
func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{db: db}
}

// FindStageStatuses returns all stage status rows of a project
func (r *GormProgressRepository) FindStageStatuses(ctx context.Context, projectID uuid.UUID) ([]project.StageStatus, error) {
	var statuses []project.StageStatus
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// UpsertStageStatus inserts or updates the status row keyed on
// (project_id, stage_id)
func (r *GormProgressRepository) UpsertStageStatus(ctx context.Context, status *project.StageStatus) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "stage_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(status).Error
}

// FindCheckResults returns all check result rows of a project
func (r *GormProgressRepository) FindCheckResults(ctx context.Context, projectID uuid.UUID) ([]project.CheckResult, error) {
	var results []project.CheckResult
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertCheckResult inserts or updates the result row keyed on
// (project_id, check_item_id)
func (r *GormProgressRepository) UpsertCheckResult(ctx context.Context, result *project.CheckResult) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "check_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_done", "note", "updated_at"}),
	}).Create(result).Error
}
