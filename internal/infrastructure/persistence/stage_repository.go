package persistence

import (
	"context"
	"errors"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStageRepository implements catalog.StageRepository using GORM
type GormStageRepository struct {
	db *gorm.DB
}

// NewGormStageRepository creates a new GormStageRepository
func NewGormStageRepository(db *gorm.DB) *GormStageRepository {
	return &GormStageRepository{db: db}
}

// FindByID finds a stage by its ID
func (r *GormStageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Stage, error) {
	var stage catalog.Stage
	if err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stage, nil
}

// FindAll returns all stages ordered by order_index
func (r *GormStageRepository) FindAll(ctx context.Context) ([]catalog.Stage, error) {
	var stages []catalog.Stage
	if err := r.db.WithContext(ctx).
		Order("order_index ASC").
		Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

// FindCheckItems returns the check items of the given stages ordered by
// order_index. An empty id list returns the whole catalog.
func (r *GormStageRepository) FindCheckItems(ctx context.Context, stageIDs []uuid.UUID) ([]catalog.CheckItem, error) {
	var items []catalog.CheckItem
	query := r.db.WithContext(ctx).Order("order_index ASC")
	if len(stageIDs) > 0 {
		query = query.Where("stage_id IN ?", stageIDs)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindCheckItemByID finds a check item anywhere in the catalog
func (r *GormStageRepository) FindCheckItemByID(ctx context.Context, id uuid.UUID) (*catalog.CheckItem, error) {
	var item catalog.CheckItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// SaveStage creates or updates a stage by ID
func (r *GormStageRepository) SaveStage(ctx context.Context, stage *catalog.Stage) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"slug", "title", "short_explanation", "common_mistakes",
			"must_document", "order_index", "updated_at",
		}),
	}).Create(stage).Error
}

// SaveCheckItem creates or updates a check item by ID
func (r *GormStageRepository) SaveCheckItem(ctx context.Context, item *catalog.CheckItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "order_index", "updated_at",
		}),
	}).Create(item).Error
}
