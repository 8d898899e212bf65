package catalog

import (
	"context"

	"github.com/google/uuid"
)

// StageRepository defines the interface for stage catalog persistence
type StageRepository interface {
	// FindByID finds a stage by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Stage, error)

	// FindAll returns all stages ordered by order_index
	FindAll(ctx context.Context) ([]Stage, error)

	// FindCheckItems returns the check items of the given stages ordered by
	// order_index. An empty id list returns the whole catalog.
	FindCheckItems(ctx context.Context, stageIDs []uuid.UUID) ([]CheckItem, error)

	// FindCheckItemByID finds a check item anywhere in the catalog
	FindCheckItemByID(ctx context.Context, id uuid.UUID) (*CheckItem, error)

	// SaveStage creates or updates a stage by ID
	SaveStage(ctx context.Context, stage *Stage) error

	// SaveCheckItem creates or updates a check item by ID
	SaveCheckItem(ctx context.Context, item *CheckItem) error
}
