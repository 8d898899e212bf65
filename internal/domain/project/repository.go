package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// FindByIDForOwner finds a project by ID scoped to an owner. A missing
	// project and a project owned by someone else both return
	// shared.ErrNotFound; callers must not be able to tell them apart.
	FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerUserID string) (*Project, error)

	// FindAllForOwner returns all projects of an owner
	FindAllForOwner(ctx context.Context, ownerUserID string) ([]Project, error)

	// Save creates or updates a project
	Save(ctx context.Context, project *Project) error
}

// ProgressRepository persists per-project stage statuses and check
// results. Upserts key on the natural key, not the row ID.
type ProgressRepository interface {
	// FindStageStatuses returns all stage statuses of a project
	FindStageStatuses(ctx context.Context, projectID uuid.UUID) ([]StageStatus, error)

	// UpsertStageStatus writes a status keyed by (project_id, stage_id)
	UpsertStageStatus(ctx context.Context, status *StageStatus) error

	// FindCheckResults returns all check results of a project
	FindCheckResults(ctx context.Context, projectID uuid.UUID) ([]CheckResult, error)

	// UpsertCheckResult writes a result keyed by (project_id, check_item_id)
	UpsertCheckResult(ctx context.Context, result *CheckResult) error
}

// NoteRepository defines the interface for note persistence
type NoteRepository interface {
	// Save creates a note
	Save(ctx context.Context, note *Note) error

	// FindByProject returns a project's notes, newest first. A non-nil
	// stageID restricts the result to that stage.
	FindByProject(ctx context.Context, projectID uuid.UUID, stageID *uuid.UUID) ([]Note, error)
}

// MediaRepository defines the interface for media persistence
type MediaRepository interface {
	// Save creates a media record
	Save(ctx context.Context, media *Media) error

	// FindByProject returns a project's media, newest first. A non-nil
	// stageID restricts the result to that stage.
	FindByProject(ctx context.Context, projectID uuid.UUID, stageID *uuid.UUID) ([]Media, error)
}
