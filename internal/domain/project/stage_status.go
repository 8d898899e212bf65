package project

import (
	"time"

	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StageStatusValue is the progress state of one stage within a project
type StageStatusValue string

const (
	StageNotStarted StageStatusValue = "not_started"
	StageInProgress StageStatusValue = "in_progress"
	StageDone       StageStatusValue = "done"
)

// IsValid reports whether the value is one of the known states
func (v StageStatusValue) IsValid() bool {
	switch v {
	case StageNotStarted, StageInProgress, StageDone:
		return true
	}
	return false
}

// StageStatus records the state of one catalog stage for one project.
// At most one row exists per (project, stage); writes replace the row.
type StageStatus struct {
	shared.BaseEntity
	ProjectID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_stage_status_project_stage,priority:1"`
	StageID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_stage_status_project_stage,priority:2"`
	Status    StageStatusValue `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (StageStatus) TableName() string {
	return "stage_statuses"
}

// NewStageStatus creates a stage status record
func NewStageStatus(projectID, stageID uuid.UUID, status StageStatusValue) (*StageStatus, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Stage status must be not_started, in_progress, or done")
	}

	return &StageStatus{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		StageID:    stageID,
		Status:     status,
	}, nil
}

// SetStatus replaces the status value
func (s *StageStatus) SetStatus(status StageStatusValue) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Stage status must be not_started, in_progress, or done")
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return nil
}
