package project

import (
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CheckResult records the outcome of one checklist item for one project.
// At most one row exists per (project, check item); writes replace the row.
type CheckResult struct {
	shared.BaseEntity
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_check_result_project_item,priority:1"`
	CheckItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_check_result_project_item,priority:2"`
	IsDone      bool      `gorm:"not null;default:false"`
	Note        string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CheckResult) TableName() string {
	return "check_results"
}

// NewCheckResult creates a check result record
func NewCheckResult(projectID, checkItemID uuid.UUID, isDone bool, note string) *CheckResult {
	return &CheckResult{
		BaseEntity:  shared.NewBaseEntity(),
		ProjectID:   projectID,
		CheckItemID: checkItemID,
		IsDone:      isDone,
		Note:        note,
	}
}
