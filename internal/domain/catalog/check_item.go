package catalog

import (
	"time"

	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CheckItem is a single checklist entry belonging to a catalog stage
type CheckItem struct {
	shared.BaseEntity
	StageID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	OrderIndex  int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CheckItem) TableName() string {
	return "check_items"
}

// NewCheckItem creates a new checklist item for a stage
func NewCheckItem(stageID uuid.UUID, title, description string, orderIndex int) (*CheckItem, error) {
	if stageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAGE", "Check item requires a stage")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	return &CheckItem{
		BaseEntity:  shared.NewBaseEntity(),
		StageID:     stageID,
		Title:       title,
		Description: description,
		OrderIndex:  orderIndex,
	}, nil
}

// Update replaces the check item's editable fields
func (c *CheckItem) Update(title, description string, orderIndex int) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	c.Title = title
	c.Description = description
	c.OrderIndex = orderIndex
	c.UpdatedAt = time.Now()

	return nil
}
