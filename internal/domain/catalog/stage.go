package catalog

import (
	"strings"
	"time"

	"github.com/buildtrack/backend/internal/domain/shared"
)

// Stage represents one step of the global construction stage catalog.
// Stages are shared across all projects and ordered by OrderIndex.
type Stage struct {
	shared.BaseEntity
	Slug             string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Title            string `gorm:"type:varchar(200);not null"`
	ShortExplanation string `gorm:"type:text;not null"`
	CommonMistakes   string `gorm:"type:text;not null"`
	MustDocument     string `gorm:"type:text;not null"`
	OrderIndex       int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Stage) TableName() string {
	return "stages"
}

// NewStage creates a new catalog stage
func NewStage(slug, title string, orderIndex int) (*Stage, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	return &Stage{
		BaseEntity: shared.NewBaseEntity(),
		Slug:       strings.ToLower(slug),
		Title:      title,
		OrderIndex: orderIndex,
	}, nil
}

// Update replaces the stage's editable fields
func (s *Stage) Update(slug, title, shortExplanation, commonMistakes, mustDocument string, orderIndex int) error {
	if err := validateSlug(slug); err != nil {
		return err
	}
	if err := validateTitle(title); err != nil {
		return err
	}

	s.Slug = strings.ToLower(slug)
	s.Title = title
	s.ShortExplanation = shortExplanation
	s.CommonMistakes = commonMistakes
	s.MustDocument = mustDocument
	s.OrderIndex = orderIndex
	s.UpdatedAt = time.Now()

	return nil
}

// validateSlug validates the stage slug
func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Stage slug cannot be empty")
	}
	if len(slug) > 100 {
		return shared.NewDomainError("INVALID_SLUG", "Stage slug cannot exceed 100 characters")
	}
	for _, r := range slug {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SLUG", "Stage slug can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

// validateTitle validates the stage title
func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Stage title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Stage title cannot exceed 200 characters")
	}
	return nil
}
