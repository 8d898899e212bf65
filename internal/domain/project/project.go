package project

import (
	"github.com/buildtrack/backend/internal/domain/shared"
)

// Project is a single home-construction project owned by one user.
// OwnerUserID is the opaque identity resolved from the bearer token.
type Project struct {
	shared.BaseEntity
	OwnerUserID  string `gorm:"type:varchar(200);not null;index"`
	Name         string `gorm:"type:varchar(200);not null"`
	LocationText string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project for an owner
func NewProject(ownerUserID, name, locationText string) (*Project, error) {
	if ownerUserID == "" {
		return nil, shared.NewDomainError("INVALID_OWNER", "Project owner cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}

	return &Project{
		BaseEntity:   shared.NewBaseEntity(),
		OwnerUserID:  ownerUserID,
		Name:         name,
		LocationText: locationText,
	}, nil
}
