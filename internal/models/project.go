package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project belongs to exactly one organization; OrganizationID is
// immutable after creation.
type Project struct {
	ID             string    `gorm:"type:uuid;primarykey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_projects_org_slug" json:"slug"`
	Description    string    `gorm:"type:text" json:"description"`
	AvatarURL      string    `gorm:"type:varchar(512)" json:"avatar_url"`
	OrganizationID string    `gorm:"type:uuid;not null;uniqueIndex:idx_projects_org_slug" json:"organization_id"`
	OwnerID        string    `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Owner        User         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
