package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
)

// Invite is a pending invitation to join an organization. Acceptance and
// rejection delete the record, so an invite is processed at most once.
type Invite struct {
	ID             string     `gorm:"type:uuid;primarykey" json:"id"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_invites_org_email" json:"email"`
	Role           authz.Role `gorm:"type:varchar(20);not null" json:"role"`
	OrganizationID string     `gorm:"type:uuid;not null;uniqueIndex:idx_invites_org_email" json:"organization_id"`
	AuthorID       *string    `gorm:"type:uuid" json:"author_id"`
	CreatedAt      time.Time  `json:"created_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Author       *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (i *Invite) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
