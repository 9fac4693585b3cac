package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
)

// Member is a user's membership within an organization. A user has at
// most one role per organization.
type Member struct {
	ID             string     `gorm:"type:uuid;primarykey" json:"id"`
	OrganizationID string     `gorm:"type:uuid;not null;uniqueIndex:idx_members_org_user" json:"organization_id"`
	UserID         string     `gorm:"type:uuid;not null;uniqueIndex:idx_members_org_user" json:"user_id"`
	Role           authz.Role `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
