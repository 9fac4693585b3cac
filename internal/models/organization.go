package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID   string `gorm:"type:uuid;primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	// Domain is unique across all organizations when present.
	Domain                    *string   `gorm:"type:varchar(255);uniqueIndex" json:"domain"`
	ShouldAttachUsersByDomain bool      `gorm:"not null;default:false" json:"should_attach_users_by_domain"`
	AvatarURL                 string    `gorm:"type:varchar(512)" json:"avatar_url"`
	OwnerID                   string    `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`

	// Relations
	Owner    User      `gorm:"foreignKey:OwnerID" json:"-"`
	Members  []Member  `gorm:"foreignKey:OrganizationID" json:"members,omitempty"`
	Projects []Project `gorm:"foreignKey:OrganizationID" json:"projects,omitempty"`
	Invites  []Invite  `gorm:"foreignKey:OrganizationID" json:"invites,omitempty"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
