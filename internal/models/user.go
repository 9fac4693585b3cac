package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"type:uuid;primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	AvatarURL    string    `gorm:"type:varchar(512)" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Memberships     []Member  `gorm:"foreignKey:UserID" json:"-"`
	OwnedProjects   []Project `gorm:"foreignKey:OwnerID" json:"-"`
	AuthoredInvites []Invite  `gorm:"foreignKey:AuthorID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
