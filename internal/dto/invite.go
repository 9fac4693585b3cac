package dto

import (
	"time"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// InviteDTO represents a pending invite in API responses
type InviteDTO struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      authz.Role `json:"role"`
	Author    *UserDTO   `json:"author,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Organization is set for invites listed from the invitee's side.
	Organization *OrganizationDTO `json:"organization,omitempty"`
}

// ToInviteDTO converts an invite model to DTO
func ToInviteDTO(invite models.Invite) InviteDTO {
	d := InviteDTO{
		ID:        invite.ID,
		Email:     invite.Email,
		Role:      invite.Role,
		CreatedAt: invite.CreatedAt,
	}
	if invite.Author != nil && invite.Author.ID != "" {
		author := ToUserDTO(*invite.Author)
		d.Author = &author
	}
	if invite.Organization.ID != "" {
		org := ToOrganizationDTO(invite.Organization)
		d.Organization = &org
	}
	return d
}

// ToInviteDTOs converts a slice of invites to DTOs
func ToInviteDTOs(invites []models.Invite) []InviteDTO {
	dtos := make([]InviteDTO, len(invites))
	for i, invite := range invites {
		dtos[i] = ToInviteDTO(invite)
	}
	return dtos
}
