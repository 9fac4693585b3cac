package dto

import (
	"time"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID                        string    `json:"id"`
	Name                      string    `json:"name"`
	Slug                      string    `json:"slug"`
	Domain                    *string   `json:"domain"`
	ShouldAttachUsersByDomain bool      `json:"should_attach_users_by_domain"`
	AvatarURL                 string    `json:"avatar_url,omitempty"`
	OwnerID                   string    `json:"owner_id"`
	CreatedAt                 time.Time `json:"created_at"`
}

// OrganizationWithRoleDTO represents an organization with the user's role
type OrganizationWithRoleDTO struct {
	OrganizationDTO
	Role authz.Role `json:"role"`
}

// MembershipDTO represents the caller's own membership
type MembershipDTO struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	UserID         string     `json:"user_id"`
	Role           authz.Role `json:"role"`
}

// ToOrganizationDTO converts an organization model to DTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:                        org.ID,
		Name:                      org.Name,
		Slug:                      org.Slug,
		Domain:                    org.Domain,
		ShouldAttachUsersByDomain: org.ShouldAttachUsersByDomain,
		AvatarURL:                 org.AvatarURL,
		OwnerID:                   org.OwnerID,
		CreatedAt:                 org.CreatedAt,
	}
}

// ToOrganizationWithRoleDTO converts a membership to an organization DTO with the user's role
func ToOrganizationWithRoleDTO(member models.Member) OrganizationWithRoleDTO {
	return OrganizationWithRoleDTO{
		OrganizationDTO: ToOrganizationDTO(member.Organization),
		Role:            member.Role,
	}
}

// ToMembershipDTO converts a member model to a membership DTO
func ToMembershipDTO(member models.Member) MembershipDTO {
	return MembershipDTO{
		ID:             member.ID,
		OrganizationID: member.OrganizationID,
		UserID:         member.UserID,
		Role:           member.Role,
	}
}
