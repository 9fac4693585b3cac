package dto

import (
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// MemberDTO represents a member in an organization
type MemberDTO struct {
	ID   string     `json:"id"`
	User UserDTO    `json:"user"`
	Role authz.Role `json:"role"`
}

// ToMemberDTO converts a member to DTO
func ToMemberDTO(member models.Member) MemberDTO {
	return MemberDTO{
		ID:   member.ID,
		User: ToUserDTO(member.User),
		Role: member.Role,
	}
}

// ToMemberDTOs converts a slice of members to DTOs
func ToMemberDTOs(members []models.Member) []MemberDTO {
	dtos := make([]MemberDTO, len(members))
	for i, member := range members {
		dtos[i] = ToMemberDTO(member)
	}
	return dtos
}
