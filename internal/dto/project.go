package dto

import (
	"time"

	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	OrganizationID string    `json:"organization_id"`
	OwnerID        string    `json:"owner_id"`
	Owner          *UserDTO  `json:"owner,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToProjectDTO converts a project model to DTO
func ToProjectDTO(project models.Project) ProjectDTO {
	p := ProjectDTO{
		ID:             project.ID,
		Name:           project.Name,
		Slug:           project.Slug,
		Description:    project.Description,
		AvatarURL:      project.AvatarURL,
		OrganizationID: project.OrganizationID,
		OwnerID:        project.OwnerID,
		CreatedAt:      project.CreatedAt,
	}
	if project.Owner.ID != "" {
		owner := ToUserDTO(project.Owner)
		p.Owner = &owner
	}
	return p
}

// ToProjectDTOs converts a slice of projects to DTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
