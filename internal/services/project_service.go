package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
	"github.com/sawai-h/saas-rbac-api/internal/utils"
)

var (
	ErrProjectNotFound    = apperrors.NotFound("Project not found")
	ErrInvalidProjectName = apperrors.Invalid("Project name cannot be empty")
	ErrProjectSlugTaken   = apperrors.Conflict("A project with a similar name already exists in this organization")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	OrganizationID string
	OwnerID        string
	Name           string
	Description    string
}

// CreateProject creates a new project owned by the caller. The slug is
// derived from the name and must be unique within the organization.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidProjectName
	}

	slug := utils.Slugify(name)
	if _, err := s.projectRepo.FindBySlugInOrganization(input.OrganizationID, slug); err == nil {
		return nil, ErrProjectSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check project slug: %w", err)
	}

	project := &models.Project{
		Name:           name,
		Slug:           slug,
		Description:    input.Description,
		OrganizationID: input.OrganizationID,
		OwnerID:        input.OwnerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns the organization's projects with pagination.
func (s *ProjectService) ListProjects(organizationID string, params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(organizationID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetProjectBySlug returns a project by slug, scoped to the organization.
func (s *ProjectService) GetProjectBySlug(organizationID, slug string) (*models.Project, error) {
	project, err := s.projectRepo.FindBySlugInOrganization(organizationID, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProject returns a project by id, scoped to the organization. Absence
// and belonging to another organization are indistinguishable by design.
func (s *ProjectService) GetProject(organizationID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDInOrganization(organizationID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// UpdateProjectInput represents the updatable project fields.
type UpdateProjectInput struct {
	Name        string
	Description string
	AvatarURL   string
}

// UpdateProject updates a project's details. The slug is not regenerated;
// it stays stable after creation.
func (s *ProjectService) UpdateProject(project *models.Project, input UpdateProjectInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrInvalidProjectName
	}

	project.Name = name
	project.Description = input.Description
	project.AvatarURL = input.AvatarURL

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(projectID string) error {
	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
