package repository

import (
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/database"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/utils"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByIDInOrganization finds a project by ID scoped to an organization
func (r *GormProjectRepository) FindByIDInOrganization(organizationID, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("organization_id = ? AND id = ?", organizationID, id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlugInOrganization finds a project by slug scoped to an organization
func (r *GormProjectRepository) FindBySlugInOrganization(organizationID, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Owner").
		Where("organization_id = ? AND slug = ?", organizationID, slug).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves an organization's projects with pagination
func (r *GormProjectRepository) List(organizationID string, params utils.PaginationParams) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{}).Where("organization_id = ?", organizationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := query.Preload("Owner").
		Scopes(database.Paginate(params)).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project
func (r *GormProjectRepository) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// CountByOrganization counts an organization's projects
func (r *GormProjectRepository) CountByOrganization(organizationID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}
