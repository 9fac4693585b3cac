package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/dto"
	"github.com/sawai-h/saas-rbac-api/internal/middleware"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/services"
	"github.com/sawai-h/saas-rbac-api/internal/utils"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	guard          *services.Guard
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(guard *services.Guard, projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		guard:          guard,
		projectService: projectService,
	}
}

// CreateProject creates a new project in the organization.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionCreate, authz.ResourceProject)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		OrganizationID: result.Organization.ID,
		OwnerID:        userID,
		Name:           req.Name,
		Description:    req.Description,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"project_id": project.ID,
	})
}

// ListProjects lists the organization's projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionGet, authz.ResourceProject)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	params := utils.GetPaginationParams(c)
	projects, total, err := h.projectService.ListProjects(result.Organization.ID, params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetProject returns a project by its slug.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	var project *models.Project
	_, err := h.guard.AuthorizeResource(userID, c.Param("slug"), authz.ActionGet,
		func(org *models.Organization) (authz.Resource, error) {
			p, err := h.projectService.GetProjectBySlug(org.ID, c.Param("projectSlug"))
			if err != nil {
				return authz.Resource{}, err
			}
			project = p
			return authz.Resource{
				Type:           authz.ResourceProject,
				OwnerID:        p.OwnerID,
				OrganizationID: p.OrganizationID,
			}, nil
		})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": dto.ToProjectDTO(*project),
	})
}

// UpdateProject updates a project's details.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type UpdateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		AvatarURL   string `json:"avatar_url" binding:"omitempty,url"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	var project *models.Project
	_, err := h.guard.AuthorizeResource(userID, c.Param("slug"), authz.ActionUpdate,
		func(org *models.Organization) (authz.Resource, error) {
			p, err := h.projectService.GetProject(org.ID, c.Param("projectId"))
			if err != nil {
				return authz.Resource{}, err
			}
			project = p
			return authz.Resource{
				Type:           authz.ResourceProject,
				OwnerID:        p.OwnerID,
				OrganizationID: p.OrganizationID,
			}, nil
		})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	err = h.projectService.UpdateProject(project, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProject removes a project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	var project *models.Project
	_, err := h.guard.AuthorizeResource(userID, c.Param("slug"), authz.ActionDelete,
		func(org *models.Organization) (authz.Resource, error) {
			p, err := h.projectService.GetProject(org.ID, c.Param("projectId"))
			if err != nil {
				return authz.Resource{}, err
			}
			project = p
			return authz.Resource{
				Type:           authz.ResourceProject,
				OwnerID:        p.OwnerID,
				OrganizationID: p.OrganizationID,
			}, nil
		})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.projectService.DeleteProject(project.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
