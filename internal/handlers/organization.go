package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/dto"
	"github.com/sawai-h/saas-rbac-api/internal/middleware"
	"github.com/sawai-h/saas-rbac-api/internal/services"
)

// OrganizationHandler coordinates organization HTTP handlers.
type OrganizationHandler struct {
	guard      *services.Guard
	orgService *services.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(guard *services.Guard, orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		guard:      guard,
		orgService: orgService,
	}
}

// CreateOrganization creates a new organization owned by the caller.
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type CreateOrgRequest struct {
		Name                      string  `json:"name" binding:"required"`
		Domain                    *string `json:"domain"`
		ShouldAttachUsersByDomain bool    `json:"should_attach_users_by_domain"`
	}

	var req CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.orgService.CreateOrganization(services.CreateOrganizationInput{
		Name:                      req.Name,
		Domain:                    req.Domain,
		ShouldAttachUsersByDomain: req.ShouldAttachUsersByDomain,
		OwnerID:                   userID,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"organization_id": org.ID,
	})
}

// ListOrganizations lists the organizations the caller belongs to.
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	memberships, err := h.orgService.ListOrganizationsForUser(userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	orgs := make([]dto.OrganizationWithRoleDTO, len(memberships))
	for i, m := range memberships {
		orgs[i] = dto.ToOrganizationWithRoleDTO(m)
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": orgs,
	})
}

// GetOrganization returns an organization the caller is a member of.
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionGet, authz.ResourceOrganization)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": dto.ToOrganizationDTO(*result.Organization),
	})
}

// GetMembership returns the caller's own membership in an organization.
func (h *OrganizationHandler) GetMembership(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionGet, authz.ResourceOrganization)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"membership": dto.ToMembershipDTO(*result.Membership),
	})
}

// UpdateOrganization updates an organization's details.
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type UpdateOrgRequest struct {
		Name                      string  `json:"name" binding:"required"`
		Domain                    *string `json:"domain"`
		ShouldAttachUsersByDomain bool    `json:"should_attach_users_by_domain"`
	}

	var req UpdateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.guard.AuthorizeOrganization(userID, c.Param("slug"), authz.ActionUpdate)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	err = h.orgService.UpdateOrganization(result.Organization, services.UpdateOrganizationInput{
		Name:                      req.Name,
		Domain:                    req.Domain,
		ShouldAttachUsersByDomain: req.ShouldAttachUsersByDomain,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ShutdownOrganization deletes an organization and everything in it.
func (h *OrganizationHandler) ShutdownOrganization(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.AuthorizeOrganization(userID, c.Param("slug"), authz.ActionDelete)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.orgService.ShutdownOrganization(result.Organization.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TransferOrganization transfers ownership of an organization to another member.
func (h *OrganizationHandler) TransferOrganization(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type TransferRequest struct {
		TransferToUserID string `json:"transfer_to_user_id" binding:"required,uuid"`
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.guard.AuthorizeOrganization(userID, c.Param("slug"), authz.ActionTransferOwnership)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.orgService.TransferOwnership(result.Organization, req.TransferToUserID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
