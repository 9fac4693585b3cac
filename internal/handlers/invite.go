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

// InviteHandler coordinates invite HTTP handlers.
type InviteHandler struct {
	guard         *services.Guard
	inviteService *services.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(guard *services.Guard, inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{
		guard:         guard,
		inviteService: inviteService,
	}
}

// CreateInvite invites an email address into the organization.
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type CreateInviteRequest struct {
		Email string     `json:"email" binding:"required,email"`
		Role  authz.Role `json:"role" binding:"required"`
	}

	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionCreate, authz.ResourceInvite)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	invite, err := h.inviteService.CreateInvite(services.CreateInviteInput{
		OrganizationID: result.Organization.ID,
		AuthorID:       userID,
		Email:          req.Email,
		Role:           req.Role,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"invite_id": invite.ID,
	})
}

// ListInvites lists the organization's pending invites.
func (h *InviteHandler) ListInvites(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionGet, authz.ResourceInvite)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	invites, err := h.inviteService.ListInvites(result.Organization.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invites": dto.ToInviteDTOs(invites),
	})
}

// RevokeInvite deletes a pending invite of the organization.
func (h *InviteHandler) RevokeInvite(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionDelete, authz.ResourceInvite)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.inviteService.RevokeInvite(result.Organization.ID, c.Param("inviteId")); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPendingInvites lists invites addressed to the caller's email.
func (h *InviteHandler) ListPendingInvites(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	invites, err := h.inviteService.ListPendingInvites(userID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invites": dto.ToInviteDTOs(invites),
	})
}

// AcceptInvite joins the caller to the inviting organization and consumes
// the invite.
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	if err := h.inviteService.AcceptInvite(c.Param("inviteId"), userID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RejectInvite declines an invite and consumes it.
func (h *InviteHandler) RejectInvite(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	if err := h.inviteService.RejectInvite(c.Param("inviteId"), userID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
