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

// MemberHandler coordinates member HTTP handlers.
type MemberHandler struct {
	guard         *services.Guard
	memberService *services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(guard *services.Guard, memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		guard:         guard,
		memberService: memberService,
	}
}

// ListMembers lists the organization's members.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionGet, authz.ResourceUser)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	members, err := h.memberService.ListMembers(result.Organization.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": dto.ToMemberDTOs(members),
	})
}

// UpdateMember changes a member's role.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	type UpdateMemberRequest struct {
		Role authz.Role `json:"role" binding:"required"`
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionUpdate, authz.ResourceUser)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.memberService.UpdateMemberRole(result.Organization, c.Param("memberId"), req.Role); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMember removes a member from the organization.
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionDelete, authz.ResourceUser)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if err := h.memberService.RemoveMember(result.Organization, c.Param("memberId")); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
