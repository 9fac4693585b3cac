package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/middleware"
	"github.com/sawai-h/saas-rbac-api/internal/services"
)

// BillingHandler coordinates billing HTTP handlers.
type BillingHandler struct {
	guard          *services.Guard
	billingService *services.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(guard *services.Guard, billingService *services.BillingService) *BillingHandler {
	return &BillingHandler{
		guard:          guard,
		billingService: billingService,
	}
}

// GetBilling returns the organization's current billing summary.
func (h *BillingHandler) GetBilling(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Respond(c, apperrors.Unauthenticated(""))
		return
	}

	result, err := h.guard.Authorize(userID, c.Param("slug"), authz.ActionGet, authz.ResourceBilling)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	billing, err := h.billingService.GetBilling(result.Organization.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"billing": billing,
	})
}
