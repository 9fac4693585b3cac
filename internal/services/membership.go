package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

// MembershipResolver maps a caller and an organization slug to the
// organization record and the caller's membership within it. It fails
// closed: an unknown slug is NotFound, a missing membership is
// Unauthorized. Read-only and safe for concurrent use.
type MembershipResolver struct {
	orgRepo repository.OrganizationRepository
}

// NewMembershipResolver creates a new MembershipResolver.
func NewMembershipResolver(orgRepo repository.OrganizationRepository) *MembershipResolver {
	return &MembershipResolver{
		orgRepo: orgRepo,
	}
}

// Resolve returns the organization identified by slug together with the
// caller's membership in it.
func (r *MembershipResolver) Resolve(userID, slug string) (*models.Organization, *models.Member, error) {
	org, err := r.orgRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("Organization not found")
		}
		return nil, nil, fmt.Errorf("failed to find organization: %w", err)
	}

	member, err := r.orgRepo.FindMember(org.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.Unauthorized("You are not a member of this organization")
		}
		return nil, nil, fmt.Errorf("failed to find membership: %w", err)
	}

	// The two lookups are not one consistent read; re-validate the pairing.
	if member.OrganizationID != org.ID {
		return nil, nil, apperrors.Unauthorized("You are not a member of this organization")
	}

	return org, member, nil
}
