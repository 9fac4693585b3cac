package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

var (
	ErrMemberNotFound  = apperrors.NotFound("Member not found")
	ErrInvalidRole     = apperrors.Invalid("Invalid role")
	ErrCannotEditOwner = apperrors.Invalid("The owner's membership cannot be changed; transfer ownership first")
)

// MemberService provides business logic for organization members.
type MemberService struct {
	orgRepo repository.OrganizationRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(orgRepo repository.OrganizationRepository) *MemberService {
	return &MemberService{
		orgRepo: orgRepo,
	}
}

// ListMembers returns all members of the organization.
func (s *MemberService) ListMembers(organizationID string) ([]models.Member, error) {
	members, err := s.orgRepo.ListMembers(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateMemberRole changes the role of a member of the organization. The
// owner's membership stays ADMIN until ownership is transferred.
func (s *MemberService) UpdateMemberRole(org *models.Organization, memberID string, role authz.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	member, err := s.orgRepo.FindMemberByID(org.ID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	if member.UserID == org.OwnerID {
		return ErrCannotEditOwner
	}

	if err := s.orgRepo.UpdateMemberRole(org.ID, memberID, role); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	return nil
}

// RemoveMember removes a member from the organization. The owner cannot
// be removed while still referenced as the owner.
func (s *MemberService) RemoveMember(org *models.Organization, memberID string) error {
	member, err := s.orgRepo.FindMemberByID(org.ID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	if member.UserID == org.OwnerID {
		return ErrCannotEditOwner
	}

	if err := s.orgRepo.RemoveMember(org.ID, memberID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}
