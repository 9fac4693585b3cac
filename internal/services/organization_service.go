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
	ErrInvalidOrganizationName = apperrors.Invalid("Organization name cannot be empty")
	ErrSlugTaken               = apperrors.Conflict("Another organization with a similar name already exists")
	ErrDomainTaken             = apperrors.Conflict("Another organization with the same domain already exists")
	ErrTargetNotMember         = apperrors.Invalid("User is not a member of this organization")
	ErrTargetAlreadyOwner      = apperrors.Invalid("User is already the owner of this organization")
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name                      string
	Domain                    *string
	ShouldAttachUsersByDomain bool
	OwnerID                   string
}

// CreateOrganization creates a new organization. The creator becomes both
// the organization's owner and its first ADMIN member, atomically.
func (s *OrganizationService) CreateOrganization(input CreateOrganizationInput) (*models.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidOrganizationName
	}

	slug := utils.Slugify(name)
	if _, err := s.orgRepo.FindBySlug(slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	if input.Domain != nil && *input.Domain != "" {
		if _, err := s.orgRepo.FindByDomain(*input.Domain); err == nil {
			return nil, ErrDomainTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check domain: %w", err)
		}
	}

	org := &models.Organization{
		Name:                      name,
		Slug:                      slug,
		Domain:                    normalizeDomain(input.Domain),
		ShouldAttachUsersByDomain: input.ShouldAttachUsersByDomain,
		OwnerID:                   input.OwnerID,
	}

	owner := &models.Member{
		UserID: input.OwnerID,
	}

	if err := s.orgRepo.CreateWithOwner(org, owner); err != nil {
		return nil, apperrors.TransactionFailure(err)
	}

	return org, nil
}

// ListOrganizationsForUser returns memberships (with organizations) the user belongs to.
func (s *OrganizationService) ListOrganizationsForUser(userID string) ([]models.Member, error) {
	memberships, err := s.orgRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return memberships, nil
}

// UpdateOrganizationInput represents parameters to update an organization.
type UpdateOrganizationInput struct {
	Name                      string
	Domain                    *string
	ShouldAttachUsersByDomain bool
}

// UpdateOrganization updates the organization's details. Domain uniqueness
// is re-checked against every other organization.
func (s *OrganizationService) UpdateOrganization(org *models.Organization, input UpdateOrganizationInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrInvalidOrganizationName
	}

	if input.Domain != nil && *input.Domain != "" {
		existing, err := s.orgRepo.FindByDomain(*input.Domain)
		if err == nil && existing.ID != org.ID {
			return ErrDomainTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check domain: %w", err)
		}
	}

	org.Name = name
	org.Domain = normalizeDomain(input.Domain)
	org.ShouldAttachUsersByDomain = input.ShouldAttachUsersByDomain

	if err := s.orgRepo.Update(org); err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	return nil
}

// ShutdownOrganization deletes the organization together with its
// projects, members and invites.
func (s *OrganizationService) ShutdownOrganization(orgID string) error {
	if err := s.orgRepo.Delete(orgID); err != nil {
		return apperrors.TransactionFailure(err)
	}
	return nil
}

// TransferOwnership moves ownership of the organization to another
// member: the target is promoted to ADMIN, the current owner is demoted
// to MEMBER and the owner reference is updated, all in one transaction.
func (s *OrganizationService) TransferOwnership(org *models.Organization, targetUserID string) error {
	// Transferring to the current owner would demote and promote the same
	// membership, leaving the owner as MEMBER.
	if targetUserID == org.OwnerID {
		return ErrTargetAlreadyOwner
	}

	if _, err := s.orgRepo.FindMember(org.ID, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotMember
		}
		return fmt.Errorf("failed to find target membership: %w", err)
	}

	if err := s.orgRepo.TransferOwnership(org.ID, org.OwnerID, targetUserID); err != nil {
		return apperrors.TransactionFailure(err)
	}

	return nil
}

func normalizeDomain(domain *string) *string {
	if domain == nil {
		return nil
	}
	d := strings.ToLower(strings.TrimSpace(*domain))
	if d == "" {
		return nil
	}
	return &d
}
