package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

var (
	ErrInviteNotFound      = apperrors.NotFound("Invite not found or expired")
	ErrInviteEmailMismatch = apperrors.Unauthorized("This invite belongs to another user")
	ErrAlreadyInvited      = apperrors.Conflict("Another invite with the same email already exists")
	ErrAlreadyMember       = apperrors.Conflict("A member with this email already belongs to this organization")
)

// InviteService provides business logic for organization invites. An
// invite is consumed at most once: acceptance and rejection delete it.
type InviteService struct {
	inviteRepo repository.InviteRepository
	userRepo   repository.UserRepository
	orgRepo    repository.OrganizationRepository
}

// NewInviteService creates a new InviteService.
func NewInviteService(inviteRepo repository.InviteRepository, userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) *InviteService {
	return &InviteService{
		inviteRepo: inviteRepo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
	}
}

// CreateInviteInput represents parameters to invite someone to an organization.
type CreateInviteInput struct {
	OrganizationID string
	AuthorID       string
	Email          string
	Role           authz.Role
}

// CreateInvite creates a pending invite for an email address.
func (s *InviteService) CreateInvite(input CreateInviteInput) (*models.Invite, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, apperrors.Invalid("Email is required")
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.inviteRepo.FindPending(input.OrganizationID, email); err == nil {
		return nil, ErrAlreadyInvited
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invites: %w", err)
	}

	if user, err := s.userRepo.FindByEmail(email); err == nil {
		if _, err := s.orgRepo.FindMember(input.OrganizationID, user.ID); err == nil {
			return nil, ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	invite := &models.Invite{
		Email:          email,
		Role:           input.Role,
		OrganizationID: input.OrganizationID,
		AuthorID:       &input.AuthorID,
	}

	if err := s.inviteRepo.Create(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return invite, nil
}

// ListInvites returns the organization's pending invites.
func (s *InviteService) ListInvites(organizationID string) ([]models.Invite, error) {
	invites, err := s.inviteRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}

// ListPendingInvites returns invites addressed to the user's email.
func (s *InviteService) ListPendingInvites(userID string) ([]models.Invite, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	invites, err := s.inviteRepo.ListByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invites: %w", err)
	}
	return invites, nil
}

// AcceptInvite joins the user to the inviting organization with the
// invited role and destroys the invite, atomically. A second accept on
// the same id fails with NotFound.
func (s *InviteService) AcceptInvite(inviteID, userID string) error {
	invite, user, err := s.matchInvite(inviteID, userID)
	if err != nil {
		return err
	}

	// The invitee may have joined some other way since the invite was
	// created; the membership insert would hit the (org, user) unique
	// index otherwise.
	if _, err := s.orgRepo.FindMember(invite.OrganizationID, user.ID); err == nil {
		return ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.Member{
		OrganizationID: invite.OrganizationID,
		UserID:         user.ID,
		Role:           invite.Role,
	}

	if err := s.inviteRepo.Accept(invite, member); err != nil {
		return apperrors.TransactionFailure(err)
	}

	return nil
}

// RejectInvite destroys the invite without joining. A second reject on
// the same id fails with NotFound.
func (s *InviteService) RejectInvite(inviteID, userID string) error {
	invite, _, err := s.matchInvite(inviteID, userID)
	if err != nil {
		return err
	}

	if err := s.inviteRepo.Delete(invite.ID); err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}

	return nil
}

// RevokeInvite deletes a pending invite on behalf of the organization.
func (s *InviteService) RevokeInvite(organizationID, inviteID string) error {
	invite, err := s.inviteRepo.FindByIDInOrganization(organizationID, inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return fmt.Errorf("failed to find invite: %w", err)
	}

	if err := s.inviteRepo.Delete(invite.ID); err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}

	return nil
}

// matchInvite loads the invite and verifies it is addressed to the acting
// user's email.
func (s *InviteService) matchInvite(inviteID, userID string) (*models.Invite, *models.User, error) {
	invite, err := s.inviteRepo.FindByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInviteNotFound
		}
		return nil, nil, fmt.Errorf("failed to find invite: %w", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !strings.EqualFold(invite.Email, user.Email) {
		return nil, nil, ErrInviteEmailMismatch
	}

	return invite, user, nil
}
