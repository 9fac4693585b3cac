package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/constants"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

var (
	ErrEmailTaken         = apperrors.Conflict("A user with this email already exists")
	ErrInvalidCredentials = apperrors.Unauthenticated("Invalid email or password")
	ErrPasswordTooShort   = apperrors.Invalid("Password is too short")
	ErrUserNotFound       = apperrors.NotFound("User not found")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup creates a new user. If an organization auto-attaches users by the
// email's domain, the user joins it as MEMBER in the same transaction.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, apperrors.Invalid("Email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	autoAttachOrg, err := s.findAutoAttachOrganization(email)
	if err != nil {
		return nil, err
	}

	if autoAttachOrg == nil {
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return user, nil
	}

	member := &models.Member{
		OrganizationID: autoAttachOrg.ID,
		Role:           authz.RoleMember,
	}
	if err := s.userRepo.CreateWithMembership(user, member); err != nil {
		return nil, fmt.Errorf("failed to complete signup: %w", err)
	}

	return user, nil
}

// findAutoAttachOrganization returns the organization whose domain
// matches the email and which opted into attaching users by domain.
func (s *AuthService) findAutoAttachOrganization(email string) (*models.Organization, error) {
	_, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return nil, nil
	}

	org, err := s.orgRepo.FindByDomain(domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization by domain: %w", err)
	}

	if !org.ShouldAttachUsersByDomain {
		return nil, nil
	}
	return org, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
