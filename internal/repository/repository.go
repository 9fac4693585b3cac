package repository

import (
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithMembership creates a user and an organization membership
	// within a single transaction (domain-based auto-attach on signup).
	CreateWithMembership(user *models.User, member *models.Member) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// OrganizationRepository defines the interface for organization and
// membership data access
type OrganizationRepository interface {
	// CreateWithOwner creates an organization and its owner's ADMIN
	// membership within a single transaction
	CreateWithOwner(org *models.Organization, owner *models.Member) error

	// FindByID finds an organization by ID
	FindByID(id string) (*models.Organization, error)

	// FindBySlug finds an organization by slug
	FindBySlug(slug string) (*models.Organization, error)

	// FindByDomain finds an organization by its auto-attach domain
	FindByDomain(domain string) (*models.Organization, error)

	// Update updates an organization
	Update(org *models.Organization) error

	// Delete deletes an organization and all related data
	Delete(id string) error

	// AddMember adds a member to an organization
	AddMember(member *models.Member) error

	// FindMember finds the membership of a user in an organization
	FindMember(organizationID, userID string) (*models.Member, error)

	// FindMemberByID finds a member by its own id, scoped to an organization
	FindMemberByID(organizationID, memberID string) (*models.Member, error)

	// UpdateMemberRole changes a member's role
	UpdateMemberRole(organizationID, memberID string, role authz.Role) error

	// RemoveMember removes a member from an organization
	RemoveMember(organizationID, memberID string) error

	// ListMembers lists all members of an organization
	ListMembers(organizationID string) ([]models.Member, error)

	// ListMembershipsByUserID lists all organizations a user is a member of
	ListMembershipsByUserID(userID string) ([]models.Member, error)

	// CountBillableMembers counts members whose role is not BILLING
	CountBillableMembers(organizationID string) (int64, error)

	// TransferOwnership promotes the new owner to ADMIN, demotes the
	// previous owner to MEMBER and updates the organization's owner, all
	// within a single transaction
	TransferOwnership(organizationID, fromUserID, toUserID string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByIDInOrganization finds a project by ID scoped to an organization
	FindByIDInOrganization(organizationID, id string) (*models.Project, error)

	// FindBySlugInOrganization finds a project by slug scoped to an organization
	FindBySlugInOrganization(organizationID, slug string) (*models.Project, error)

	// List retrieves an organization's projects with pagination
	List(organizationID string, params utils.PaginationParams) ([]models.Project, int64, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project
	Delete(id string) error

	// CountByOrganization counts an organization's projects
	CountByOrganization(organizationID string) (int64, error)
}

// InviteRepository defines the interface for invite data access
type InviteRepository interface {
	// Create creates a new invite
	Create(invite *models.Invite) error

	// FindByID finds an invite by ID
	FindByID(id string) (*models.Invite, error)

	// FindByIDInOrganization finds an invite by ID scoped to an organization
	FindByIDInOrganization(organizationID, id string) (*models.Invite, error)

	// FindPending finds a pending invite for an email in an organization
	FindPending(organizationID, email string) (*models.Invite, error)

	// ListByOrganization lists an organization's pending invites
	ListByOrganization(organizationID string) ([]models.Invite, error)

	// ListByEmail lists pending invites addressed to an email
	ListByEmail(email string) ([]models.Invite, error)

	// Accept creates the membership and deletes the invite within a
	// single transaction
	Accept(invite *models.Invite, member *models.Member) error

	// Delete deletes an invite
	Delete(id string) error
}
