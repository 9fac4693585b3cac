package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

func setupGuard(t *testing.T) (*Guard, *guardFixtures) {
	t.Helper()

	db := setupTestDB(t)
	orgRepo := repository.NewOrganizationRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	guard := NewGuard(NewMembershipResolver(orgRepo), authz.NewEngine())

	admin := createTestUser(t, db, "u1@acme.com")
	org := createTestOrganization(t, db, "acme", admin)
	member := createTestUser(t, db, "u2@acme.com")
	addTestMember(t, db, org, member, authz.RoleMember)

	project := &models.Project{
		Name:           "Apollo",
		Slug:           "apollo",
		OrganizationID: org.ID,
		OwnerID:        admin.ID,
	}
	require.NoError(t, projectRepo.Create(project))

	return guard, &guardFixtures{
		projectRepo: projectRepo,
		admin:       admin,
		member:      member,
		org:         org,
		project:     project,
	}
}

type guardFixtures struct {
	projectRepo repository.ProjectRepository
	admin       *models.User
	member      *models.User
	org         *models.Organization
	project     *models.Project
}

func (f *guardFixtures) projectLoader(projectID string) ResourceLoader {
	return func(org *models.Organization) (authz.Resource, error) {
		p, err := f.projectRepo.FindByIDInOrganization(org.ID, projectID)
		if err != nil {
			return authz.Resource{}, apperrors.NotFound("Project not found")
		}
		return authz.Resource{
			Type:           authz.ResourceProject,
			OwnerID:        p.OwnerID,
			OrganizationID: p.OrganizationID,
		}, nil
	}
}

func TestGuard_MemberDeniedDeleteOnForeignProject(t *testing.T) {
	guard, f := setupGuard(t)

	// u2 is MEMBER and does not own the project: DENY.
	_, err := guard.AuthorizeResource(f.member.ID, "acme", authz.ActionDelete, f.projectLoader(f.project.ID))
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.CodeUnauthorized, appErr.Code)

	// u1 is ADMIN (and owner): ALLOW.
	result, err := guard.AuthorizeResource(f.admin.ID, "acme", authz.ActionDelete, f.projectLoader(f.project.ID))
	require.NoError(t, err)
	require.Equal(t, f.org.ID, result.Organization.ID)
	require.Equal(t, authz.RoleAdmin, result.Subject.Role)
}

func TestGuard_ExistenceCheckedBeforePermission(t *testing.T) {
	guard, f := setupGuard(t)

	// u2 could never delete any project here, but a missing instance
	// must still surface as NotFound, not Unauthorized.
	_, err := guard.AuthorizeResource(f.member.ID, "acme", authz.ActionDelete, f.projectLoader("no-such-id"))
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGuard_TypeLevelCheck(t *testing.T) {
	guard, f := setupGuard(t)

	// Any member may create projects.
	_, err := guard.Authorize(f.member.ID, "acme", authz.ActionCreate, authz.ResourceProject)
	require.NoError(t, err)

	// But not invites.
	_, err = guard.Authorize(f.member.ID, "acme", authz.ActionCreate, authz.ResourceInvite)
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestGuard_OrganizationInstanceCheck(t *testing.T) {
	guard, f := setupGuard(t)

	// The owner (ADMIN) may transfer ownership.
	_, err := guard.AuthorizeOrganization(f.admin.ID, "acme", authz.ActionTransferOwnership)
	require.NoError(t, err)

	// A plain member may not.
	_, err = guard.AuthorizeOrganization(f.member.ID, "acme", authz.ActionTransferOwnership)
	require.Error(t, err)
}

func TestGuard_UnknownOrganization(t *testing.T) {
	guard, f := setupGuard(t)

	_, err := guard.Authorize(f.member.ID, "ghost", authz.ActionGet, authz.ResourceOrganization)
	require.Error(t, err)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
