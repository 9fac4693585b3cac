package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

func setupInviteService(t *testing.T) (*InviteService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewInviteService(
		repository.NewInviteRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrganizationRepository(db),
	)
	return svc, db
}

func TestInviteService_CreateInvite(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)

	invite, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleMember,
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", invite.Email)

	// A duplicate pending invite is rejected.
	_, err = svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleMember,
	})
	requireErrorCode(t, err, apperrors.CodeConflict)
}

func TestInviteService_CreateInviteForExistingMember(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)

	_, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "owner@acme.com",
		Role:           authz.RoleMember,
	})
	requireErrorCode(t, err, apperrors.CodeConflict)
}

func TestInviteService_AcceptInvite(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	invitee := createTestUser(t, db, "new@example.com")

	invite, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleBilling,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AcceptInvite(invite.ID, invitee.ID))

	// Acceptance creates the membership with the invited role.
	var member models.Member
	require.NoError(t, db.Where("organization_id = ? AND user_id = ?", org.ID, invitee.ID).First(&member).Error)
	require.Equal(t, authz.RoleBilling, member.Role)

	// Acceptance consumed the invite: a second accept fails.
	err = svc.AcceptInvite(invite.ID, invitee.ID)
	requireErrorCode(t, err, apperrors.CodeNotFound)
}

func TestInviteService_AcceptAfterAlreadyJoining(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	invitee := createTestUser(t, db, "new@example.com")

	invite, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleMember,
	})
	require.NoError(t, err)

	// The invitee joins the organization through another path before
	// accepting. Accepting now must conflict, not fail the transaction.
	addTestMember(t, db, org, invitee, authz.RoleBilling)

	err = svc.AcceptInvite(invite.ID, invitee.ID)
	requireErrorCode(t, err, apperrors.CodeConflict)

	// The existing membership is untouched and the invite not consumed.
	var member models.Member
	require.NoError(t, db.Where("organization_id = ? AND user_id = ?", org.ID, invitee.ID).First(&member).Error)
	require.Equal(t, authz.RoleBilling, member.Role)

	var invites int64
	require.NoError(t, db.Model(&models.Invite{}).Where("id = ?", invite.ID).Count(&invites).Error)
	require.EqualValues(t, 1, invites)
}

func TestInviteService_RejectInviteIsSingleUse(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	invitee := createTestUser(t, db, "new@example.com")

	invite, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleMember,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RejectInvite(invite.ID, invitee.ID))

	// No membership was created.
	var count int64
	require.NoError(t, db.Model(&models.Member{}).
		Where("organization_id = ? AND user_id = ?", org.ID, invitee.ID).
		Count(&count).Error)
	require.Zero(t, count)

	err = svc.RejectInvite(invite.ID, invitee.ID)
	requireErrorCode(t, err, apperrors.CodeNotFound)
}

func TestInviteService_EmailMustMatch(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	stranger := createTestUser(t, db, "stranger@example.com")

	invite, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleMember,
	})
	require.NoError(t, err)

	err = svc.AcceptInvite(invite.ID, stranger.ID)
	requireErrorCode(t, err, apperrors.CodeUnauthorized)

	// The mismatch did not consume the invite.
	_, err = repository.NewInviteRepository(db).FindByID(invite.ID)
	require.NoError(t, err)
}

func TestInviteService_RevokeInviteScopedToOrganization(t *testing.T) {
	svc, db := setupInviteService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	otherOwner := createTestUser(t, db, "owner@globex.com")
	otherOrg := createTestOrganization(t, db, "globex", otherOwner)

	invite, err := svc.CreateInvite(CreateInviteInput{
		OrganizationID: org.ID,
		AuthorID:       owner.ID,
		Email:          "new@example.com",
		Role:           authz.RoleMember,
	})
	require.NoError(t, err)

	// Another organization cannot revoke it.
	err = svc.RevokeInvite(otherOrg.ID, invite.ID)
	requireErrorCode(t, err, apperrors.CodeNotFound)

	require.NoError(t, svc.RevokeInvite(org.ID, invite.ID))
}

func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr), "expected apperrors.Error, got %v", err)
	require.Equal(t, code, appErr.Code)
}
