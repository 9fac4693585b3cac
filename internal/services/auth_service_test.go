package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/apperrors"
	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewOrganizationRepository(db),
	)
	return svc, db
}

func TestAuthService_Signup(t *testing.T) {
	svc, db := setupAuthService(t)

	user, err := svc.Signup(SignupInput{
		Name:     "John Doe",
		Email:    "John@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "john@example.com", user.Email)
	require.NotEqual(t, "password123", user.PasswordHash)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc, db := setupAuthService(t)
	createTestUser(t, db, "john@example.com")

	_, err := svc.Signup(SignupInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})
	requireErrorCode(t, err, apperrors.CodeConflict)
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Signup(SignupInput{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "short",
	})
	requireErrorCode(t, err, apperrors.CodeInvalidInput)
}

func TestAuthService_Signup_AutoAttachByDomain(t *testing.T) {
	svc, db := setupAuthService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	domain := "acme.com"
	org.Domain = &domain
	org.ShouldAttachUsersByDomain = true
	require.NoError(t, db.Save(org).Error)

	user, err := svc.Signup(SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@acme.com",
		Password: "password123",
	})
	require.NoError(t, err)

	var member models.Member
	require.NoError(t, db.
		Where("organization_id = ? AND user_id = ?", org.ID, user.ID).
		First(&member).Error)
	require.Equal(t, authz.RoleMember, member.Role)
}

func TestAuthService_Signup_NoAutoAttachWhenDisabled(t *testing.T) {
	svc, db := setupAuthService(t)

	owner := createTestUser(t, db, "owner@acme.com")
	org := createTestOrganization(t, db, "acme", owner)
	domain := "acme.com"
	org.Domain = &domain
	require.NoError(t, db.Save(org).Error)

	user, err := svc.Signup(SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@acme.com",
		Password: "password123",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestAuthService_Login(t *testing.T) {
	svc, db := setupAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: string(hash),
	}).Error)

	user, err := svc.Login(LoginInput{Email: "John@Example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "john@example.com", user.Email)

	_, err = svc.Login(LoginInput{Email: "john@example.com", Password: "wrong"})
	requireErrorCode(t, err, apperrors.CodeUnauthenticated)

	_, err = svc.Login(LoginInput{Email: "ghost@example.com", Password: "password123"})
	requireErrorCode(t, err, apperrors.CodeUnauthenticated)
}

func TestAuthService_GetUser_NotFound(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.GetUser("missing")
	requireErrorCode(t, err, apperrors.CodeNotFound)
}
