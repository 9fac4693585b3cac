package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Member{},
		&models.Project{},
		&models.Invite{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         email,
		Email:        email,
		PasswordHash: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestOrganization(t *testing.T, db *gorm.DB, slug string, owner *models.User) *models.Organization {
	t.Helper()

	org := &models.Organization{
		Name:    slug,
		Slug:    slug,
		OwnerID: owner.ID,
	}
	require.NoError(t, db.Create(org).Error)

	member := &models.Member{
		OrganizationID: org.ID,
		UserID:         owner.ID,
		Role:           authz.RoleAdmin,
	}
	require.NoError(t, db.Create(member).Error)

	return org
}

func addTestMember(t *testing.T, db *gorm.DB, org *models.Organization, user *models.User, role authz.Role) *models.Member {
	t.Helper()

	member := &models.Member{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           role,
	}
	require.NoError(t, db.Create(member).Error)
	return member
}
