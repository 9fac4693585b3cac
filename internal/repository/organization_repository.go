package repository

import (
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// CreateWithOwner creates an organization and its owner's ADMIN membership in a transaction
func (r *GormOrganizationRepository) CreateWithOwner(org *models.Organization, owner *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		owner.OrganizationID = org.ID
		owner.Role = authz.RoleAdmin
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		return nil
	})
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(id string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindBySlug finds an organization by slug
func (r *GormOrganizationRepository) FindBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.Where("slug = ?", slug).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindByDomain finds an organization by its auto-attach domain
func (r *GormOrganizationRepository) FindByDomain(domain string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.Where("domain = ?", domain).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *GormOrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization and all related data in a transaction
func (r *GormOrganizationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", id).Delete(&models.Invite{}).Error; err != nil {
			return err
		}

		if err := tx.Where("organization_id = ?", id).Delete(&models.Member{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Organization{}, "id = ?", id).Error; err != nil {
			return err
		}

		return nil
	})
}

// AddMember adds a member to an organization
func (r *GormOrganizationRepository) AddMember(member *models.Member) error {
	return r.db.Create(member).Error
}

// FindMember finds the membership of a user in an organization
func (r *GormOrganizationRepository) FindMember(organizationID, userID string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindMemberByID finds a member by its own id, scoped to an organization
func (r *GormOrganizationRepository) FindMemberByID(organizationID, memberID string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("organization_id = ? AND id = ?", organizationID, memberID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMemberRole changes a member's role
func (r *GormOrganizationRepository) UpdateMemberRole(organizationID, memberID string, role authz.Role) error {
	return r.db.Model(&models.Member{}).
		Where("organization_id = ? AND id = ?", organizationID, memberID).
		Update("role", role).Error
}

// RemoveMember removes a member from an organization
func (r *GormOrganizationRepository) RemoveMember(organizationID, memberID string) error {
	return r.db.Where("organization_id = ? AND id = ?", organizationID, memberID).
		Delete(&models.Member{}).Error
}

// ListMembers lists all members of an organization
func (r *GormOrganizationRepository) ListMembers(organizationID string) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Preload("User").
		Where("organization_id = ?", organizationID).
		Order("role asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListMembershipsByUserID lists all organizations a user is a member of
func (r *GormOrganizationRepository) ListMembershipsByUserID(userID string) ([]models.Member, error) {
	var memberships []models.Member
	if err := r.db.Preload("Organization").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// CountBillableMembers counts members whose role is not BILLING
func (r *GormOrganizationRepository) CountBillableMembers(organizationID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).
		Where("organization_id = ? AND role <> ?", organizationID, authz.RoleBilling).
		Count(&count).Error
	return count, err
}

// TransferOwnership performs the three writes of an ownership transfer as
// one transaction so no partially-transferred state is ever observable.
func (r *GormOrganizationRepository) TransferOwnership(organizationID, fromUserID, toUserID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Member{}).
			Where("organization_id = ? AND user_id = ?", organizationID, toUserID).
			Update("role", authz.RoleAdmin).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Member{}).
			Where("organization_id = ? AND user_id = ?", organizationID, fromUserID).
			Update("role", authz.RoleMember).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Organization{}).
			Where("id = ?", organizationID).
			Update("owner_id", toUserID).Error; err != nil {
			return err
		}

		return nil
	})
}
