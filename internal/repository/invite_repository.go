package repository

import (
	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/models"
)

// GormInviteRepository is a GORM implementation of InviteRepository
type GormInviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new InviteRepository
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &GormInviteRepository{db: db}
}

// Create creates a new invite
func (r *GormInviteRepository) Create(invite *models.Invite) error {
	return r.db.Create(invite).Error
}

// FindByID finds an invite by ID
func (r *GormInviteRepository) FindByID(id string) (*models.Invite, error) {
	var invite models.Invite
	if err := r.db.Preload("Organization").First(&invite, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindByIDInOrganization finds an invite by ID scoped to an organization
func (r *GormInviteRepository) FindByIDInOrganization(organizationID, id string) (*models.Invite, error) {
	var invite models.Invite
	if err := r.db.Where("organization_id = ? AND id = ?", organizationID, id).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// FindPending finds a pending invite for an email in an organization
func (r *GormInviteRepository) FindPending(organizationID, email string) (*models.Invite, error) {
	var invite models.Invite
	if err := r.db.Where("organization_id = ? AND email = ?", organizationID, email).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListByOrganization lists an organization's pending invites
func (r *GormInviteRepository) ListByOrganization(organizationID string) ([]models.Invite, error) {
	var invites []models.Invite
	if err := r.db.Preload("Author").
		Where("organization_id = ?", organizationID).
		Order("created_at desc").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// ListByEmail lists pending invites addressed to an email
func (r *GormInviteRepository) ListByEmail(email string) ([]models.Invite, error) {
	var invites []models.Invite
	if err := r.db.Preload("Author").Preload("Organization").
		Where("email = ?", email).
		Order("created_at desc").
		Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// Accept creates the membership and deletes the invite in a transaction,
// so an invite can never be consumed twice.
func (r *GormInviteRepository) Accept(invite *models.Invite, member *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Invite{}, "id = ?", invite.ID).Error; err != nil {
			return err
		}

		return nil
	})
}

// Delete deletes an invite
func (r *GormInviteRepository) Delete(id string) error {
	return r.db.Delete(&models.Invite{}, "id = ?", id).Error
}
