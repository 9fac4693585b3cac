package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sawai-h/saas-rbac-api/internal/models"
)

var (
	ErrCreateUser   = errors.New("failed to create user")
	ErrCreateMember = errors.New("failed to create membership")
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithMembership creates a user and an organization membership in a transaction
func (r *GormUserRepository) CreateWithMembership(user *models.User, member *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return errors.Join(ErrCreateUser, err)
		}

		member.UserID = user.ID
		if err := tx.Create(member).Error; err != nil {
			return errors.Join(ErrCreateMember, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
