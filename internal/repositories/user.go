package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	FindRoleByName(name string) (*models.Role, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create implements UserRepository.
func (u *userRepository) Create(user *models.User) error {
	if err := u.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByEmail implements UserRepository.
func (u *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := u.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindByID implements UserRepository.
func (u *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := u.db.Preload("Role").Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindRoleByName implements UserRepository.
func (u *userRepository) FindRoleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := u.db.Where("name = ?", name).First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("role not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return &role, nil
}
