package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"orgtracker/internal/auth"
	"orgtracker/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository.
type GormUserRepository struct {
	db     *gorm.DB
	hasher auth.PasswordHasher
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB, hasher auth.PasswordHasher) UserRepository {
	return &GormUserRepository{db: db, hasher: hasher}
}

// Create provisions a new account. The password is hashed before anything is
// written; a taken username leaves the table untouched.
func (r *GormUserRepository) Create(input CreateUserInput) (uint64, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return 0, fmt.Errorf("username is required")
	}
	if !input.Role.Valid() {
		return 0, ErrInvalidEnum
	}

	if _, err := r.FindByUsername(username); err == nil {
		return 0, ErrDuplicateUsername
	} else if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	hash, err := r.hasher.Hash(input.Password)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         input.Role,
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		IsActive:     true,
	}
	if err := r.db.Create(&user).Error; err != nil {
		// The unique index backstops the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateUsername
		}
		return 0, storageErr(err)
	}

	return user.ID, nil
}

// Authenticate verifies credentials for an active account. All failure modes
// collapse to ErrAuthFailure so usernames cannot be enumerated.
func (r *GormUserRepository) Authenticate(username, password string) (*auth.Session, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthFailure
		}
		return nil, storageErr(err)
	}

	if !user.IsActive {
		return nil, ErrAuthFailure
	}
	if !r.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrAuthFailure
	}

	return auth.NewSession(&user), nil
}

// FindByID finds a user by ID.
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

// FindByUsername finds a user by username.
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

// ListAll returns every user ordered by (role, full name) ascending.
func (r *GormUserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("role ASC, full_name ASC").Find(&users).Error; err != nil {
		return nil, storageErr(err)
	}
	return users, nil
}

// SetActive soft-deactivates or reactivates an account.
func (r *GormUserRepository) SetActive(id uint64, active bool) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRole changes an account's role.
func (r *GormUserRepository) SetRole(id uint64, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidEnum
	}
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// userExists reports whether a user row with the given ID exists.
func userExists(db *gorm.DB, id uint64) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, storageErr(err)
	}
	return count > 0, nil
}
