package repository

import (
	"gorm.io/gorm"

	"orgtracker/internal/models"
)

// GormDepartmentRepository is a GORM implementation of DepartmentRepository.
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create creates a department. A director reference, when present, must
// resolve to an existing user.
func (r *GormDepartmentRepository) Create(name string, directorID *uint64) (uint64, error) {
	if directorID != nil {
		exists, err := userExists(r.db, *directorID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, ErrForeignKeyViolation
		}
	}

	dept := models.Department{
		Name:       name,
		DirectorID: directorID,
	}
	if err := r.db.Create(&dept).Error; err != nil {
		return 0, storageErr(err)
	}
	return dept.ID, nil
}

// ListAll returns every department.
func (r *GormDepartmentRepository) ListAll() ([]models.Department, error) {
	var depts []models.Department
	if err := r.db.Order("id ASC").Find(&depts).Error; err != nil {
		return nil, storageErr(err)
	}
	return depts, nil
}
