package repository

import (
	"gorm.io/gorm"

	"orgtracker/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository.
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a project. Dates and budget are validated before any write.
func (r *GormProjectRepository) Create(input CreateProjectInput) (uint64, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return 0, ErrInvalidRange
	}
	if input.Budget < 0 {
		return 0, ErrInvalidBudget
	}
	if input.OrganizerID != nil {
		exists, err := userExists(r.db, *input.OrganizerID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, ErrForeignKeyViolation
		}
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		Status:      models.ProjectStatusActive,
		OrganizerID: input.OrganizerID,
	}
	if err := r.db.Create(&project).Error; err != nil {
		return 0, storageErr(err)
	}
	return project.ID, nil
}

// List returns every project enriched with the organizer's full name,
// ordered by (status, end date) ascending. The organizer join is a left
// join; a missing organizer yields a nil name, not an error.
func (r *GormProjectRepository) List() ([]ProjectWithOrganizer, error) {
	var rows []ProjectWithOrganizer
	err := r.db.Model(&models.Project{}).
		Select("projects.id, projects.name, projects.description, projects.start_date, projects.end_date, projects.budget, projects.status, projects.organizer_id, users.full_name AS organizer_name").
		Joins("LEFT JOIN users ON users.id = projects.organizer_id").
		Order("projects.status ASC, projects.end_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return rows, nil
}

// UpdateStatus overwrites a project's status. Project status is an open
// enumeration, so any non-empty value is accepted.
func (r *GormProjectRepository) UpdateStatus(id uint64, status string) error {
	if status == "" {
		return ErrInvalidEnum
	}
	res := r.db.Model(&models.Project{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
