package repository

import (
	"errors"

	"gorm.io/gorm"

	"orgtracker/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a task. Priority must be a known level; project and
// assignee references, when present, must resolve.
func (r *GormTaskRepository) Create(input CreateTaskInput) (uint64, error) {
	if !input.Priority.Valid() {
		return 0, ErrInvalidEnum
	}
	if input.ProjectID != nil {
		var count int64
		if err := r.db.Model(&models.Project{}).Where("id = ?", *input.ProjectID).Count(&count).Error; err != nil {
			return 0, storageErr(err)
		}
		if count == 0 {
			return 0, ErrForeignKeyViolation
		}
	}
	if input.AssigneeID != nil {
		exists, err := userExists(r.db, *input.AssigneeID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, ErrForeignKeyViolation
		}
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		Priority:    input.Priority,
		Status:      models.TaskStatusPending,
		Deadline:    input.Deadline,
	}
	if err := r.db.Create(&task).Error; err != nil {
		return 0, storageErr(err)
	}
	return task.ID, nil
}

// FindByID finds a task by ID.
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr(err)
	}
	return &task, nil
}

// ListForUser returns the tasks assigned to a user, each with its project
// name. Ordering is by semantic priority rank descending (critical first),
// then by deadline ascending with deadline-less tasks last.
func (r *GormTaskRepository) ListForUser(userID uint64) ([]TaskWithProject, error) {
	var rows []TaskWithProject
	err := r.db.Model(&models.Task{}).
		Select("tasks.id, tasks.title, tasks.description, tasks.project_id, tasks.assignee_id, tasks.priority, tasks.status, tasks.deadline, tasks.created_at, projects.name AS project_name").
		Joins("LEFT JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.assignee_id = ?", userID).
		Order("CASE tasks.priority WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC").
		Order("CASE WHEN tasks.deadline IS NULL THEN 1 ELSE 0 END, tasks.deadline ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return rows, nil
}

// UpdateStatus moves a task to a new status. The transition table is
// enforced here, not in the storage schema: completed is terminal.
func (r *GormTaskRepository) UpdateStatus(id uint64, status models.TaskStatus) error {
	if !status.Valid() {
		return ErrInvalidEnum
	}

	task, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if !task.Status.CanTransition(status) {
		return ErrInvalidTransition
	}

	if err := r.db.Model(task).Update("status", status).Error; err != nil {
		return storageErr(err)
	}
	return nil
}
