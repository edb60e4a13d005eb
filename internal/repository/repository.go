package repository

import (
	"time"

	"orgtracker/internal/auth"
	"orgtracker/internal/models"
)

// CreateUserInput holds the fields for provisioning a user account.
type CreateUserInput struct {
	Username string
	Password string
	Role     models.Role
	FullName string
	Email    *string
	Phone    *string
}

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	// Create provisions a new account, hashing the password before storage.
	Create(input CreateUserInput) (uint64, error)

	// Authenticate verifies credentials and returns a session for the user.
	Authenticate(username, password string) (*auth.Session, error)

	// FindByID finds a user by ID.
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username (case-sensitive).
	FindByUsername(username string) (*models.User, error)

	// ListAll returns every user ordered by (role, full name) ascending.
	ListAll() ([]models.User, error)

	// SetActive soft-deactivates or reactivates an account.
	SetActive(id uint64, active bool) error

	// SetRole changes an account's role.
	SetRole(id uint64, role models.Role) error
}

// DepartmentRepository defines the interface for department data access.
type DepartmentRepository interface {
	// Create creates a department, optionally referencing a director user.
	Create(name string, directorID *uint64) (uint64, error)

	// ListAll returns every department.
	ListAll() ([]models.Department, error)
}

// CreateProjectInput holds the fields for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      float64
	OrganizerID *uint64
}

// ProjectWithOrganizer is a project read model enriched with the organizer's
// full name. OrganizerName is nil when no organizer resolves.
type ProjectWithOrganizer struct {
	ID            uint64     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Budget        float64    `json:"budget"`
	Status        string     `json:"status"`
	OrganizerID   *uint64    `json:"organizer_id"`
	OrganizerName *string    `json:"organizer_name"`
}

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	// Create creates a project after validating dates, budget and organizer.
	Create(input CreateProjectInput) (uint64, error)

	// List returns every project with its organizer name, ordered by
	// (status, end date) ascending.
	List() ([]ProjectWithOrganizer, error)

	// UpdateStatus overwrites a project's status.
	UpdateStatus(id uint64, status string) error
}

// CreateTaskInput holds the fields for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   *uint64
	AssigneeID  *uint64
	Priority    models.Priority
	Deadline    *time.Time
}

// TaskWithProject is a task read model enriched with the project's name.
// ProjectName is nil when the task has no resolvable project.
type TaskWithProject struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ProjectID   *uint64           `json:"project_id"`
	AssigneeID  *uint64           `json:"assignee_id"`
	Priority    models.Priority   `json:"priority"`
	Status      models.TaskStatus `json:"status"`
	Deadline    *time.Time        `json:"deadline"`
	CreatedAt   time.Time         `json:"created_at"`
	ProjectName *string           `json:"project_name"`
}

// TaskRepository defines the interface for task data access.
type TaskRepository interface {
	// Create creates a task after validating priority and references.
	Create(input CreateTaskInput) (uint64, error)

	// FindByID finds a task by ID.
	FindByID(id uint64) (*models.Task, error)

	// ListForUser returns the tasks assigned to a user with their project
	// names, ordered by priority rank descending then deadline ascending,
	// deadline-less tasks last.
	ListForUser(userID uint64) ([]TaskWithProject, error)

	// UpdateStatus moves a task to a new status, enforcing the transition table.
	UpdateStatus(id uint64, status models.TaskStatus) error
}
