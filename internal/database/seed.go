package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"orgtracker/internal/auth"
	"orgtracker/internal/models"
	"orgtracker/internal/repository"
)

// DemoAccount is one of the fixed first-run demonstration accounts.
type DemoAccount struct {
	Username string
	Password string
	Role     models.Role
	FullName string
	Email    string
}

// DemoAccounts returns the demonstration account per role that Seed provisions.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{"admin", "admin123", models.RoleAdministrator, "System Administrator", "admin@company.com"},
		{"director", "dir123", models.RoleDirector, "Ivan Ivanov", "director@company.com"},
		{"manager1", "mgr123", models.RoleManager, "Pyotr Petrov", "manager1@company.com"},
		{"worker1", "wrk123", models.RoleWorker, "Alexey Sidorov", "worker1@company.com"},
		{"organizer1", "org123", models.RoleOrganizer, "Maria Kozlova", "organizer1@company.com"},
	}
}

// Seed provisions the first-run demo fixture: one account per role, two
// departments and a sample project. It is idempotent; accounts and rows
// that already exist are left alone. Not a production data-loading path.
func Seed(db *gorm.DB, hasher auth.PasswordHasher) error {
	users := repository.NewUserRepository(db, hasher)

	ids := make(map[string]uint64)
	for _, acc := range DemoAccounts() {
		email := acc.Email
		id, err := users.Create(repository.CreateUserInput{
			Username: acc.Username,
			Password: acc.Password,
			Role:     acc.Role,
			FullName: acc.FullName,
			Email:    &email,
		})
		if errors.Is(err, repository.ErrDuplicateUsername) {
			existing, err := users.FindByUsername(acc.Username)
			if err != nil {
				return fmt.Errorf("failed to look up seeded user %s: %w", acc.Username, err)
			}
			ids[acc.Username] = existing.ID
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", acc.Username, err)
		}
		ids[acc.Username] = id
	}

	departments := repository.NewDepartmentRepository(db)
	directorID := ids["director"]
	managerID := ids["manager1"]
	if err := seedDepartment(db, departments, "Engineering", &directorID); err != nil {
		return err
	}
	if err := seedDepartment(db, departments, "Marketing", &managerID); err != nil {
		return err
	}

	return seedProject(db, ids["organizer1"])
}

func seedDepartment(db *gorm.DB, repo repository.DepartmentRepository, name string, directorID *uint64) error {
	var count int64
	if err := db.Model(&models.Department{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seeded department %s: %w", name, err)
	}
	if count > 0 {
		return nil
	}
	if _, err := repo.Create(name, directorID); err != nil {
		return fmt.Errorf("failed to seed department %s: %w", name, err)
	}
	return nil
}

func seedProject(db *gorm.DB, organizerID uint64) error {
	const name = "New tracking system"

	var count int64
	if err := db.Model(&models.Project{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seeded project: %w", err)
	}
	if count > 0 {
		return nil
	}

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	projects := repository.NewProjectRepository(db)
	_, err := projects.Create(repository.CreateProjectInput{
		Name:        name,
		Description: "Build the project tracking system",
		StartDate:   &start,
		EndDate:     &end,
		Budget:      500000,
		OrganizerID: &organizerID,
	})
	if err != nil {
		return fmt.Errorf("failed to seed project: %w", err)
	}
	return nil
}
