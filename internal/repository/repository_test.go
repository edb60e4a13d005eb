package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orgtracker/internal/auth"
	"orgtracker/internal/models"
)

type testEnv struct {
	db          *gorm.DB
	users       UserRepository
	departments DepartmentRepository
	projects    ProjectRepository
	tasks       TaskRepository
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	return testEnv{
		db:          db,
		users:       NewUserRepository(db, hasher),
		departments: NewDepartmentRepository(db),
		projects:    NewProjectRepository(db),
		tasks:       NewTaskRepository(db),
	}
}

func (env testEnv) createUser(t *testing.T, username string, role models.Role, fullName string) uint64 {
	t.Helper()
	id, err := env.users.Create(CreateUserInput{
		Username: username,
		Password: "secret123",
		Role:     role,
		FullName: fullName,
	})
	require.NoError(t, err)
	return id
}
