package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orgtracker/internal/auth"
	"orgtracker/internal/models"
)

// TaskRepositoryTestSuite defines the test suite for GormTaskRepository
type TaskRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	users    UserRepository
	projects ProjectRepository
	tasks    TaskRepository
}

// SetupTest runs before each test
func (suite *TaskRepositoryTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Project{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	suite.users = NewUserRepository(suite.db, hasher)
	suite.projects = NewProjectRepository(suite.db)
	suite.tasks = NewTaskRepository(suite.db)
}

// TearDownTest runs after each test
func (suite *TaskRepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskRepositoryTestSuite) createWorker(username string) uint64 {
	id, err := suite.users.Create(CreateUserInput{
		Username: username,
		Password: "wrk123",
		Role:     models.RoleWorker,
		FullName: "Worker " + username,
	})
	suite.Require().NoError(err)
	return id
}

func (suite *TaskRepositoryTestSuite) createProject(name string) uint64 {
	id, err := suite.projects.Create(CreateProjectInput{Name: name, Budget: 0})
	suite.Require().NoError(err)
	return id
}

func (suite *TaskRepositoryTestSuite) createTask(title string, assignee uint64, priority models.Priority, deadline *time.Time) uint64 {
	id, err := suite.tasks.Create(CreateTaskInput{
		Title:      title,
		AssigneeID: &assignee,
		Priority:   priority,
		Deadline:   deadline,
	})
	suite.Require().NoError(err)
	return id
}

func (suite *TaskRepositoryTestSuite) TestCreateRejectsUnknownPriority() {
	workerID := suite.createWorker("worker1")

	_, err := suite.tasks.Create(CreateTaskInput{
		Title:      "Hurry up",
		AssigneeID: &workerID,
		Priority:   models.Priority("urgent"),
	})
	suite.Require().ErrorIs(err, ErrInvalidEnum)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	suite.Require().Zero(count)
}

func (suite *TaskRepositoryTestSuite) TestCreateRejectsUnknownReferences() {
	bogus := uint64(999)

	_, err := suite.tasks.Create(CreateTaskInput{
		Title:     "Orphan project",
		ProjectID: &bogus,
		Priority:  models.PriorityLow,
	})
	suite.Require().ErrorIs(err, ErrForeignKeyViolation)

	_, err = suite.tasks.Create(CreateTaskInput{
		Title:      "Orphan assignee",
		AssigneeID: &bogus,
		Priority:   models.PriorityLow,
	})
	suite.Require().ErrorIs(err, ErrForeignKeyViolation)
}

func (suite *TaskRepositoryTestSuite) TestListForUserOrdering() {
	workerID := suite.createWorker("worker1")
	otherID := suite.createWorker("worker2")

	may := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	suite.createTask("low", workerID, models.PriorityLow, &may)
	suite.createTask("critical no deadline", workerID, models.PriorityCritical, nil)
	suite.createTask("critical june", workerID, models.PriorityCritical, &june)
	suite.createTask("critical may", workerID, models.PriorityCritical, &may)
	suite.createTask("medium", workerID, models.PriorityMedium, nil)
	suite.createTask("high", workerID, models.PriorityHigh, &june)
	suite.createTask("someone else's", otherID, models.PriorityCritical, &may)

	rows, err := suite.tasks.ListForUser(workerID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 6)

	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Title
	}
	suite.Require().Equal([]string{
		"critical may",
		"critical june",
		"critical no deadline",
		"high",
		"medium",
		"low",
	}, titles)
}

func (suite *TaskRepositoryTestSuite) TestListForUserJoinsProjectName() {
	workerID := suite.createWorker("worker1")
	projectID := suite.createProject("Tracking system")

	_, err := suite.tasks.Create(CreateTaskInput{
		Title:      "With project",
		ProjectID:  &projectID,
		AssigneeID: &workerID,
		Priority:   models.PriorityHigh,
	})
	suite.Require().NoError(err)
	suite.createTask("Without project", workerID, models.PriorityLow, nil)

	rows, err := suite.tasks.ListForUser(workerID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.Require().NotNil(rows[0].ProjectName)
	suite.Require().Equal("Tracking system", *rows[0].ProjectName)
	suite.Require().Nil(rows[1].ProjectName)
}

func (suite *TaskRepositoryTestSuite) TestUpdateStatusTransitions() {
	workerID := suite.createWorker("worker1")
	id := suite.createTask("Chore", workerID, models.PriorityMedium, nil)

	suite.Require().NoError(suite.tasks.UpdateStatus(id, models.TaskStatusInProgress))
	suite.Require().NoError(suite.tasks.UpdateStatus(id, models.TaskStatusCompleted))

	// completed is terminal
	err := suite.tasks.UpdateStatus(id, models.TaskStatusPending)
	suite.Require().ErrorIs(err, ErrInvalidTransition)

	suite.Require().ErrorIs(suite.tasks.UpdateStatus(id, models.TaskStatus("archived")), ErrInvalidEnum)
	suite.Require().ErrorIs(suite.tasks.UpdateStatus(999, models.TaskStatusCompleted), ErrNotFound)
}

func (suite *TaskRepositoryTestSuite) TestCompleteDirectlyFromPending() {
	workerID := suite.createWorker("worker1")
	projectID := suite.createProject("Tracking system")

	id, err := suite.tasks.Create(CreateTaskInput{
		Title:      "Write spec",
		ProjectID:  &projectID,
		AssigneeID: &workerID,
		Priority:   models.PriorityHigh,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.tasks.UpdateStatus(id, models.TaskStatusCompleted))

	rows, err := suite.tasks.ListForUser(workerID)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Require().Equal("Write spec", rows[0].Title)
	suite.Require().Equal(models.TaskStatusCompleted, rows[0].Status)
	suite.Require().NotNil(rows[0].ProjectName)
	suite.Require().Equal("Tracking system", *rows[0].ProjectName)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
