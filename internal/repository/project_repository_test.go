package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgtracker/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreateProjectInvalidRange(t *testing.T) {
	env := setupTestEnv(t)
	organizerID := env.createUser(t, "organizer1", models.RoleOrganizer, "Maria Kozlova")

	_, err := env.projects.Create(CreateProjectInput{
		Name:        "Backwards",
		StartDate:   date(2024, time.June, 30),
		EndDate:     date(2024, time.January, 1),
		Budget:      1000,
		OrganizerID: &organizerID,
	})
	require.ErrorIs(t, err, ErrInvalidRange)

	var count int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateProjectNegativeBudget(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.projects.Create(CreateProjectInput{
		Name:   "Cheap",
		Budget: -1,
	})
	require.ErrorIs(t, err, ErrInvalidBudget)
}

func TestCreateProjectUnknownOrganizer(t *testing.T) {
	env := setupTestEnv(t)

	bogus := uint64(999)
	_, err := env.projects.Create(CreateProjectInput{
		Name:        "Orphan",
		Budget:      0,
		OrganizerID: &bogus,
	})
	require.ErrorIs(t, err, ErrForeignKeyViolation)
}

func TestListProjectsOrderingAndJoin(t *testing.T) {
	env := setupTestEnv(t)
	organizerID := env.createUser(t, "organizer1", models.RoleOrganizer, "Maria Kozlova")

	create := func(name string, end *time.Time, organizer *uint64) uint64 {
		id, err := env.projects.Create(CreateProjectInput{
			Name:        name,
			StartDate:   date(2024, time.January, 1),
			EndDate:     end,
			Budget:      100,
			OrganizerID: organizer,
		})
		require.NoError(t, err)
		return id
	}

	doneID := create("Done early", date(2024, time.March, 1), &organizerID)
	create("Spring", date(2024, time.May, 1), &organizerID)
	create("Winter", date(2024, time.February, 1), &organizerID)
	create("Unowned", date(2024, time.April, 1), nil)

	require.NoError(t, env.projects.UpdateStatus(doneID, models.ProjectStatusCompleted))

	rows, err := env.projects.List()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Active projects first (status ascending), each block by end date ascending.
	require.Equal(t, "Winter", rows[0].Name)
	require.Equal(t, "Unowned", rows[1].Name)
	require.Equal(t, "Spring", rows[2].Name)
	require.Equal(t, "Done early", rows[3].Name)

	require.NotNil(t, rows[0].OrganizerName)
	require.Equal(t, "Maria Kozlova", *rows[0].OrganizerName)
	require.Nil(t, rows[1].OrganizerName)
	require.Equal(t, models.ProjectStatusCompleted, rows[3].Status)
}

func TestUpdateProjectStatus(t *testing.T) {
	env := setupTestEnv(t)

	id, err := env.projects.Create(CreateProjectInput{Name: "P", Budget: 0})
	require.NoError(t, err)

	// Open enumeration: unrecognized but non-empty values are accepted.
	require.NoError(t, env.projects.UpdateStatus(id, "on-hold"))
	require.ErrorIs(t, env.projects.UpdateStatus(id, ""), ErrInvalidEnum)
	require.ErrorIs(t, env.projects.UpdateStatus(999, models.ProjectStatusCancelled), ErrNotFound)
}
