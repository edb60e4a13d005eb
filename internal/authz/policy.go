package authz

import (
	"orgtracker/internal/models"
)

// Action identifies an operation a role may or may not invoke.
type Action string

const (
	ActionViewUsers       Action = "view-users"
	ActionViewDepartments Action = "view-departments"
	ActionCreateProject   Action = "create-project"
	ActionAssignTask      Action = "assign-task"
	ActionViewAllProjects Action = "view-all-projects"
	ActionViewOwnTasks    Action = "view-own-tasks"
	ActionCompleteOwnTask Action = "complete-own-task"
)

// grants is the full role/action table. Anything not present is denied.
var grants = map[models.Role]map[Action]bool{
	models.RoleAdministrator: {
		ActionViewUsers:       true,
		ActionViewDepartments: true,
		ActionCreateProject:   true,
		ActionAssignTask:      true,
		ActionViewAllProjects: true,
		ActionViewOwnTasks:    true,
	},
	models.RoleDirector: {
		ActionViewUsers:       true,
		ActionViewDepartments: true,
		ActionCreateProject:   true,
		ActionAssignTask:      true,
		ActionViewAllProjects: true,
		ActionViewOwnTasks:    true,
	},
	models.RoleOrganizer: {
		ActionCreateProject:   true,
		ActionViewAllProjects: true,
		ActionViewOwnTasks:    true,
	},
	models.RoleManager: {
		ActionAssignTask:      true,
		ActionViewAllProjects: true,
		ActionViewOwnTasks:    true,
	},
	models.RoleWorker: {
		ActionViewAllProjects: true,
		ActionViewOwnTasks:    true,
		ActionCompleteOwnTask: true,
	},
}

// Allowed reports whether role may perform action. Unknown roles and unknown
// actions are denied.
func Allowed(role models.Role, action Action) bool {
	return grants[role][action]
}

// CanCompleteTask reports whether the session user may mark task completed.
// The assignee of a task may always complete it, regardless of role; the
// role table grant applies on top of that.
func CanCompleteTask(role models.Role, userID uint64, task *models.Task) bool {
	if task != nil && task.AssigneeID != nil && *task.AssigneeID == userID {
		return true
	}
	return Allowed(role, ActionCompleteOwnTask)
}
