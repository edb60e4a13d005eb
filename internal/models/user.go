package models

import (
	"time"
)

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleDirector      Role = "director"
	RoleManager       Role = "manager"
	RoleWorker        Role = "worker"
	RoleOrganizer     Role = "organizer"
)

// Roles lists every valid role value.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleDirector, RoleManager, RoleWorker, RoleOrganizer}
}

// Valid reports whether r is one of the five fixed roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleDirector, RoleManager, RoleWorker, RoleOrganizer:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        *string   `gorm:"type:varchar(255)" json:"email"`
	Phone        *string   `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`

	// Relations
	DirectedDepartments []Department `gorm:"foreignKey:DirectorID" json:"-"`
	OrganizedProjects   []Project    `gorm:"foreignKey:OrganizerID" json:"-"`
	AssignedTasks       []Task       `gorm:"foreignKey:AssigneeID" json:"-"`
}
