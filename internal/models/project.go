package models

import (
	"time"
)

// Project status is an open string enumeration; these are the recognized values.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

type Project struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Budget      float64    `gorm:"not null;default:0;check:budget >= 0" json:"budget"`
	Status      string     `gorm:"type:varchar(50);not null;default:'active';index" json:"status"`
	OrganizerID *uint64    `gorm:"index" json:"organizer_id"`

	// Relations
	Organizer *User  `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Tasks     []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
