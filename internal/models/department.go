package models

type Department struct {
	ID         uint64  `gorm:"primarykey" json:"id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	DirectorID *uint64 `gorm:"index" json:"director_id"`

	// Relations
	Director *User `gorm:"foreignKey:DirectorID" json:"director,omitempty"`
}
