package models

import "time"

// AdminGroupID is the reserved group created by the seed step. It is
// excluded from public self-registration.
const AdminGroupID uint64 = 1

type Group struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Users       []User       `gorm:"foreignKey:GroupID" json:"users,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:GroupID" json:"assignments,omitempty"`
}
