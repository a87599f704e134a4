package models

import "time"

type Assignment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Number    float64   `json:"number"`
	GroupID   uint64    `gorm:"not null" json:"group_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Group          Group          `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Availabilities []Availability `gorm:"foreignKey:AssignmentID" json:"availabilities,omitempty"`
	Pairings       []Pairing      `gorm:"foreignKey:AssignmentID" json:"pairings,omitempty"`
}
