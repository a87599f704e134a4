package models

import "time"

// Availability is an open time window a user declares against an assignment.
type Availability struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Date         time.Time `json:"date"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	UserID       uint64    `gorm:"not null" json:"user_id"`
	AssignmentID uint64    `gorm:"not null" json:"assignment_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
}
