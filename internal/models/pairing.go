package models

import "time"

// Pairing schedules two users against an assignment for a time window.
// SourceID and TargetID are two distinct foreign-key roles into users;
// "matches for a user" is derived from the union of both roles.
type Pairing struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Date         time.Time `json:"date"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	AssignmentID uint64    `gorm:"not null" json:"assignment_id"`
	SourceID     uint64    `gorm:"not null;index" json:"source_id"`
	TargetID     uint64    `gorm:"not null;index" json:"target_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Source     User       `gorm:"foreignKey:SourceID" json:"source,omitempty"`
	Target     User       `gorm:"foreignKey:TargetID" json:"target,omitempty"`
}

// Partner returns the user on the opposite side of the pairing from userID.
// The relations must be preloaded.
func (p Pairing) Partner(userID uint64) User {
	if p.SourceID == userID {
		return p.Target
	}
	return p.Source
}
