package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	TimeZone     string    `gorm:"type:varchar(64)" json:"time_zone"`
	Username     string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	GroupID      uint64    `gorm:"not null" json:"group_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Group          Group          `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Availabilities []Availability `gorm:"foreignKey:UserID" json:"availabilities,omitempty"`

	// A user sits on either side of a pairing; the two slices cover the
	// two foreign-key roles into this table.
	PairingsAsSource []Pairing `gorm:"foreignKey:SourceID" json:"-"`
	PairingsAsTarget []Pairing `gorm:"foreignKey:TargetID" json:"-"`
}
