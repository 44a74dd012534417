package model

import "time"

// CoachNote free text note, append-only (coach_notes)
type CoachNote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Body      string    `gorm:"type:text;not null"       json:"body"`
	UpdatedAt time.Time `gorm:"not null"                 json:"updated_at"`
}

// TableName maps the table.
func (CoachNote) TableName() string { return "coach_notes" }
