package model

// Session lifecycle states as stored.
const (
	SessionStatusPlanned   = "geplant"
	SessionStatusStarted   = "gestartet"
	SessionStatusCompleted = "abgeschlossen"
)

// Session scheduled training of one team (sessions)
type Session struct {
	ID              int64    `gorm:"primaryKey;autoIncrement"                   json:"id"`
	TeamID          int64    `gorm:"not null;index"                             json:"team_id"`
	Title           string   `gorm:"type:varchar(160);not null"                 json:"title"`
	SessionDate     Date     `gorm:"type:date;not null;index"                   json:"session_date"`
	StartTime       string   `gorm:"type:varchar(5);not null"                   json:"start_time"` // HH:MM
	DurationMinutes int      `gorm:"not null"                                   json:"duration_minutes"`
	Status          string   `gorm:"type:varchar(30);not null;default:'geplant'" json:"status"`
	FocusArea       string   `gorm:"type:varchar(80);not null"                  json:"focus_area"`
	LoadTarget      float64  `gorm:"not null;default:0"                         json:"load_target"`
	LoadActual      *float64 `json:"load_actual"`
	Notes           *string  `gorm:"type:text"                                  json:"notes"`
}

// TableName maps the table.
func (Session) TableName() string { return "sessions" }
