package model

// Attendance states as stored. Present is the default when a batch entry omits it.
const (
	AttendanceStatusPresent = "anwesend"
	AttendanceStatusAbsent  = "abwesend"
	AttendanceStatusExcused = "entschuldigt"
)

// Attendance presence of one athlete at one session (attendance)
//
// (session_id, athlete_id) is unique; writes go through an upsert.
type Attendance struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"                                   json:"id"`
	SessionID int64   `gorm:"not null;uniqueIndex:idx_attendance_session_athlete"        json:"session_id"`
	AthleteID int64   `gorm:"not null;uniqueIndex:idx_attendance_session_athlete"        json:"athlete_id"`
	Status    string  `gorm:"type:varchar(30);not null;default:'anwesend'"               json:"status"`
	Note      *string `gorm:"type:text"                                                  json:"note"`
}

// TableName maps the table.
func (Attendance) TableName() string { return "attendance" }
