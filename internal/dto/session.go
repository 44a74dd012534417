package dto

// ── sessions ──

// SessionListQuery list filters
type SessionListQuery struct {
	TeamID         *int64  `form:"team_id"         binding:"omitempty,gt=0"`
	Status         *string `form:"status"`
	WithAttendance bool    `form:"with_attendance"`
}

// CreateSessionRequest create session body. An empty status means "geplant".
type CreateSessionRequest struct {
	TeamID          int64    `json:"team_id"          binding:"required,gt=0"`
	Title           string   `json:"title"            binding:"required,max=160"`
	SessionDate     string   `json:"session_date"     binding:"required,isodate"`
	StartTime       string   `json:"start_time"       binding:"required,clocktime"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,gt=0"`
	Status          string   `json:"status"           binding:"omitempty,max=30"`
	FocusArea       string   `json:"focus_area"       binding:"required,max=80"`
	LoadTarget      *float64 `json:"load_target"      binding:"required,gte=0"`
	LoadActual      *float64 `json:"load_actual"      binding:"omitempty,gte=0"`
	Notes           *string  `json:"notes"`
}

// DuplicateSessionRequest optional overrides applied to the copy
type DuplicateSessionRequest struct {
	TeamID          *int64   `json:"team_id"          binding:"omitempty,gt=0"`
	Title           *string  `json:"title"            binding:"omitempty,min=1,max=160"`
	SessionDate     *string  `json:"session_date"     binding:"omitempty,isodate"`
	StartTime       *string  `json:"start_time"       binding:"omitempty,clocktime"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
	Status          *string  `json:"status"           binding:"omitempty,min=1,max=30"`
	FocusArea       *string  `json:"focus_area"       binding:"omitempty,min=1,max=80"`
	LoadTarget      *float64 `json:"load_target"      binding:"omitempty,gte=0"`
	LoadActual      *float64 `json:"load_actual"      binding:"omitempty,gte=0"`
	Notes           *string  `json:"notes"`
}

// UpdateSessionRequest allow-listed partial update, decoded from the raw patch map.
// A Set flag distinguishes "absent" from an explicit null.
type UpdateSessionRequest struct {
	Status        *string
	FocusArea     *string
	NotesSet      bool
	Notes         *string
	LoadActualSet bool
	LoadActual    *float64
}

// Empty reports whether no allow-listed field was present.
func (r *UpdateSessionRequest) Empty() bool {
	return r.Status == nil && r.FocusArea == nil && !r.NotesSet && !r.LoadActualSet
}

// AttendanceEntryRequest one element of the attendance batch. An empty status means "anwesend".
type AttendanceEntryRequest struct {
	AthleteID int64   `json:"athlete_id" binding:"required,gt=0"`
	Status    string  `json:"status"     binding:"omitempty,max=30"`
	Note      *string `json:"note"`
}

// SessionResponse session with team labels
type SessionResponse struct {
	ID              int64         `json:"id"`
	TeamID          int64         `json:"team_id"`
	Title           string        `json:"title"`
	SessionDate     string        `json:"session_date"`
	StartTime       string        `json:"start_time"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          string        `json:"status"`
	FocusArea       string        `json:"focus_area"`
	LoadTarget      float64       `json:"load_target"`
	LoadActual      *float64      `json:"load_actual"`
	Notes           *string       `json:"notes"`
	TeamName        string        `json:"team_name,omitempty"`
	TeamShortName   string        `json:"team_short_name,omitempty"`
	Attendance      []RosterEntry `json:"attendance,omitempty"`
}

// RosterEntry a team athlete and their attendance at one session; status and note
// are null when nothing was recorded.
type RosterEntry struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Status    *string `json:"status"`
	Note      *string `json:"note"`
}

// SessionDetailResponse session with the full team roster
type SessionDetailResponse struct {
	Session    SessionResponse `json:"session"`
	Attendance []RosterEntry   `json:"attendance"`
}

// CalendarQuery calendar feed filter
type CalendarQuery struct {
	TeamID *int64 `form:"team_id" binding:"omitempty,gt=0"`
}
