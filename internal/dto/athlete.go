package dto

// ── athletes ──

// CreateAthleteRequest create athlete body
type CreateAthleteRequest struct {
	FirstName        string   `json:"first_name"         binding:"required,max=80"`
	LastName         string   `json:"last_name"          binding:"required,max=80"`
	BirthYear        int      `json:"birth_year"         binding:"required,min=1900,max=2100"`
	PrimaryStroke    string   `json:"primary_stroke"     binding:"required,max=40"`
	BestEvent        string   `json:"best_event"         binding:"required,max=60"`
	PersonalBest     *float64 `json:"personal_best"      binding:"omitempty,gt=0"`
	PersonalBestUnit *string  `json:"personal_best_unit" binding:"omitempty,max=20"`
	FocusNote        *string  `json:"focus_note"`
	TeamID           int64    `json:"team_id"            binding:"required,gt=0"`
}

// AthleteResponse athlete with team name and latest metric
type AthleteResponse struct {
	ID               int64    `json:"id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	BirthYear        int      `json:"birth_year"`
	PrimaryStroke    string   `json:"primary_stroke"`
	BestEvent        string   `json:"best_event"`
	PersonalBest     *float64 `json:"personal_best"`
	PersonalBestUnit *string  `json:"personal_best_unit"`
	FocusNote        *string  `json:"focus_note"`
	TeamID           int64    `json:"team_id"`
	TeamName         string   `json:"team_name"`
	LastMetric       *string  `json:"last_metric"`
	LastMetricValue  *float64 `json:"last_metric_value"`
	LastMetricUnit   *string  `json:"last_metric_unit"`
}

// AthleteMetric one entry of the athlete's metric history
type AthleteMetric struct {
	MetricDate string  `json:"metric_date"`
	MetricType string  `json:"metric_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
}

// AttendanceHistoryEntry one session the athlete has an attendance row for
type AttendanceHistoryEntry struct {
	SessionID   int64  `json:"session_id"`
	Title       string `json:"title"`
	SessionDate string `json:"session_date"`
	Status      string `json:"status"`
}

// AthleteDetailResponse athlete with recent metrics and attendance
type AthleteDetailResponse struct {
	Athlete           AthleteResponse          `json:"athlete"`
	Metrics           []AthleteMetric          `json:"metrics"`
	AttendanceHistory []AttendanceHistoryEntry `json:"attendance_history"`
}
