package dto

// ── dashboard ──

// Activity feed entry types.
const (
	ActivityTypeTraining = "training"
	ActivityTypeMetric   = "metric"
)

// UpcomingSession dashboard upcoming entry
type UpcomingSession struct {
	SessionDate string `json:"session_date"`
	Title       string `json:"title"`
	FocusArea   string `json:"focus_area"`
}

// FocusTopic sessions per focus area
type FocusTopic struct {
	FocusArea string `json:"focus_area"`
	Count     int64  `json:"count"`
}

// Activity merged feed of recent sessions and metrics
type Activity struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

// DashboardResponse dashboard aggregate
type DashboardResponse struct {
	AttendanceRate        float64           `json:"attendance_rate"`
	CompletedSessions     int64             `json:"completed_sessions"`
	InProgressSessions    int64             `json:"in_progress_sessions"`
	PlannedSessions       int64             `json:"planned_sessions"`
	TotalLoadActual       float64           `json:"total_load_actual"`
	TotalLoadTarget       float64           `json:"total_load_target"`
	MissingDocumentations int64             `json:"missing_documentations"`
	UpcomingSessions      []UpcomingSession `json:"upcoming_sessions"`
	FocusTopics           []FocusTopic      `json:"focus_topics"`
	Activities            []Activity        `json:"activities"`
	CoachNote             *NoteResponse     `json:"coach_note,omitempty"`
}
