package repository

import "swimtrack/backend/internal/model"

// ── query projections ──
//
// Rows returned by joined or aggregated queries. Embedded models are flattened by
// gorm, so "s.*" style selects scan straight into them.

// TeamSummaryRow team with derived athlete count and next session label.
type TeamSummaryRow struct {
	model.Team
	AthleteCount    int64
	UpcomingSession *string
}

// StatusCountRow sessions per status.
type StatusCountRow struct {
	Status       string
	SessionCount int64
}

// AthleteRow athlete with team name and latest metric.
type AthleteRow struct {
	model.Athlete
	TeamName        string
	LastMetric      *model.Date
	LastMetricValue *float64
	LastMetricUnit  *string
}

// SessionRow session with team labels.
type SessionRow struct {
	model.Session
	TeamName      string
	TeamShortName string
}

// RosterRow one team athlete and their attendance at a given session; status and
// note are nil when no attendance row exists.
type RosterRow struct {
	ID        int64
	FirstName string
	LastName  string
	Status    *string
	Note      *string
}

// AttendanceHistoryRow an athlete's attendance joined with the session.
type AttendanceHistoryRow struct {
	SessionID   int64
	Title       string
	SessionDate model.Date
	Status      string
}

// MetricRow metric with athlete and team names.
type MetricRow struct {
	model.Metric
	FirstName string
	LastName  string
	TeamName  string
}

// ReportRow report with team name.
type ReportRow struct {
	model.Report
	TeamName string
}

// SessionTotalsRow dashboard session counters.
type SessionTotalsRow struct {
	TotalSessions      int64
	CompletedSessions  int64
	InProgressSessions int64
	TotalLoadActual    float64
	TotalLoadTarget    float64
}

// AttendanceCountsRow attendance rows in a window and how many were present.
type AttendanceCountsRow struct {
	Total   int64
	Present int64
}

// UpcomingSessionRow dashboard upcoming entry.
type UpcomingSessionRow struct {
	SessionDate model.Date
	Title       string
	FocusArea   string
}

// FocusTopicRow sessions per focus area.
type FocusTopicRow struct {
	FocusArea  string
	TopicCount int64
}

// MetricEventRow metric with the athlete's full name for the activity feed.
type MetricEventRow struct {
	Athlete    string
	MetricType string
	MetricDate model.Date
	Value      float64
	Unit       string
}
