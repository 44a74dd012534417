package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

// 22:30 UTC on the 15th is 00:30 on the 16th in Berlin (CEST)
var nearMidnight = time.Date(2026, 10, 15, 22, 30, 0, 0, time.UTC)

func newDashboardService(store *memStore, dash *mockDashboardRepo) DashboardService {
	return NewDashboardService(newMockRepository(store, dash), fixedClock(nearMidnight), berlin, nopLogger)
}

func TestDashboard_TotalsAndPlanned(t *testing.T) {
	dash := &mockDashboardRepo{
		totals: repository.SessionTotalsRow{
			TotalSessions: 7, CompletedSessions: 3, InProgressSessions: 1,
			TotalLoadActual: 21.5, TotalLoadTarget: 40,
		},
		missing: 2,
	}
	got, err := newDashboardService(newMemStore(), dash).Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got.PlannedSessions != got.CompletedSessions+1 || got.PlannedSessions != 4 {
		t.Errorf("expected planned = total - completed = 4, got %d", got.PlannedSessions)
	}
	if got.InProgressSessions != 1 || got.TotalLoadActual != 21.5 || got.TotalLoadTarget != 40 {
		t.Errorf("unexpected totals: %+v", got)
	}
	if got.MissingDocumentations != 2 {
		t.Errorf("expected 2 missing documentations, got %d", got.MissingDocumentations)
	}
	if got.CoachNote != nil {
		t.Errorf("expected no coach note on empty store")
	}
	if got.UpcomingSessions == nil || got.FocusTopics == nil || got.Activities == nil {
		t.Errorf("list fields must be empty slices, not nil")
	}
}

func TestDashboard_WindowsFollowLocalToday(t *testing.T) {
	dash := &mockDashboardRepo{}
	if _, err := newDashboardService(newMemStore(), dash).Get(context.Background()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if dash.upcomingFrom != "2026-10-16" {
		t.Errorf("expected upcoming from local today, got %s", dash.upcomingFrom)
	}
	if dash.attendanceSince != "2026-09-16" {
		t.Errorf("expected attendance window from 2026-09-16, got %s", dash.attendanceSince)
	}
	if dash.focusSince != "2026-09-01" {
		t.Errorf("expected focus window from 2026-09-01, got %s", dash.focusSince)
	}
	if dash.docsSince != "2026-09-16" {
		t.Errorf("expected documentation window from 2026-09-16, got %s", dash.docsSince)
	}
}

func TestDashboard_AttendanceRate(t *testing.T) {
	tests := []struct {
		name           string
		present, total int64
		want           float64
	}{
		{"no rows", 0, 0, 0},
		{"all present", 4, 4, 1},
		{"two of three", 2, 3, 0.67},
		{"one of three", 1, 3, 0.33},
		{"none present", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dash := &mockDashboardRepo{counts: repository.AttendanceCountsRow{Present: tt.present, Total: tt.total}}
			got, err := newDashboardService(newMemStore(), dash).Get(context.Background())
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got.AttendanceRate != tt.want {
				t.Errorf("expected rate %v, got %v", tt.want, got.AttendanceRate)
			}
			if got.AttendanceRate < 0 || got.AttendanceRate > 1 {
				t.Errorf("rate out of range: %v", got.AttendanceRate)
			}
		})
	}
}

func TestDashboard_ActivityFeed(t *testing.T) {
	dash := &mockDashboardRepo{
		sessions: []model.Session{
			{ID: 6, Title: "S6", Status: model.SessionStatusPlanned, SessionDate: "2026-10-20"},
			{ID: 5, Title: "S5", Status: model.SessionStatusCompleted, SessionDate: "2026-10-12"},
			{ID: 4, Title: "S4", Status: model.SessionStatusCompleted, SessionDate: "2026-10-10"},
			{ID: 3, Title: "S3", Status: model.SessionStatusCompleted, SessionDate: "2026-10-08"},
			{ID: 2, Title: "S2", Status: model.SessionStatusCompleted, SessionDate: "2026-10-05"},
			{ID: 1, Title: "S1", Status: model.SessionStatusCompleted, SessionDate: "2026-10-01"},
		},
		metrics: []repository.MetricEventRow{
			{Athlete: "Lena Berg", MetricType: "100m Freistil", MetricDate: "2026-10-12", Value: 63.9, Unit: "s"},
			{Athlete: "Tim Adler", MetricType: "Ausdauer", MetricDate: "2026-10-11", Value: 60, Unit: ""},
		},
	}

	got, err := newDashboardService(newMemStore(), dash).Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	want := []dto.Activity{
		{Type: "training", Title: "S6", Status: model.SessionStatusPlanned, Date: "2026-10-20"},
		{Type: "training", Title: "S5", Status: model.SessionStatusCompleted, Date: "2026-10-12"},
		{Type: "metric", Title: "100m Freistil", Status: "Lena Berg 63.9 s", Date: "2026-10-12"},
		{Type: "metric", Title: "Ausdauer", Status: "Tim Adler 60", Date: "2026-10-11"},
		{Type: "training", Title: "S4", Status: model.SessionStatusCompleted, Date: "2026-10-10"},
		{Type: "training", Title: "S3", Status: model.SessionStatusCompleted, Date: "2026-10-08"},
	}
	if len(got.Activities) != len(want) {
		t.Fatalf("expected %d activities, got %d: %+v", len(want), len(got.Activities), got.Activities)
	}
	for i := range want {
		if got.Activities[i] != want[i] {
			t.Errorf("activity %d: expected %+v, got %+v", i, want[i], got.Activities[i])
		}
	}
}

func TestDashboard_CoachNoteIsLatest(t *testing.T) {
	store := newMemStore()
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	store.notes = []*model.CoachNote{
		{ID: 1, Body: "alt", UpdatedAt: base},
		{ID: 3, Body: "gleichzeitig, höhere id", UpdatedAt: base.Add(time.Hour)},
		{ID: 2, Body: "gleichzeitig", UpdatedAt: base.Add(time.Hour)},
	}

	got, err := newDashboardService(store, &mockDashboardRepo{}).Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CoachNote == nil || got.CoachNote.ID != 3 {
		t.Errorf("expected note 3 as coach note, got %+v", got.CoachNote)
	}
}

func TestDashboard_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := newDashboardService(newMemStore(), &mockDashboardRepo{err: boom}).Get(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestMetricSummary(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{63.9, "s", "Lena Berg 63.9 s"},
		{60, "s", "Lena Berg 60 s"},
		{1.25, "", "Lena Berg 1.25"},
	}
	for _, tt := range tests {
		if got := metricSummary("Lena Berg", tt.value, tt.unit); got != tt.want {
			t.Errorf("metricSummary(%v, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}
