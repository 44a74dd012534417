package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"swimtrack/backend/internal/model"
)

// newTestDB opens a private in-memory SQLite store with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func ptr[T any](v T) *T { return &v }

func seedTeam(t *testing.T, db *gorm.DB, name string) *model.Team {
	t.Helper()
	team := &model.Team{Name: name, ShortName: name[:1], Level: "Leistung", Coach: "Mara", TrainingDays: "Mo, Mi", FocusTheme: "Technik"}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}

func seedAthlete(t *testing.T, db *gorm.DB, teamID int64, first, last string) *model.Athlete {
	t.Helper()
	athlete := &model.Athlete{FirstName: first, LastName: last, BirthYear: 2010, PrimaryStroke: "Kraul", BestEvent: "100m Freistil", TeamID: teamID}
	if err := db.Create(athlete).Error; err != nil {
		t.Fatalf("seed athlete: %v", err)
	}
	return athlete
}

func seedSession(t *testing.T, db *gorm.DB, teamID int64, title string, date model.Date, status string) *model.Session {
	t.Helper()
	session := &model.Session{
		TeamID: teamID, Title: title, SessionDate: date, StartTime: "17:00",
		DurationMinutes: 90, Status: status, FocusArea: "Ausdauer", LoadTarget: 10,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return session
}

func seedMetric(t *testing.T, db *gorm.DB, athleteID int64, date model.Date, value float64) *model.Metric {
	t.Helper()
	metric := &model.Metric{AthleteID: athleteID, MetricDate: date, MetricType: "100m Freistil", Value: value, Unit: "s"}
	if err := db.Create(metric).Error; err != nil {
		t.Fatalf("seed metric: %v", err)
	}
	return metric
}

var ctx = context.Background()
