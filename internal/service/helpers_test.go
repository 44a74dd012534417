package service

import (
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

var nopLogger = zap.NewNop()

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

var berlin = mustLoadLocation("Europe/Berlin")

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T { return &v }

func reportRow(id int64, team, title string, start, end model.Date, delivered *model.Date) repository.ReportRow {
	return repository.ReportRow{
		Report: model.Report{
			ID: id, TeamID: 1, Title: title, PeriodStart: start, PeriodEnd: end,
			Status: "offen", DeliveredOn: delivered,
		},
		TeamName: team,
	}
}
