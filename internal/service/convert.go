package service

import (
	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

// ── model / row → dto ──

func toTeamInfo(t *model.Team) dto.TeamInfo {
	return dto.TeamInfo{
		ID:           t.ID,
		Name:         t.Name,
		ShortName:    t.ShortName,
		Level:        t.Level,
		Coach:        t.Coach,
		TrainingDays: t.TrainingDays,
		FocusTheme:   t.FocusTheme,
	}
}

func toSessionResponse(s *model.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID:              s.ID,
		TeamID:          s.TeamID,
		Title:           s.Title,
		SessionDate:     s.SessionDate.String(),
		StartTime:       s.StartTime,
		DurationMinutes: s.DurationMinutes,
		Status:          s.Status,
		FocusArea:       s.FocusArea,
		LoadTarget:      s.LoadTarget,
		LoadActual:      s.LoadActual,
		Notes:           s.Notes,
	}
}

func toSessionRowResponse(row *repository.SessionRow) dto.SessionResponse {
	resp := toSessionResponse(&row.Session)
	resp.TeamName = row.TeamName
	resp.TeamShortName = row.TeamShortName
	return resp
}

func toAthleteResponse(row *repository.AthleteRow) dto.AthleteResponse {
	resp := dto.AthleteResponse{
		ID:               row.ID,
		FirstName:        row.FirstName,
		LastName:         row.LastName,
		BirthYear:        row.BirthYear,
		PrimaryStroke:    row.PrimaryStroke,
		BestEvent:        row.BestEvent,
		PersonalBest:     row.PersonalBest,
		PersonalBestUnit: row.PersonalBestUnit,
		FocusNote:        row.FocusNote,
		TeamID:           row.TeamID,
		TeamName:         row.TeamName,
		LastMetricValue:  row.LastMetricValue,
		LastMetricUnit:   row.LastMetricUnit,
	}
	if row.LastMetric != nil && *row.LastMetric != "" {
		d := row.LastMetric.String()
		resp.LastMetric = &d
	}
	return resp
}

func toMetricResponse(row *repository.MetricRow) dto.MetricResponse {
	return dto.MetricResponse{
		ID:         row.ID,
		AthleteID:  row.AthleteID,
		MetricDate: row.MetricDate.String(),
		MetricType: row.MetricType,
		Value:      row.Value,
		Unit:       row.Unit,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		TeamName:   row.TeamName,
	}
}

func toRosterEntries(rows []repository.RosterRow) []dto.RosterEntry {
	entries := make([]dto.RosterEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.RosterEntry{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Status:    r.Status,
			Note:      r.Note,
		})
	}
	return entries
}

func toNoteResponse(n *model.CoachNote) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:        n.ID,
		Body:      n.Body,
		UpdatedAt: n.UpdatedAt,
	}
}
