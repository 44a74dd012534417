package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"swimtrack/backend/internal/model"
	"swimtrack/backend/internal/repository"
)

// memStore backs the mock repositories so that writes through one are visible to
// reads through another.
type memStore struct {
	nextID     int64
	teams      map[int64]*model.Team
	athletes   map[int64]*model.Athlete
	sessions   map[int64]*model.Session
	attendance []*model.Attendance
	metrics    []*model.Metric
	reports    []repository.ReportRow
	notes      []*model.CoachNote

	sessionUpdates int
	upsertErr      error
}

func newMemStore() *memStore {
	return &memStore{
		teams:    make(map[int64]*model.Team),
		athletes: make(map[int64]*model.Athlete),
		sessions: make(map[int64]*model.Session),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// newMockRepository assembles a store-less bundle; Transaction runs inline.
func newMockRepository(store *memStore, dash *mockDashboardRepo) *repository.Repository {
	if dash == nil {
		dash = &mockDashboardRepo{}
	}
	return &repository.Repository{
		Team:       &mockTeamRepo{store},
		Athlete:    &mockAthleteRepo{store},
		Session:    &mockSessionRepo{store},
		Attendance: &mockAttendanceRepo{store},
		Metric:     &mockMetricRepo{store},
		Report:     &mockReportRepo{store},
		Note:       &mockNoteRepo{store},
		Dashboard:  dash,
	}
}

// ── seed helpers ──

func (s *memStore) addTeam(name string) *model.Team {
	t := &model.Team{ID: s.id(), Name: name, ShortName: name[:1], Level: "Leistung", Coach: "Mara"}
	s.teams[t.ID] = t
	return t
}

func (s *memStore) addAthlete(teamID int64, first, last string) *model.Athlete {
	a := &model.Athlete{ID: s.id(), TeamID: teamID, FirstName: first, LastName: last, BirthYear: 2010}
	s.athletes[a.ID] = a
	return a
}

func (s *memStore) addSession(teamID int64, title string, date model.Date, status string) *model.Session {
	sess := &model.Session{
		ID: s.id(), TeamID: teamID, Title: title, SessionDate: date, StartTime: "17:00",
		DurationMinutes: 60, Status: status, FocusArea: "Ausdauer", LoadTarget: 10,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// ── Mock TeamRepository ──

type mockTeamRepo struct{ s *memStore }

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team) error {
	team.ID = m.s.id()
	m.s.teams[team.ID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id int64) (*model.Team, error) {
	if t, ok := m.s.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) ListWithSummary(_ context.Context, today model.Date) ([]repository.TeamSummaryRow, error) {
	var rows []repository.TeamSummaryRow
	for _, t := range m.s.teams {
		row := repository.TeamSummaryRow{Team: *t}
		for _, a := range m.s.athletes {
			if a.TeamID == t.ID {
				row.AthleteCount++
			}
		}
		var next *model.Session
		for _, sess := range m.s.sessions {
			if sess.TeamID == t.ID && sess.SessionDate >= today && (next == nil || sess.SessionDate < next.SessionDate) {
				next = sess
			}
		}
		if next != nil {
			label := next.SessionDate.String() + " • " + next.Title
			row.UpcomingSession = &label
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// ── Mock AthleteRepository ──

type mockAthleteRepo struct{ s *memStore }

func (m *mockAthleteRepo) Create(_ context.Context, athlete *model.Athlete) error {
	athlete.ID = m.s.id()
	m.s.athletes[athlete.ID] = athlete
	return nil
}

func (m *mockAthleteRepo) GetByID(_ context.Context, id int64) (*model.Athlete, error) {
	if a, ok := m.s.athletes[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAthleteRepo) row(a *model.Athlete) repository.AthleteRow {
	row := repository.AthleteRow{Athlete: *a}
	if t, ok := m.s.teams[a.TeamID]; ok {
		row.TeamName = t.Name
	}
	var latest *model.Metric
	for _, mt := range m.s.metrics {
		if mt.AthleteID == a.ID && (latest == nil || mt.MetricDate > latest.MetricDate ||
			(mt.MetricDate == latest.MetricDate && mt.ID > latest.ID)) {
			latest = mt
		}
	}
	if latest != nil {
		d, v, u := latest.MetricDate, latest.Value, latest.Unit
		row.LastMetric, row.LastMetricValue, row.LastMetricUnit = &d, &v, &u
	}
	return row
}

func (m *mockAthleteRepo) GetRow(_ context.Context, id int64) (*repository.AthleteRow, error) {
	a, ok := m.s.athletes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := m.row(a)
	return &row, nil
}

func (m *mockAthleteRepo) List(_ context.Context) ([]repository.AthleteRow, error) {
	var rows []repository.AthleteRow
	for _, a := range m.s.athletes {
		rows = append(rows, m.row(a))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LastName < rows[j].LastName })
	return rows, nil
}

func (m *mockAthleteRepo) ListByTeams(_ context.Context, teamIDs []int64) ([]model.Athlete, error) {
	want := make(map[int64]bool, len(teamIDs))
	for _, id := range teamIDs {
		want[id] = true
	}
	var result []model.Athlete
	for _, a := range m.s.athletes {
		if want[a.TeamID] {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LastName < result[j].LastName })
	return result, nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct{ s *memStore }

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	session.ID = m.s.id()
	m.s.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id int64) (*model.Session, error) {
	if sess, ok := m.s.sessions[id]; ok {
		cp := *sess
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) row(sess *model.Session) repository.SessionRow {
	row := repository.SessionRow{Session: *sess}
	if t, ok := m.s.teams[sess.TeamID]; ok {
		row.TeamName, row.TeamShortName = t.Name, t.ShortName
	}
	return row
}

func (m *mockSessionRepo) GetRow(_ context.Context, id int64) (*repository.SessionRow, error) {
	sess, ok := m.s.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	row := m.row(sess)
	return &row, nil
}

func (m *mockSessionRepo) List(_ context.Context, filter repository.SessionFilter) ([]repository.SessionRow, error) {
	var rows []repository.SessionRow
	for _, sess := range m.s.sessions {
		if filter.TeamID != nil && sess.TeamID != *filter.TeamID {
			continue
		}
		if filter.Status != nil && sess.Status != *filter.Status {
			continue
		}
		rows = append(rows, m.row(sess))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SessionDate != rows[j].SessionDate {
			return rows[i].SessionDate > rows[j].SessionDate
		}
		return rows[i].StartTime > rows[j].StartTime
	})
	return rows, nil
}

func (m *mockSessionRepo) ListRecentByTeam(_ context.Context, teamID int64, limit int) ([]model.Session, error) {
	var result []model.Session
	for _, sess := range m.s.sessions {
		if sess.TeamID == teamID {
			result = append(result, *sess)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SessionDate > result[j].SessionDate })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockSessionRepo) CountByStatus(_ context.Context, teamID int64) ([]repository.StatusCountRow, error) {
	counts := map[string]int64{}
	for _, sess := range m.s.sessions {
		if sess.TeamID == teamID {
			counts[sess.Status]++
		}
	}
	var rows []repository.StatusCountRow
	for status, n := range counts {
		rows = append(rows, repository.StatusCountRow{Status: status, SessionCount: n})
	}
	return rows, nil
}

func (m *mockSessionRepo) Update(_ context.Context, id int64, updates map[string]interface{}) error {
	sess, ok := m.s.sessions[id]
	if !ok {
		return nil
	}
	m.s.sessionUpdates++
	for k, v := range updates {
		switch k {
		case "status":
			sess.Status = v.(string)
		case "focus_area":
			sess.FocusArea = v.(string)
		case "notes":
			sess.Notes = v.(*string)
		case "load_actual":
			sess.LoadActual = v.(*float64)
		default:
			return errors.New("unexpected column " + k)
		}
	}
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct{ s *memStore }

func (m *mockAttendanceRepo) Upsert(_ context.Context, row *model.Attendance) error {
	if m.s.upsertErr != nil {
		return m.s.upsertErr
	}
	for _, existing := range m.s.attendance {
		if existing.SessionID == row.SessionID && existing.AthleteID == row.AthleteID {
			existing.Status, existing.Note = row.Status, row.Note
			row.ID = existing.ID
			return nil
		}
	}
	row.ID = m.s.id()
	cp := *row
	m.s.attendance = append(m.s.attendance, &cp)
	return nil
}

func (m *mockAttendanceRepo) ListRoster(_ context.Context, sessionID, teamID int64) ([]repository.RosterRow, error) {
	var rows []repository.RosterRow
	for _, a := range m.s.athletes {
		if a.TeamID != teamID {
			continue
		}
		row := repository.RosterRow{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
		for _, att := range m.s.attendance {
			if att.SessionID == sessionID && att.AthleteID == a.ID {
				status := att.Status
				row.Status, row.Note = &status, att.Note
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].LastName < rows[j].LastName })
	return rows, nil
}

func (m *mockAttendanceRepo) ListBySessions(_ context.Context, sessionIDs []int64) ([]model.Attendance, error) {
	want := make(map[int64]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		want[id] = true
	}
	var result []model.Attendance
	for _, att := range m.s.attendance {
		if want[att.SessionID] {
			result = append(result, *att)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListHistoryByAthlete(_ context.Context, athleteID int64, limit int) ([]repository.AttendanceHistoryRow, error) {
	var rows []repository.AttendanceHistoryRow
	for _, att := range m.s.attendance {
		if att.AthleteID != athleteID {
			continue
		}
		sess := m.s.sessions[att.SessionID]
		rows = append(rows, repository.AttendanceHistoryRow{
			SessionID: sess.ID, Title: sess.Title, SessionDate: sess.SessionDate, Status: att.Status,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SessionDate > rows[j].SessionDate })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ── Mock MetricRepository ──

type mockMetricRepo struct{ s *memStore }

func (m *mockMetricRepo) Create(_ context.Context, metric *model.Metric) error {
	metric.ID = m.s.id()
	m.s.metrics = append(m.s.metrics, metric)
	return nil
}

func (m *mockMetricRepo) row(mt *model.Metric) repository.MetricRow {
	row := repository.MetricRow{Metric: *mt}
	if a, ok := m.s.athletes[mt.AthleteID]; ok {
		row.FirstName, row.LastName = a.FirstName, a.LastName
		if t, ok := m.s.teams[a.TeamID]; ok {
			row.TeamName = t.Name
		}
	}
	return row
}

func (m *mockMetricRepo) GetRow(_ context.Context, id int64) (*repository.MetricRow, error) {
	for _, mt := range m.s.metrics {
		if mt.ID == id {
			row := m.row(mt)
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMetricRepo) List(_ context.Context, filter repository.MetricFilter) ([]repository.MetricRow, error) {
	var rows []repository.MetricRow
	for _, mt := range m.s.metrics {
		if filter.MetricType != nil && mt.MetricType != *filter.MetricType {
			continue
		}
		if filter.TeamID != nil {
			a, ok := m.s.athletes[mt.AthleteID]
			if !ok || a.TeamID != *filter.TeamID {
				continue
			}
		}
		rows = append(rows, m.row(mt))
	}
	return rows, nil
}

func (m *mockMetricRepo) ListRecentByAthlete(_ context.Context, athleteID int64, limit int) ([]model.Metric, error) {
	var result []model.Metric
	for _, mt := range m.s.metrics {
		if mt.AthleteID == athleteID {
			result = append(result, *mt)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MetricDate > result[j].MetricDate })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct{ s *memStore }

func (m *mockReportRepo) List(_ context.Context) ([]repository.ReportRow, error) {
	return m.s.reports, nil
}

// ── Mock NoteRepository ──

type mockNoteRepo struct{ s *memStore }

func (m *mockNoteRepo) Create(_ context.Context, note *model.CoachNote) error {
	note.ID = m.s.id()
	m.s.notes = append(m.s.notes, note)
	return nil
}

func (m *mockNoteRepo) GetLatest(_ context.Context) (*model.CoachNote, error) {
	var latest *model.CoachNote
	for _, n := range m.s.notes {
		if latest == nil || n.UpdatedAt.After(latest.UpdatedAt) ||
			(n.UpdatedAt.Equal(latest.UpdatedAt) && n.ID > latest.ID) {
			latest = n
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

// ── Mock DashboardRepository ──

// mockDashboardRepo returns canned query results and records the date bounds.
type mockDashboardRepo struct {
	totals   repository.SessionTotalsRow
	counts   repository.AttendanceCountsRow
	upcoming []repository.UpcomingSessionRow
	topics   []repository.FocusTopicRow
	sessions []model.Session
	metrics  []repository.MetricEventRow
	missing  int64
	err      error

	attendanceSince model.Date
	upcomingFrom    model.Date
	focusSince      model.Date
	docsSince       model.Date
}

func (m *mockDashboardRepo) SessionTotals(_ context.Context) (*repository.SessionTotalsRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	t := m.totals
	return &t, nil
}

func (m *mockDashboardRepo) AttendanceCounts(_ context.Context, since model.Date) (*repository.AttendanceCountsRow, error) {
	m.attendanceSince = since
	c := m.counts
	return &c, nil
}

func (m *mockDashboardRepo) UpcomingSessions(_ context.Context, from model.Date, limit int) ([]repository.UpcomingSessionRow, error) {
	m.upcomingFrom = from
	if len(m.upcoming) > limit {
		return m.upcoming[:limit], nil
	}
	return m.upcoming, nil
}

func (m *mockDashboardRepo) FocusTopics(_ context.Context, since model.Date, limit int) ([]repository.FocusTopicRow, error) {
	m.focusSince = since
	if len(m.topics) > limit {
		return m.topics[:limit], nil
	}
	return m.topics, nil
}

func (m *mockDashboardRepo) RecentSessions(_ context.Context, limit int) ([]model.Session, error) {
	if len(m.sessions) > limit {
		return m.sessions[:limit], nil
	}
	return m.sessions, nil
}

func (m *mockDashboardRepo) RecentMetrics(_ context.Context, limit int) ([]repository.MetricEventRow, error) {
	if len(m.metrics) > limit {
		return m.metrics[:limit], nil
	}
	return m.metrics, nil
}

func (m *mockDashboardRepo) MissingDocumentations(_ context.Context, since model.Date) (int64, error) {
	m.docsSince = since
	return m.missing, nil
}
