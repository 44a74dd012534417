package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"swimtrack/backend/internal/repository"
)

const (
	reportSheet  = "Berichte"
	sessionSheet = "Einheiten"
)

// ExportService spreadsheet exports
type ExportService interface {
	// ExportReports renders all reports and sessions into an .xlsx workbook and
	// returns it with a suggested file name.
	ExportReports(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	clock  Clock
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, clock Clock, loc *time.Location, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, clock: clock, loc: loc, logger: logger}
}

func (s *exportService) ExportReports(ctx context.Context) (*bytes.Buffer, string, error) {
	reports, err := s.repo.Report.List(ctx)
	if err != nil {
		s.logger.Error("export: list reports failed", zap.Error(err))
		return nil, "", err
	}
	sessions, err := s.repo.Session.List(ctx, repository.SessionFilter{})
	if err != nil {
		s.logger.Error("export: list sessions failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, "", s.fail(err)
	}
	if _, err := f.NewSheet(sessionSheet); err != nil {
		return nil, "", s.fail(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F6F8B"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", s.fail(err)
	}

	// ── reports ──
	reportRows := [][]interface{}{{"Team", "Titel", "Zeitraum von", "Zeitraum bis", "Status", "Geliefert am"}}
	for _, r := range reports {
		delivered := "-"
		if r.DeliveredOn != nil && *r.DeliveredOn != "" {
			delivered = r.DeliveredOn.String()
		}
		reportRows = append(reportRows, []interface{}{
			r.TeamName, r.Title, r.PeriodStart.String(), r.PeriodEnd.String(), r.Status, delivered,
		})
	}
	if err := writeSheet(f, reportSheet, reportRows, headerStyle, []float64{18, 36, 14, 14, 14, 14}); err != nil {
		return nil, "", s.fail(err)
	}

	// ── sessions ──
	sessionRows := [][]interface{}{{"Datum", "Beginn", "Team", "Titel", "Schwerpunkt", "Status", "Dauer (min)", "Last Soll", "Last Ist"}}
	for _, r := range sessions {
		var actual interface{} = "-"
		if r.LoadActual != nil {
			actual = *r.LoadActual
		}
		sessionRows = append(sessionRows, []interface{}{
			r.SessionDate.String(), r.StartTime, r.TeamName, r.Title, r.FocusArea, r.Status,
			r.DurationMinutes, r.LoadTarget, actual,
		})
	}
	if err := writeSheet(f, sessionSheet, sessionRows, headerStyle, []float64{12, 8, 18, 32, 18, 14, 12, 10, 10}); err != nil {
		return nil, "", s.fail(err)
	}

	f.SetActiveSheet(0)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", s.fail(err)
	}

	filename := fmt.Sprintf("swimtrack_berichte_%s.xlsx", today(s.clock, s.loc))
	return buf, filename, nil
}

func (s *exportService) fail(err error) error {
	s.logger.Error("export: workbook generation failed", zap.Error(err))
	return ErrExportGenerateFail
}

// writeSheet writes rows from A1, styles the header row and sets column widths.
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int, widths []float64) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}
