package service

import (
	"errors"

	pkgerrors "swimtrack/backend/pkg/errors"
)

// ── business errors ──

var (
	ErrTeamNotFound          = pkgerrors.NotFound("Team nicht gefunden")
	ErrAthleteNotFound       = pkgerrors.NotFound("Athlet:in nicht gefunden")
	ErrSessionNotFound       = pkgerrors.NotFound("Trainingseinheit nicht gefunden")
	ErrSourceSessionNotFound = pkgerrors.NotFound("Ausgangseinheit nicht gefunden")
	ErrNoteNotFound          = pkgerrors.NotFound("Keine Notiz vorhanden")

	ErrEmptyNote          = pkgerrors.NewValidationError("body.body", "Notiz darf nicht leer sein")
	ErrExportGenerateFail = errors.New("Export konnte nicht erstellt werden")
)
