package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"swimtrack/backend/internal/api/middleware"
	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/service"
	pkgerrors "swimtrack/backend/pkg/errors"
	"swimtrack/backend/pkg/response"
	"swimtrack/backend/pkg/validation"
)

// SessionHandler training session HTTP handler
type SessionHandler struct {
	sessionSvc service.SessionService
	logger     *zap.Logger
}

// NewSessionHandler creates a SessionHandler
func NewSessionHandler(sessionSvc service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc, logger: logger}
}

// ListSessions lists sessions
// GET /sessions?team_id=&status=&with_attendance=
func (h *SessionHandler) ListSessions(c *gin.Context) {
	var query dto.SessionListQuery
	if !BindQuery(c, &query) {
		return
	}

	sessions, err := h.sessionSvc.List(c.Request.Context(), &query)
	if err != nil {
		WriteError(c, h.logger, codeSession, err)
		return
	}
	response.OK(c, sessions)
}

// GetSession returns session detail with roster
// GET /sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	session, err := h.sessionSvc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, h.logger, codeSession, err)
		return
	}
	response.OK(c, session)
}

// CreateSession creates a session
// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !BindJSON(c, &req) {
		return
	}

	session, err := h.sessionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		WriteError(c, h.logger, codeSession, err)
		return
	}
	response.Created(c, session)
}

// UpdateSession partially updates the allow-listed fields; other keys are ignored.
// PATCH /sessions/:id
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if !BindJSON(c, &raw) {
		return
	}
	req, err := dto.ParseUpdateSessionRequest(raw)
	if err != nil {
		WriteError(c, h.logger, codeSession, err)
		return
	}

	session, err := h.sessionSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		WriteError(c, h.logger, codeSession, err)
		return
	}
	response.OK(c, session)
}

// DuplicateSession copies a session; the body with overrides is optional.
// POST /sessions/:id/duplicate
func (h *SessionHandler) DuplicateSession(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	var req dto.DuplicateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		if middleware.IsBodyTooLarge(err) {
			middleware.AbortBodyTooLarge(c)
			return
		}
		invalid(c, validation.ToValidationError(err, "body"))
		return
	}

	session, err := h.sessionSvc.Duplicate(c.Request.Context(), id, &req)
	if err != nil {
		WriteError(c, h.logger, codeSession, err)
		return
	}
	response.Created(c, session)
}

// RecordAttendance upserts a non-empty batch of attendance entries
// POST /sessions/:id/attendance
func (h *SessionHandler) RecordAttendance(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	entries, ok := h.bindAttendance(c)
	if !ok {
		return
	}

	session, err := h.sessionSvc.RecordAttendance(c.Request.Context(), id, entries)
	if err != nil {
		WriteError(c, h.logger, codeAttendance, err)
		return
	}
	response.OK(c, session)
}

// bindAttendance decodes the entry list and validates each element on its own so
// issues keep their index, e.g. "body[2].athlete_id".
func (h *SessionHandler) bindAttendance(c *gin.Context) ([]dto.AttendanceEntryRequest, bool) {
	data, err := c.GetRawData()
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			middleware.AbortBodyTooLarge(c)
			return nil, false
		}
		invalid(c, pkgerrors.NewValidationError("body", err.Error()))
		return nil, false
	}

	var entries []dto.AttendanceEntryRequest
	if err := json.Unmarshal(data, &entries); err != nil {
		invalid(c, pkgerrors.NewValidationError("body", "must be a list of attendance entries"))
		return nil, false
	}
	if len(entries) == 0 {
		invalid(c, pkgerrors.NewValidationError("body", "Keine Einträge übermittelt"))
		return nil, false
	}

	var issues []pkgerrors.Issue
	for i := range entries {
		if err := binding.Validator.ValidateStruct(&entries[i]); err != nil {
			issues = append(issues, validation.ToValidationError(err, fmt.Sprintf("body[%d]", i)).Issues...)
		}
	}
	if len(issues) > 0 {
		invalid(c, &pkgerrors.ValidationError{Issues: issues})
		return nil, false
	}
	return entries, true
}
