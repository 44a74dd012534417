package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

// NoteHandler coach note HTTP handler
type NoteHandler struct {
	noteSvc service.NoteService
	logger  *zap.Logger
}

// NewNoteHandler creates a NoteHandler
func NewNoteHandler(noteSvc service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc, logger: logger}
}

// SaveNote stores a new note; it answers 200, not 201.
// POST /notes
func (h *NoteHandler) SaveNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if !BindJSON(c, &req) {
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		WriteError(c, h.logger, codeNote, err)
		return
	}
	response.OK(c, note)
}

// GetLatestNote returns the current note
// GET /notes/latest
func (h *NoteHandler) GetLatestNote(c *gin.Context) {
	note, err := h.noteSvc.Latest(c.Request.Context())
	if err != nil {
		WriteError(c, h.logger, codeNote, err)
		return
	}
	response.OK(c, note)
}
