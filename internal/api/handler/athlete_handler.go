package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

// AthleteHandler athlete module HTTP handler
type AthleteHandler struct {
	athleteSvc service.AthleteService
	logger     *zap.Logger
}

// NewAthleteHandler creates an AthleteHandler
func NewAthleteHandler(athleteSvc service.AthleteService, logger *zap.Logger) *AthleteHandler {
	return &AthleteHandler{athleteSvc: athleteSvc, logger: logger}
}

// ListAthletes lists athletes with their latest metric
// GET /athletes
func (h *AthleteHandler) ListAthletes(c *gin.Context) {
	athletes, err := h.athleteSvc.List(c.Request.Context())
	if err != nil {
		WriteError(c, h.logger, codeAthlete, err)
		return
	}
	response.OK(c, athletes)
}

// GetAthlete returns athlete detail
// GET /athletes/:id
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	athlete, err := h.athleteSvc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, h.logger, codeAthlete, err)
		return
	}
	response.OK(c, athlete)
}

// CreateAthlete creates an athlete
// POST /athletes
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var req dto.CreateAthleteRequest
	if !BindJSON(c, &req) {
		return
	}

	athlete, err := h.athleteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		WriteError(c, h.logger, codeAthlete, err)
		return
	}
	response.Created(c, athlete)
}
