package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swimtrack/backend/internal/dto"
	"swimtrack/backend/internal/service"
	"swimtrack/backend/pkg/response"
)

// TeamHandler team module HTTP handler
type TeamHandler struct {
	teamSvc service.TeamService
	logger  *zap.Logger
}

// NewTeamHandler creates a TeamHandler
func NewTeamHandler(teamSvc service.TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc, logger: logger}
}

// ListTeams lists teams with athlete count and next session
// GET /teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamSvc.List(c.Request.Context())
	if err != nil {
		WriteError(c, h.logger, codeTeam, err)
		return
	}
	response.OK(c, teams)
}

// GetTeam returns team detail
// GET /teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		return
	}

	team, err := h.teamSvc.Get(c.Request.Context(), id)
	if err != nil {
		WriteError(c, h.logger, codeTeam, err)
		return
	}
	response.OK(c, team)
}

// CreateTeam creates a team
// POST /teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req dto.CreateTeamRequest
	if !BindJSON(c, &req) {
		return
	}

	team, err := h.teamSvc.Create(c.Request.Context(), &req)
	if err != nil {
		WriteError(c, h.logger, codeTeam, err)
		return
	}
	response.Created(c, team)
}
