package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"swimtrack/backend/config"
	"swimtrack/backend/internal/api/handler"
	"swimtrack/backend/internal/api/middleware"
	"swimtrack/backend/pkg/response"
)

// Setup builds the gin engine. limiter may be nil, which disables rate limiting.
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// writes are limited only when a limiter is configured
	var write gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled && limiter != nil {
		write = middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)
	}

	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/health", func(c *gin.Context) {
			response.OK(c, gin.H{"status": "ok"})
		})

		api.GET("/dashboard", h.Dashboard.GetDashboard)

		teams := api.Group("/teams")
		{
			teams.GET("", h.Team.ListTeams)
			teams.GET("/:id", h.Team.GetTeam)
			teams.POST("", write, h.Team.CreateTeam)
		}

		athletes := api.Group("/athletes")
		{
			athletes.GET("", h.Athlete.ListAthletes)
			athletes.GET("/:id", h.Athlete.GetAthlete)
			athletes.POST("", write, h.Athlete.CreateAthlete)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("", h.Session.ListSessions)
			sessions.GET("/:id", h.Session.GetSession)
			sessions.POST("", write, h.Session.CreateSession)
			sessions.PATCH("/:id", write, h.Session.UpdateSession)
			sessions.POST("/:id/duplicate", write, h.Session.DuplicateSession)
			sessions.POST("/:id/attendance", write, h.Session.RecordAttendance)
		}

		api.GET("/calendar/sessions.ics", h.Calendar.SessionsFeed)

		reports := api.Group("/reports")
		{
			reports.GET("", h.Report.ListReports)
			reports.GET("/export", h.Report.ExportReports)
		}

		metrics := api.Group("/metrics")
		{
			metrics.GET("", h.Metric.ListMetrics)
			metrics.POST("", write, h.Metric.CreateMetric)
		}

		notes := api.Group("/notes")
		{
			notes.POST("", write, h.Note.SaveNote)
			notes.GET("/latest", h.Note.GetLatestNote)
		}
	}

	return r
}
