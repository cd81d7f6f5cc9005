package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnquangdev/meeting-sim/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	gatherer       prometheus.Gatherer
}

// NewRouter creates a new router with all handlers. A nil gatherer leaves
// /metrics unregistered.
func NewRouter(cfg *config.Config, meetingHandler *Meeting, gatherer prometheus.Gatherer) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		gatherer:       gatherer,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	if rt.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
}

// setupMeetingRoutes configures meeting, recording and AI routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	if rt.meetingHandler == nil {
		meetingGroup.Any("", rt.notImplemented)
		meetingGroup.Any("/*", rt.notImplemented)
		return
	}

	h := rt.meetingHandler
	meetingGroup.GET("", h.ListMeetings)
	meetingGroup.POST("", h.CreateMeeting)
	meetingGroup.GET("/:id", h.GetMeeting)
	meetingGroup.PATCH("/:id", h.UpdateMeeting)
	meetingGroup.POST("/:id/recording", h.StartRecording)
	meetingGroup.POST("/:id/transcription", h.GenerateTranscription)
	meetingGroup.POST("/:id/summary", h.GenerateSummary)
	meetingGroup.POST("/:id/action-items/:itemId/toggle", h.ToggleActionItem)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "production"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
