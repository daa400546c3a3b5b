package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/middleware"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/services/journey"
	httpHandler "github.com/AvigateGroup/avigate-tracker/services/journey/handler/http"
)

// Handler combines all handlers for the journey service
type Handler struct {
	journeyHTTP *httpHandler.JourneyHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(journeyUC journey.JourneyUC, cfg *models.Config) *Handler {
	return &Handler{
		journeyHTTP: httpHandler.NewJourneyHandler(journeyUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	journeys := e.Group("/journeys", middleware.JWTAuthMiddleware(h.cfg.JWT))
	journeys.POST("/:journeyID/tracking/start", h.journeyHTTP.StartTracking)
	journeys.POST("/:journeyID/tracking/stop", h.journeyHTTP.StopTracking)
	journeys.GET("/:journeyID", h.journeyHTTP.GetJourney)
}
