package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/middleware"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	natspkg "github.com/AvigateGroup/avigate-tracker/internal/pkg/nats"
	"github.com/AvigateGroup/avigate-tracker/services/location"
	httpHandler "github.com/AvigateGroup/avigate-tracker/services/location/handler/http"
)

// Handler combines the HTTP and NATS handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	locationUC   location.LocationUC
	cfg          *models.Config
	consumers    []*natspkg.Consumer
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC, cfg *models.Config) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		locationUC:   locationUC,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	locations := e.Group("/locations", middleware.JWTAuthMiddleware(h.cfg.JWT))
	locations.POST("/me", h.locationHTTP.UpdateMyLocation)
}
