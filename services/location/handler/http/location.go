package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/internal/utils"
	"github.com/AvigateGroup/avigate-tracker/services/location"
)

// LocationHandler handles HTTP requests for location updates
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpdateMyLocation stores the authenticated user's current position
func (h *LocationHandler) UpdateMyLocation(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var loc models.Location
	if err := c.Bind(&loc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.locationUC.UpdateUserLocation(c.Request().Context(), userID.String(), &loc); err != nil {
		logger.Error("Failed to update user location",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.BadRequestResponse(c, "Failed to update location: "+err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}
