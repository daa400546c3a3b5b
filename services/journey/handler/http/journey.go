package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/internal/utils"
	"github.com/AvigateGroup/avigate-tracker/services/journey"
)

// JourneyHandler handles HTTP requests for journey tracking
type JourneyHandler struct {
	journeyUC journey.JourneyUC
}

// NewJourneyHandler creates a new journey HTTP handler
func NewJourneyHandler(journeyUC journey.JourneyUC) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: journeyUC,
	}
}

// StartTracking begins live tracking for the authenticated user's journey
func (h *JourneyHandler) StartTracking(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("journeyID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid journey ID")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.journeyUC.StartTracking(c.Request().Context(), journeyID, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrJourneyNotFound):
			return utils.NotFoundResponse(c, "Journey not found")
		case errors.Is(err, models.ErrTrackingActive):
			return utils.ConflictResponse(c, "Journey is already being tracked")
		default:
			logger.Error("Failed to start journey tracking",
				logger.String("journey_id", journeyID.String()),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to start tracking")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Journey tracking started", nil)
}

// StopTracking halts live tracking and cancels the journey
func (h *JourneyHandler) StopTracking(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("journeyID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid journey ID")
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.journeyUC.StopTracking(c.Request().Context(), journeyID, userID); err != nil {
		logger.Error("Failed to stop journey tracking",
			logger.String("journey_id", journeyID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to stop tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Journey tracking stopped", nil)
}

// GetJourney returns a journey with its legs and current progress flags
func (h *JourneyHandler) GetJourney(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("journeyID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid journey ID")
	}

	j, err := h.journeyUC.GetJourney(c.Request().Context(), journeyID)
	if err != nil {
		if errors.Is(err, models.ErrJourneyNotFound) {
			return utils.NotFoundResponse(c, "Journey not found")
		}
		logger.Error("Failed to get journey",
			logger.String("journey_id", journeyID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get journey")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Journey retrieved", j)
}
