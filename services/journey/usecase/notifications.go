package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// vehicleLabel maps a transport mode to its rider-facing name
func vehicleLabel(mode models.TransportMode) string {
	switch mode {
	case models.TransportModeBRT:
		return "BRT"
	case models.TransportModeKekeNapep:
		return "keke napep"
	default:
		return string(mode)
	}
}

func journeyStartNotification(j *models.Journey, userID uuid.UUID) *models.Notification {
	payload := models.JourneyStartPayload{
		JourneyID:     j.JourneyID.String(),
		Origin:        j.OriginName,
		Destination:   j.DestinationName,
		TransferCount: j.TransferCount(),
	}

	body := fmt.Sprintf("You're on your way to %s.", j.DestinationName)
	if len(j.Legs) > 0 {
		first := j.Legs[0]
		payload.VehicleType = first.Mode
		payload.FareMin = first.FareMin
		payload.FareMax = first.FareMax
		body = fmt.Sprintf("You're on your way to %s. Board a %s at %s (₦%.0f-₦%.0f).",
			j.DestinationName, vehicleLabel(first.Mode), j.OriginName, first.FareMin, first.FareMax)
	}
	if n := j.TransferCount(); n > 0 {
		body += fmt.Sprintf(" %d transfer(s) ahead.", n)
	}

	return &models.Notification{
		UserID:  userID.String(),
		Title:   "Journey started",
		Body:    body,
		Payload: payload,
	}
}

func approachingStopNotification(j *models.Journey, userID uuid.UUID, stop *models.ProgressPoint) *models.Notification {
	return &models.Notification{
		UserID: userID.String(),
		Title:  fmt.Sprintf("Approaching %s", stop.Name),
		Body: fmt.Sprintf("%s is about %.0f m ahead, roughly %d min away.",
			stop.Name, stop.DistanceMeters, stop.ETAMinutes),
		Payload: models.ApproachingStopPayload{
			JourneyID:      j.JourneyID.String(),
			StopName:       stop.Name,
			DistanceMeters: stop.DistanceMeters,
			ETAMinutes:     stop.ETAMinutes,
		},
	}
}

func transferAlertNotification(j *models.Journey, userID uuid.UUID, nextLeg *models.JourneyLeg, transfer *models.ProgressPoint) *models.Notification {
	return &models.Notification{
		UserID: userID.String(),
		Title:  "Transfer coming up",
		Body: fmt.Sprintf("Get ready to alight at %s, about %d min away. Next: %s (₦%.0f-₦%.0f).",
			transfer.Name, transfer.ETAMinutes, vehicleLabel(nextLeg.Mode), nextLeg.FareMin, nextLeg.FareMax),
		Payload: models.TransferAlertPayload{
			JourneyID:       j.JourneyID.String(),
			DropLocation:    transfer.Name,
			ETAMinutes:      transfer.ETAMinutes,
			NextVehicleType: nextLeg.Mode,
			NextFareMin:     nextLeg.FareMin,
			NextFareMax:     nextLeg.FareMax,
		},
	}
}

func transferImminentNotification(j *models.Journey, userID uuid.UUID, nextLeg *models.JourneyLeg) *models.Notification {
	return &models.Notification{
		UserID: userID.String(),
		Title:  "Get ready to alight",
		Body: fmt.Sprintf("You're almost at your transfer point. Next up: %s towards %s.",
			vehicleLabel(nextLeg.Mode), nextLeg.Segment.EndName),
		Payload: models.TransferImminentPayload{
			JourneyID:        j.JourneyID.String(),
			NextVehicleType:  nextLeg.Mode,
			NextDropLocation: nextLeg.Segment.EndName,
		},
	}
}

func transferCompleteNotification(j *models.Journey, userID uuid.UUID, completedLeg, nextLeg *models.JourneyLeg, remainingMinutes int) *models.Notification {
	return &models.Notification{
		UserID: userID.String(),
		Title:  "Transfer point reached",
		Body: fmt.Sprintf("Board the %s at %s (₦%.0f-₦%.0f). About %d min to go.",
			vehicleLabel(nextLeg.Mode), completedLeg.Segment.EndName, nextLeg.FareMin, nextLeg.FareMax, remainingMinutes),
		Payload: models.TransferCompletePayload{
			JourneyID:        j.JourneyID.String(),
			TransferLocation: completedLeg.Segment.EndName,
			NextVehicleType:  nextLeg.Mode,
			NextFareMin:      nextLeg.FareMin,
			NextFareMax:      nextLeg.FareMax,
			RemainingMinutes: remainingMinutes,
		},
	}
}

func destinationAlertNotification(j *models.Journey, userID uuid.UUID, etaMinutes int) *models.Notification {
	body := fmt.Sprintf("%s is about %d min away.", j.DestinationName, etaMinutes)
	if j.DestinationLandmark != "" {
		body += fmt.Sprintf(" Look out for %s.", j.DestinationLandmark)
	}

	return &models.Notification{
		UserID: userID.String(),
		Title:  "Almost there",
		Body:   body,
		Payload: models.DestinationAlertPayload{
			JourneyID:  j.JourneyID.String(),
			ETAMinutes: etaMinutes,
			Landmark:   j.DestinationLandmark,
		},
	}
}

func journeyCompleteNotification(j *models.Journey, userID uuid.UUID, totalFare float64, durationMinutes int) *models.Notification {
	return &models.Notification{
		UserID: userID.String(),
		Title:  "You have arrived",
		Body: fmt.Sprintf("Welcome to %s! %d min, ₦%.0f total, %d transfer(s).",
			j.DestinationName, durationMinutes, totalFare, j.TransferCount()),
		Payload: models.JourneyCompletePayload{
			JourneyID:       j.JourneyID.String(),
			Destination:     j.DestinationName,
			TotalFare:       totalFare,
			DurationMinutes: durationMinutes,
			TransferCount:   j.TransferCount(),
		},
	}
}

func ratingRequestNotification(journeyID, userID uuid.UUID) *models.Notification {
	return &models.Notification{
		UserID:  userID.String(),
		Title:   "How was your trip?",
		Body:    "Rate your journey to help other commuters plan better.",
		Payload: models.RatingRequestPayload{JourneyID: journeyID.String()},
	}
}

func journeyStoppedNotification(journeyID, userID uuid.UUID) *models.Notification {
	return &models.Notification{
		UserID:  userID.String(),
		Title:   "Tracking stopped",
		Body:    "We've stopped tracking your journey. You can restart it anytime.",
		Payload: models.JourneyStoppedPayload{JourneyID: journeyID.String()},
	}
}
