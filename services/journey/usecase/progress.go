package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/internal/utils"
)

// Proximity thresholds in meters. Arrival detection is shared between
// transfer points and the final destination.
const (
	transferAlertRadiusM    = 2000.0
	transferImminentRadiusM = 500.0
	stopApproachRadiusM     = 300.0
	destinationAlertRadiusM = 1000.0
	arrivalRadiusM          = 100.0
)

// processProgress evaluates one cycle of journey progress against the
// traveler's current location. The three alert flags are one-shots: the
// notification is sent first, then the flag is persisted, so a failed send
// retries on the next tick.
func (uc *JourneyUC) processProgress(ctx context.Context, j *models.Journey, userID uuid.UUID, location *models.Location) error {
	legIdx := j.CurrentLegIndex()
	if legIdx < 0 {
		logger.Debug("No leg in progress, skipping cycle",
			logger.String("journey_id", j.JourneyID.String()))
		return nil
	}
	leg := j.Legs[legIdx]
	point := utils.GeoPointFromLocation(*location)

	progress := uc.computeProgress(ctx, j, legIdx, point)

	if progress.NextStop != nil && progress.NextStop.DistanceMeters <= stopApproachRadiusM {
		notification := approachingStopNotification(j, userID, progress.NextStop)
		if err := uc.notifyGW.SendNotification(ctx, notification); err != nil {
			return fmt.Errorf("failed to send approaching stop notification: %w", err)
		}
	}

	if transfer := progress.UpcomingTransfer; transfer != nil {
		nextLeg := j.Legs[legIdx+1]
		distance := transfer.DistanceMeters

		if distance <= transferAlertRadiusM && distance > transferImminentRadiusM && !leg.TransferAlertSent {
			notification := transferAlertNotification(j, userID, nextLeg, transfer)
			if err := uc.notifyGW.SendNotification(ctx, notification); err != nil {
				return fmt.Errorf("failed to send transfer alert: %w", err)
			}
			if err := uc.repo.SetLegFlag(ctx, leg.LegID, models.FlagTransferAlertSent); err != nil {
				return fmt.Errorf("failed to persist transfer alert flag: %w", err)
			}
			leg.TransferAlertSent = true
		}

		if distance <= transferImminentRadiusM && !leg.TransferImminentSent {
			notification := transferImminentNotification(j, userID, nextLeg)
			if err := uc.notifyGW.SendNotification(ctx, notification); err != nil {
				return fmt.Errorf("failed to send transfer imminent alert: %w", err)
			}
			if err := uc.repo.SetLegFlag(ctx, leg.LegID, models.FlagTransferImminentSent); err != nil {
				return fmt.Errorf("failed to persist transfer imminent flag: %w", err)
			}
			leg.TransferImminentSent = true
		}

		if distance <= arrivalRadiusM {
			return uc.handleTransferArrival(ctx, j, legIdx, userID)
		}
	}

	destination := utils.GeoPoint{
		Latitude:  j.DestinationLatitude,
		Longitude: j.DestinationLongitude,
	}
	destDistance := utils.DistanceMeters(point, destination)

	if destDistance <= destinationAlertRadiusM && !leg.DestinationAlertSent {
		notification := destinationAlertNotification(j, userID, utils.ETAMinutes(destDistance))
		if err := uc.notifyGW.SendNotification(ctx, notification); err != nil {
			return fmt.Errorf("failed to send destination alert: %w", err)
		}
		if err := uc.repo.SetLegFlag(ctx, leg.LegID, models.FlagDestinationAlertSent); err != nil {
			return fmt.Errorf("failed to persist destination alert flag: %w", err)
		}
		leg.DestinationAlertSent = true
	}

	if destDistance <= arrivalRadiusM {
		return uc.handleDestinationArrival(ctx, j, legIdx, userID)
	}

	return nil
}

// computeProgress builds the transient per-cycle snapshot: the next
// intermediate stop within scan range and, when the leg is not the last one,
// the upcoming transfer point.
func (uc *JourneyUC) computeProgress(ctx context.Context, j *models.Journey, legIdx int, point utils.GeoPoint) *models.JourneyProgress {
	leg := j.Legs[legIdx]
	progress := &models.JourneyProgress{}

	for i := range leg.Segment.Stops {
		stop := &leg.Segment.Stops[i]
		coords, ok := uc.stopCoordinates(ctx, stop)
		if !ok {
			continue
		}
		distance := utils.DistanceMeters(point, coords)
		if distance <= 2*stopApproachRadiusM {
			progress.NextStop = &models.ProgressPoint{
				Name:           stop.Name,
				DistanceMeters: distance,
				ETAMinutes:     utils.ETAMinutes(distance),
			}
			break
		}
	}

	if legIdx < len(j.Legs)-1 {
		end := utils.GeoPoint{
			Latitude:  leg.Segment.EndLatitude,
			Longitude: leg.Segment.EndLongitude,
		}
		distance := utils.DistanceMeters(point, end)
		progress.UpcomingTransfer = &models.ProgressPoint{
			Name:           leg.Segment.EndName,
			DistanceMeters: distance,
			ETAMinutes:     utils.ETAMinutes(distance),
		}
	}

	return progress
}

// stopCoordinates resolves a stop to coordinates, preferring inline values
// over a referenced location. Unresolvable stops are skipped in the scan.
func (uc *JourneyUC) stopCoordinates(ctx context.Context, stop *models.Stop) (utils.GeoPoint, bool) {
	if stop.Latitude != nil && stop.Longitude != nil {
		return utils.GeoPoint{Latitude: *stop.Latitude, Longitude: *stop.Longitude}, true
	}

	if stop.LocationID == nil {
		return utils.GeoPoint{}, false
	}

	place, err := uc.resolver.ResolveLocation(ctx, *stop.LocationID)
	if err != nil {
		logger.Debug("Could not resolve stop location",
			logger.String("stop", stop.Name),
			logger.String("location_id", stop.LocationID.String()),
			logger.Err(err))
		return utils.GeoPoint{}, false
	}
	if place == nil || place.Latitude == nil || place.Longitude == nil {
		return utils.GeoPoint{}, false
	}

	return utils.GeoPoint{Latitude: *place.Latitude, Longitude: *place.Longitude}, true
}

// handleTransferArrival advances the leg state machine at a transfer point:
// the current leg completes, the next leg starts, and the traveler is told
// what to board next.
func (uc *JourneyUC) handleTransferArrival(ctx context.Context, j *models.Journey, legIdx int, userID uuid.UUID) error {
	now := time.Now()
	leg := j.Legs[legIdx]
	nextLeg := j.Legs[legIdx+1]

	if err := uc.repo.CompleteLeg(ctx, leg.LegID, now); err != nil {
		return fmt.Errorf("failed to complete leg: %w", err)
	}
	leg.Status = models.LegStatusCompleted
	leg.CompletedAt = &now

	if err := uc.repo.StartLeg(ctx, nextLeg.LegID, now); err != nil {
		return fmt.Errorf("failed to start next leg: %w", err)
	}
	nextLeg.Status = models.LegStatusInProgress
	nextLeg.StartedAt = &now

	remainingMinutes := 0
	for _, l := range j.Legs[legIdx+1:] {
		remainingMinutes += l.EstimatedMinutes
	}

	logger.Info("Transfer point reached",
		logger.String("journey_id", j.JourneyID.String()),
		logger.String("transfer_point", leg.Segment.EndName),
		logger.Int("next_leg_position", nextLeg.Position))

	return uc.notifyGW.SendNotification(ctx, transferCompleteNotification(j, userID, leg, nextLeg, remainingMinutes))
}

// handleDestinationArrival completes the journey: the current leg and the
// journey itself are closed out, the completion summary is sent, and a rating
// prompt follows after a short delay. The journey's own timer is cancelled.
func (uc *JourneyUC) handleDestinationArrival(ctx context.Context, j *models.Journey, legIdx int, userID uuid.UUID) error {
	now := time.Now()
	leg := j.Legs[legIdx]

	if err := uc.repo.CompleteLeg(ctx, leg.LegID, now); err != nil {
		return fmt.Errorf("failed to complete final leg: %w", err)
	}
	leg.Status = models.LegStatusCompleted
	leg.CompletedAt = &now

	if err := uc.repo.CompleteJourney(ctx, j.JourneyID, now); err != nil {
		return fmt.Errorf("failed to complete journey: %w", err)
	}
	j.Status = models.JourneyStatusCompleted
	j.EndedAt = &now

	startedAt := j.CreatedAt
	if j.StartedAt != nil {
		startedAt = *j.StartedAt
	}
	durationMinutes := int(math.Ceil(now.Sub(startedAt).Minutes()))
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	totalFare := 0.0
	for _, l := range j.Legs {
		totalFare += l.FareMidpoint()
	}
	totalFare = math.Round(totalFare)

	if err := uc.notifyGW.SendNotification(ctx, journeyCompleteNotification(j, userID, totalFare, durationMinutes)); err != nil {
		return fmt.Errorf("failed to send journey complete notification: %w", err)
	}

	journeyID := j.JourneyID
	time.AfterFunc(uc.RatingDelay, func() {
		ratingCtx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		defer cancel()

		if err := uc.notifyGW.SendNotification(ratingCtx, ratingRequestNotification(journeyID, userID)); err != nil {
			logger.Warn("Failed to send rating request",
				logger.String("journey_id", journeyID.String()),
				logger.Err(err))
		}
	})

	logger.Info("Journey completed",
		logger.String("journey_id", j.JourneyID.String()),
		logger.Int("duration_minutes", durationMinutes),
		logger.Float64("total_fare", totalFare))

	uc.stopTracker(j.JourneyID)
	return nil
}
