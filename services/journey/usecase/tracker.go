package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/services/journey"
)

const (
	// pollInterval is how often each journey's progress is evaluated
	pollInterval = 10 * time.Second

	// cycleTimeout bounds collaborator calls within one cycle so a hung
	// call cannot overlap the next tick
	cycleTimeout = 8 * time.Second

	// defaultRatingDelay is the pause between journey completion and the
	// rating prompt
	defaultRatingDelay = 30 * time.Second
)

// JourneyUC implements the journey.JourneyUC interface
type JourneyUC struct {
	cfg       *models.Config
	repo      journey.JourneyRepo
	notifyGW  journey.NotificationGW
	locations journey.LocationProvider
	resolver  journey.LocationResolver

	trackersMutex sync.Mutex
	trackers      map[string]context.CancelFunc

	// RatingDelay is overridable so tests do not have to wait out the
	// production delay
	RatingDelay time.Duration
}

// NewJourneyUC creates a new journey tracking use case
func NewJourneyUC(
	cfg *models.Config,
	repo journey.JourneyRepo,
	notifyGW journey.NotificationGW,
	locations journey.LocationProvider,
	resolver journey.LocationResolver,
) *JourneyUC {
	return &JourneyUC{
		cfg:         cfg,
		repo:        repo,
		notifyGW:    notifyGW,
		locations:   locations,
		resolver:    resolver,
		trackers:    make(map[string]context.CancelFunc),
		RatingDelay: defaultRatingDelay,
	}
}

// StartTracking begins live progress tracking for a journey. It marks the
// journey and its first leg in progress, announces the journey start to the
// traveler, and registers a polling loop for the journey.
func (uc *JourneyUC) StartTracking(ctx context.Context, journeyID, userID uuid.UUID) error {
	j, err := uc.repo.GetJourney(ctx, journeyID)
	if err != nil {
		return err
	}

	uc.trackersMutex.Lock()
	if _, exists := uc.trackers[journeyID.String()]; exists {
		uc.trackersMutex.Unlock()
		return models.ErrTrackingActive
	}
	trackerCtx, cancel := context.WithCancel(context.Background())
	uc.trackers[journeyID.String()] = cancel
	uc.trackersMutex.Unlock()

	now := time.Now()
	if err := uc.repo.StartJourney(ctx, journeyID, now); err != nil {
		uc.stopTracker(journeyID)
		return err
	}
	j.Status = models.JourneyStatusInProgress
	j.StartedAt = &now

	if len(j.Legs) > 0 {
		first := j.Legs[0]
		if err := uc.repo.StartLeg(ctx, first.LegID, now); err != nil {
			uc.stopTracker(journeyID)
			return err
		}
		first.Status = models.LegStatusInProgress
		first.StartedAt = &now
	}

	if err := uc.notifyGW.SendNotification(ctx, journeyStartNotification(j, userID)); err != nil {
		// Tracking still starts; the traveler just misses the greeting
		logger.Warn("Failed to send journey start notification",
			logger.String("journey_id", journeyID.String()),
			logger.Err(err))
	}

	go uc.trackJourney(trackerCtx, journeyID, userID)

	logger.Info("Journey tracking started",
		logger.String("journey_id", journeyID.String()),
		logger.String("user_id", userID.String()),
		logger.Int("legs", len(j.Legs)))

	return nil
}

// StopTracking cancels the journey's polling loop, marks the journey
// cancelled, and confirms the stop to the traveler. Calling it again after
// the journey has stopped is a no-op.
func (uc *JourneyUC) StopTracking(ctx context.Context, journeyID, userID uuid.UUID) error {
	uc.trackersMutex.Lock()
	cancel, exists := uc.trackers[journeyID.String()]
	if exists {
		delete(uc.trackers, journeyID.String())
	}
	uc.trackersMutex.Unlock()

	if !exists {
		return nil
	}
	cancel()

	now := time.Now()
	if err := uc.repo.CancelJourney(ctx, journeyID, now); err != nil {
		return err
	}

	if err := uc.notifyGW.SendNotification(ctx, journeyStoppedNotification(journeyID, userID)); err != nil {
		logger.Warn("Failed to send journey stopped notification",
			logger.String("journey_id", journeyID.String()),
			logger.Err(err))
	}

	logger.Info("Journey tracking stopped",
		logger.String("journey_id", journeyID.String()),
		logger.String("user_id", userID.String()))

	return nil
}

// GetJourney returns the journey with its legs and segment geometry
func (uc *JourneyUC) GetJourney(ctx context.Context, journeyID uuid.UUID) (*models.Journey, error) {
	return uc.repo.GetJourney(ctx, journeyID)
}

// ActiveTrackerCount returns the number of journeys currently being tracked
func (uc *JourneyUC) ActiveTrackerCount() int {
	uc.trackersMutex.Lock()
	defer uc.trackersMutex.Unlock()
	return len(uc.trackers)
}

// Shutdown cancels all active trackers. Used during graceful shutdown.
func (uc *JourneyUC) Shutdown() {
	uc.trackersMutex.Lock()
	defer uc.trackersMutex.Unlock()

	for id, cancel := range uc.trackers {
		cancel()
		delete(uc.trackers, id)
	}
}

// trackJourney runs the per-journey polling loop until its context is
// cancelled. Each tick runs one progress cycle to completion, so cycles for
// one journey never overlap.
func (uc *JourneyUC) trackJourney(ctx context.Context, journeyID, userID uuid.UUID) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Journey tracker loop exited",
				logger.String("journey_id", journeyID.String()))
			return
		case <-ticker.C:
			uc.runCycle(journeyID, userID)
		}
	}
}

// runCycle executes one progress evaluation. Errors and panics are contained
// so the next tick always fires.
func (uc *JourneyUC) runCycle(journeyID, userID uuid.UUID) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in tracking cycle",
				logger.String("journey_id", journeyID.String()),
				logger.Any("panic_value", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	j, err := uc.repo.GetJourney(ctx, journeyID)
	if err != nil {
		logger.Warn("Failed to load journey for tracking cycle",
			logger.String("journey_id", journeyID.String()),
			logger.Err(err))
		return
	}

	if j.Status == models.JourneyStatusCompleted || j.Status == models.JourneyStatusCancelled {
		// Journey reached a terminal state outside this loop
		uc.stopTracker(journeyID)
		return
	}

	location, err := uc.locations.GetLastKnownLocation(ctx, userID.String())
	if err != nil {
		logger.Debug("Location unavailable, skipping cycle",
			logger.String("journey_id", journeyID.String()),
			logger.String("user_id", userID.String()))
		return
	}

	if err := uc.processProgress(ctx, j, userID, location); err != nil {
		logger.Warn("Tracking cycle failed",
			logger.String("journey_id", journeyID.String()),
			logger.Err(err))
	}
}

// stopTracker cancels and deregisters a journey's loop without touching
// journey state
func (uc *JourneyUC) stopTracker(journeyID uuid.UUID) {
	uc.trackersMutex.Lock()
	defer uc.trackersMutex.Unlock()

	if cancel, ok := uc.trackers[journeyID.String()]; ok {
		cancel()
		delete(uc.trackers, journeyID.String())
	}
}
