package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/services/journey/mocks"
)

// metersPerDegreeLat converts a pure latitude offset to meters on the
// great-circle model used by the distance calculator
const metersPerDegreeLat = 111194.93

// notificationOfKind matches a notification by its payload kind
type notificationOfKind models.NotificationKind

func (k notificationOfKind) Matches(x interface{}) bool {
	n, ok := x.(*models.Notification)
	return ok && n.Kind() == models.NotificationKind(k)
}

func (k notificationOfKind) String() string {
	return "notification of kind " + string(k)
}

type trackerMocks struct {
	repo      *mocks.MockJourneyRepo
	notifyGW  *mocks.MockNotificationGW
	locations *mocks.MockLocationProvider
	resolver  *mocks.MockLocationResolver
}

func newTestUC(t *testing.T) (*JourneyUC, trackerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := trackerMocks{
		repo:      mocks.NewMockJourneyRepo(ctrl),
		notifyGW:  mocks.NewMockNotificationGW(ctrl),
		locations: mocks.NewMockLocationProvider(ctrl),
		resolver:  mocks.NewMockLocationResolver(ctrl),
	}
	uc := NewJourneyUC(&models.Config{}, m.repo, m.notifyGW, m.locations, m.resolver)
	uc.RatingDelay = 20 * time.Millisecond
	return uc, m
}

// twoLegJourney builds an in-progress Obalende -> Ojota -> Ikeja journey with
// the first leg active. The Ojota transfer point is the reference for the
// transfer threshold tests.
func twoLegJourney(userID uuid.UUID) *models.Journey {
	journeyID := uuid.New()
	started := time.Now().Add(-20 * time.Minute)

	return &models.Journey{
		JourneyID:            journeyID,
		UserID:               userID,
		Status:               models.JourneyStatusInProgress,
		OriginName:           "Obalende",
		OriginLatitude:       6.4434,
		OriginLongitude:      3.4145,
		DestinationName:      "Ikeja",
		DestinationLatitude:  6.6018,
		DestinationLongitude: 3.3515,
		StartedAt:            &started,
		CreatedAt:            started,
		Legs: []*models.JourneyLeg{
			{
				LegID:            uuid.New(),
				JourneyID:        journeyID,
				Position:         0,
				Mode:             models.TransportModeBRT,
				FareMin:          300,
				FareMax:          500,
				EstimatedMinutes: 35,
				Status:           models.LegStatusInProgress,
				Segment: models.Segment{
					StartName:      "Obalende",
					StartLatitude:  6.4434,
					StartLongitude: 3.4145,
					EndName:        "Ojota",
					EndLatitude:    6.5876,
					EndLongitude:   3.3786,
				},
			},
			{
				LegID:            uuid.New(),
				JourneyID:        journeyID,
				Position:         1,
				Mode:             models.TransportModeDanfo,
				FareMin:          100,
				FareMax:          200,
				EstimatedMinutes: 20,
				Status:           models.LegStatusPending,
				Segment: models.Segment{
					StartName:      "Ojota",
					StartLatitude:  6.5876,
					StartLongitude: 3.3786,
					EndName:        "Ikeja",
					EndLatitude:    6.6018,
					EndLongitude:   3.3515,
				},
			},
		},
	}
}

// nearTransfer returns a location the given number of meters due south of the
// Ojota transfer point
func nearTransfer(meters float64) *models.Location {
	return &models.Location{
		Latitude:  6.5876 - meters/metersPerDegreeLat,
		Longitude: 3.3786,
		Timestamp: time.Now(),
	}
}

func TestProcessProgress_TransferSequence(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)
	leg1 := j.Legs[0]
	leg2 := j.Legs[1]
	ctx := context.Background()

	// Cycle 1: 2500 m out, outside every threshold
	require.NoError(t, uc.processProgress(ctx, j, userID, nearTransfer(2500)))

	// Cycle 2: 1800 m, transfer alert band
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferAlert)).
		Return(nil)
	m.repo.EXPECT().SetLegFlag(gomock.Any(), leg1.LegID, models.FlagTransferAlertSent).Return(nil)
	require.NoError(t, uc.processProgress(ctx, j, userID, nearTransfer(1800)))
	assert.True(t, leg1.TransferAlertSent)

	// Cycle 3: 400 m, transfer imminent
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferImminent)).
		Return(nil)
	m.repo.EXPECT().SetLegFlag(gomock.Any(), leg1.LegID, models.FlagTransferImminentSent).Return(nil)
	require.NoError(t, uc.processProgress(ctx, j, userID, nearTransfer(400)))
	assert.True(t, leg1.TransferImminentSent)

	// Cycle 4: 50 m, arrival at the transfer point
	m.repo.EXPECT().CompleteLeg(gomock.Any(), leg1.LegID, gomock.Any()).Return(nil)
	m.repo.EXPECT().StartLeg(gomock.Any(), leg2.LegID, gomock.Any()).Return(nil)
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferComplete)).
		Return(nil)
	require.NoError(t, uc.processProgress(ctx, j, userID, nearTransfer(50)))

	assert.Equal(t, models.LegStatusCompleted, leg1.Status)
	assert.Equal(t, models.LegStatusInProgress, leg2.Status)
	assert.NotNil(t, leg1.CompletedAt)
	assert.NotNil(t, leg2.StartedAt)
}

func TestProcessProgress_FlagMonotonicity(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)
	leg1 := j.Legs[0]
	ctx := context.Background()

	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferAlert)).
		Return(nil).
		Times(1)
	m.repo.EXPECT().
		SetLegFlag(gomock.Any(), leg1.LegID, models.FlagTransferAlertSent).
		Return(nil).
		Times(1)

	// Same alert-band position across three cycles fires exactly once
	for i := 0; i < 3; i++ {
		require.NoError(t, uc.processProgress(ctx, j, userID, nearTransfer(1800)))
	}
	assert.True(t, leg1.TransferAlertSent)
}

func TestProcessProgress_ThresholdBands(t *testing.T) {
	tests := []struct {
		name           string
		meters         float64
		expectAlert    bool
		expectImminent bool
		expectArrival  bool
	}{
		{name: "outside alert range", meters: 2100},
		{name: "alert band", meters: 1900, expectAlert: true},
		{name: "imminent band", meters: 450, expectImminent: true},
		{name: "arrival", meters: 80, expectImminent: true, expectArrival: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUC(t)

			userID := uuid.New()
			j := twoLegJourney(userID)
			leg1 := j.Legs[0]
			leg2 := j.Legs[1]

			if tt.expectAlert {
				m.notifyGW.EXPECT().
					SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferAlert)).
					Return(nil)
				m.repo.EXPECT().SetLegFlag(gomock.Any(), leg1.LegID, models.FlagTransferAlertSent).Return(nil)
			}
			if tt.expectImminent {
				m.notifyGW.EXPECT().
					SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferImminent)).
					Return(nil)
				m.repo.EXPECT().SetLegFlag(gomock.Any(), leg1.LegID, models.FlagTransferImminentSent).Return(nil)
			}
			if tt.expectArrival {
				m.repo.EXPECT().CompleteLeg(gomock.Any(), leg1.LegID, gomock.Any()).Return(nil)
				m.repo.EXPECT().StartLeg(gomock.Any(), leg2.LegID, gomock.Any()).Return(nil)
				m.notifyGW.EXPECT().
					SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferComplete)).
					Return(nil)
			}

			err := uc.processProgress(context.Background(), j, userID, nearTransfer(tt.meters))
			require.NoError(t, err)
		})
	}
}

func TestProcessProgress_DestinationArrival(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)

	// Traveler is on the final leg heading to Port Harcourt
	j.DestinationName = "Port Harcourt"
	j.DestinationLatitude = 4.8333
	j.DestinationLongitude = 7.0167
	started := time.Now().Add(-9*time.Minute - 30*time.Second)
	j.StartedAt = &started

	leg1 := j.Legs[0]
	leg2 := j.Legs[1]
	leg1.Status = models.LegStatusCompleted
	leg2.Status = models.LegStatusInProgress
	leg2.Segment.EndName = "Port Harcourt"
	leg2.Segment.EndLatitude = 4.8333
	leg2.Segment.EndLongitude = 7.0167
	leg2.DestinationAlertSent = true // alerted on an earlier cycle

	location := &models.Location{Latitude: 4.8333, Longitude: 7.0167, Timestamp: time.Now()}

	m.repo.EXPECT().CompleteLeg(gomock.Any(), leg2.LegID, gomock.Any()).Return(nil)
	m.repo.EXPECT().CompleteJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)

	var completePayload models.JourneyCompletePayload
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyComplete)).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			completePayload = n.Payload.(models.JourneyCompletePayload)
			return nil
		})

	ratingSent := make(chan struct{})
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationRatingRequest)).
		DoAndReturn(func(_ context.Context, _ *models.Notification) error {
			close(ratingSent)
			return nil
		})

	err := uc.processProgress(context.Background(), j, userID, location)
	require.NoError(t, err)

	assert.Equal(t, models.JourneyStatusCompleted, j.Status)
	assert.Equal(t, models.LegStatusCompleted, leg2.Status)
	assert.NotNil(t, j.EndedAt)

	// Fare midpoints: (300+500)/2 + (100+200)/2 = 400 + 150
	assert.Equal(t, float64(550), completePayload.TotalFare)
	assert.Equal(t, 10, completePayload.DurationMinutes)
	assert.Equal(t, 1, completePayload.TransferCount)
	assert.Equal(t, "Port Harcourt", completePayload.Destination)

	select {
	case <-ratingSent:
	case <-time.After(2 * time.Second):
		t.Fatal("rating request was not sent after the delay")
	}
}

func TestProcessProgress_DestinationAlertOnce(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)

	leg1 := j.Legs[0]
	leg2 := j.Legs[1]
	leg1.Status = models.LegStatusCompleted
	leg2.Status = models.LegStatusInProgress

	// 800 m short of Ikeja on the final leg
	location := &models.Location{
		Latitude:  6.6018 - 800/metersPerDegreeLat,
		Longitude: 3.3515,
		Timestamp: time.Now(),
	}

	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationDestinationAlert)).
		Return(nil).
		Times(1)
	m.repo.EXPECT().
		SetLegFlag(gomock.Any(), leg2.LegID, models.FlagDestinationAlertSent).
		Return(nil).
		Times(1)

	ctx := context.Background()
	require.NoError(t, uc.processProgress(ctx, j, userID, location))
	require.NoError(t, uc.processProgress(ctx, j, userID, location))
	assert.True(t, leg2.DestinationAlertSent)
}

func TestProcessProgress_ApproachingStopRepeats(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)

	// Single-leg journey so no transfer checks interfere
	j.Legs = j.Legs[:1]
	leg := j.Legs[0]
	stopLat := 6.50 + 250/metersPerDegreeLat
	stopLng := 3.40
	leg.Segment.Stops = []models.Stop{
		{Name: "Maryland", Latitude: &stopLat, Longitude: &stopLng, Position: 0},
	}
	// Keep the leg end and destination well away from the traveler
	j.DestinationLatitude = 6.80
	j.DestinationLongitude = 3.50

	location := &models.Location{Latitude: 6.50, Longitude: 3.40, Timestamp: time.Now()}

	// Known repeat behavior: the stop notice is not flag-gated and fires
	// on every cycle inside the approach radius
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationApproachingStop)).
		Return(nil).
		Times(2)

	ctx := context.Background()
	require.NoError(t, uc.processProgress(ctx, j, userID, location))
	require.NoError(t, uc.processProgress(ctx, j, userID, location))
}

func TestProcessProgress_StopInScanRangeButNotApproach(t *testing.T) {
	uc, _ := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)
	j.Legs = j.Legs[:1]
	leg := j.Legs[0]

	// 450 m away: inside the 600 m scan range, outside the 300 m approach
	stopLat := 6.50 + 450/metersPerDegreeLat
	stopLng := 3.40
	leg.Segment.Stops = []models.Stop{
		{Name: "Anthony", Latitude: &stopLat, Longitude: &stopLng, Position: 0},
	}
	j.DestinationLatitude = 6.80
	j.DestinationLongitude = 3.50

	location := &models.Location{Latitude: 6.50, Longitude: 3.40, Timestamp: time.Now()}

	err := uc.processProgress(context.Background(), j, userID, location)
	require.NoError(t, err)
}

func TestProcessProgress_UnresolvableStopSkipped(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)
	j.Legs = j.Legs[:1]
	leg := j.Legs[0]

	locationID := uuid.New()
	leg.Segment.Stops = []models.Stop{
		{Name: "Unmapped stop", LocationID: &locationID, Position: 0},
	}
	j.DestinationLatitude = 6.80
	j.DestinationLongitude = 3.50

	m.resolver.EXPECT().
		ResolveLocation(gomock.Any(), locationID).
		Return(nil, models.ErrLocationUnavailable)

	location := &models.Location{Latitude: 6.50, Longitude: 3.40, Timestamp: time.Now()}

	// The unresolvable stop is skipped; the cycle still succeeds
	err := uc.processProgress(context.Background(), j, userID, location)
	require.NoError(t, err)
}

func TestProcessProgress_NoLegInProgress(t *testing.T) {
	uc, _ := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)
	j.Legs[0].Status = models.LegStatusPending

	location := nearTransfer(50)

	// No in-progress leg: diagnostic only, no state change, no notification
	err := uc.processProgress(context.Background(), j, userID, location)
	require.NoError(t, err)
}

func TestProcessProgress_SendFailureRetriesNextCycle(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)
	leg1 := j.Legs[0]
	ctx := context.Background()

	// First cycle: the send fails, so the flag must stay unset
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferAlert)).
		Return(errors.New("NATS connection error"))

	err := uc.processProgress(ctx, j, userID, nearTransfer(1800))
	require.Error(t, err)
	assert.False(t, leg1.TransferAlertSent)

	// Next cycle: the send succeeds and the flag is set
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationTransferAlert)).
		Return(nil)
	m.repo.EXPECT().SetLegFlag(gomock.Any(), leg1.LegID, models.FlagTransferAlertSent).Return(nil)

	err = uc.processProgress(ctx, j, userID, nearTransfer(1800))
	require.NoError(t, err)
	assert.True(t, leg1.TransferAlertSent)
}
