package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

func TestStartTracking(t *testing.T) {
	uc, m := newTestUC(t)
	t.Cleanup(uc.Shutdown)

	userID := uuid.New()
	j := twoLegJourney(userID)
	j.Status = models.JourneyStatusPlanning
	j.Legs[0].Status = models.LegStatusPending
	j.StartedAt = nil

	m.repo.EXPECT().GetJourney(gomock.Any(), j.JourneyID).Return(j, nil)
	m.repo.EXPECT().StartJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)
	m.repo.EXPECT().StartLeg(gomock.Any(), j.Legs[0].LegID, gomock.Any()).Return(nil)
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyStart)).
		Return(nil)

	err := uc.StartTracking(context.Background(), j.JourneyID, userID)
	require.NoError(t, err)

	assert.Equal(t, models.JourneyStatusInProgress, j.Status)
	assert.Equal(t, models.LegStatusInProgress, j.Legs[0].Status)
	assert.NotNil(t, j.StartedAt)
	assert.Equal(t, 1, uc.ActiveTrackerCount())
}

func TestStartTracking_JourneyNotFound(t *testing.T) {
	uc, m := newTestUC(t)

	journeyID := uuid.New()
	m.repo.EXPECT().GetJourney(gomock.Any(), journeyID).
		Return(nil, models.ErrJourneyNotFound)

	err := uc.StartTracking(context.Background(), journeyID, uuid.New())
	assert.ErrorIs(t, err, models.ErrJourneyNotFound)
	assert.Equal(t, 0, uc.ActiveTrackerCount())
}

func TestStartTracking_AlreadyActive(t *testing.T) {
	uc, m := newTestUC(t)
	t.Cleanup(uc.Shutdown)

	userID := uuid.New()
	j := twoLegJourney(userID)

	m.repo.EXPECT().GetJourney(gomock.Any(), j.JourneyID).Return(j, nil).Times(2)
	m.repo.EXPECT().StartJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)
	m.repo.EXPECT().StartLeg(gomock.Any(), j.Legs[0].LegID, gomock.Any()).Return(nil)
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyStart)).
		Return(nil)

	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, j.JourneyID, userID))

	err := uc.StartTracking(ctx, j.JourneyID, userID)
	assert.ErrorIs(t, err, models.ErrTrackingActive)
	assert.Equal(t, 1, uc.ActiveTrackerCount())
}

func TestStartTracking_NotificationFailureIsNotFatal(t *testing.T) {
	uc, m := newTestUC(t)
	t.Cleanup(uc.Shutdown)

	userID := uuid.New()
	j := twoLegJourney(userID)

	m.repo.EXPECT().GetJourney(gomock.Any(), j.JourneyID).Return(j, nil)
	m.repo.EXPECT().StartJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)
	m.repo.EXPECT().StartLeg(gomock.Any(), j.Legs[0].LegID, gomock.Any()).Return(nil)
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyStart)).
		Return(models.ErrLocationUnavailable)

	err := uc.StartTracking(context.Background(), j.JourneyID, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, uc.ActiveTrackerCount())
}

func TestStopTracking(t *testing.T) {
	uc, m := newTestUC(t)

	userID := uuid.New()
	j := twoLegJourney(userID)

	m.repo.EXPECT().GetJourney(gomock.Any(), j.JourneyID).Return(j, nil)
	m.repo.EXPECT().StartJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)
	m.repo.EXPECT().StartLeg(gomock.Any(), j.Legs[0].LegID, gomock.Any()).Return(nil)
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyStart)).
		Return(nil)

	ctx := context.Background()
	require.NoError(t, uc.StartTracking(ctx, j.JourneyID, userID))

	m.repo.EXPECT().CancelJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)
	m.notifyGW.EXPECT().
		SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyStopped)).
		Return(nil)

	require.NoError(t, uc.StopTracking(ctx, j.JourneyID, userID))
	assert.Equal(t, 0, uc.ActiveTrackerCount())
}

func TestStopTracking_NotTrackedIsNoOp(t *testing.T) {
	uc, _ := newTestUC(t)

	// No repo or gateway call is expected for an unknown journey
	err := uc.StopTracking(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
}

func TestShutdown_DrainsAllTrackers(t *testing.T) {
	uc, m := newTestUC(t)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		userID := uuid.New()
		j := twoLegJourney(userID)

		m.repo.EXPECT().GetJourney(gomock.Any(), j.JourneyID).Return(j, nil)
		m.repo.EXPECT().StartJourney(gomock.Any(), j.JourneyID, gomock.Any()).Return(nil)
		m.repo.EXPECT().StartLeg(gomock.Any(), j.Legs[0].LegID, gomock.Any()).Return(nil)
		m.notifyGW.EXPECT().
			SendNotification(gomock.Any(), notificationOfKind(models.NotificationJourneyStart)).
			Return(nil)

		require.NoError(t, uc.StartTracking(ctx, j.JourneyID, userID))
	}
	require.Equal(t, 3, uc.ActiveTrackerCount())

	uc.Shutdown()
	assert.Equal(t, 0, uc.ActiveTrackerCount())
}
