package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

func newJourneyRepo(t *testing.T) (*JourneyRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewJourneyRepository(&models.Config{}, sqlxDB), mock
}

func journeyColumns() []string {
	return []string{
		"journey_id", "user_id", "status",
		"origin_name", "origin_latitude", "origin_longitude",
		"destination_name", "destination_latitude", "destination_longitude",
		"destination_landmark",
		"started_at", "ended_at", "created_at",
	}
}

func legColumns() []string {
	return []string{
		"leg_id", "journey_id", "position", "mode",
		"fare_min", "fare_max", "estimated_minutes",
		"start_name", "start_latitude", "start_longitude",
		"end_name", "end_latitude", "end_longitude",
		"status",
		"transfer_alert_sent", "transfer_imminent_sent", "destination_alert_sent",
		"started_at", "completed_at",
	}
}

func TestGetJourney_WithLegsAndStops(t *testing.T) {
	repo, mock := newJourneyRepo(t)

	journeyID := uuid.New()
	userID := uuid.New()
	legID1 := uuid.New()
	legID2 := uuid.New()
	stopLocationID := uuid.New()
	createdAt := time.Now().Add(-time.Hour)

	mock.ExpectQuery("SELECT(.|\n)*FROM journeys").
		WithArgs(journeyID).
		WillReturnRows(sqlmock.NewRows(journeyColumns()).AddRow(
			journeyID.String(), userID.String(), "planning",
			"Obalende", 6.4434, 3.4145,
			"Ikeja", 6.6018, 3.3515,
			"Computer Village gate",
			nil, nil, createdAt,
		))

	mock.ExpectQuery("SELECT(.|\n)*FROM journey_legs").
		WithArgs(journeyID).
		WillReturnRows(sqlmock.NewRows(legColumns()).
			AddRow(
				legID1.String(), journeyID.String(), 0, "brt",
				300.0, 500.0, 35,
				"Obalende", 6.4434, 3.4145,
				"Ojota", 6.5876, 3.3786,
				"pending",
				false, false, false,
				nil, nil,
			).
			AddRow(
				legID2.String(), journeyID.String(), 1, "danfo",
				100.0, 200.0, 20,
				"Ojota", 6.5876, 3.3786,
				"Ikeja", 6.6018, 3.3515,
				"pending",
				false, false, false,
				nil, nil,
			))

	mock.ExpectQuery("SELECT leg_id, name, location_id, latitude, longitude, position").
		WillReturnRows(sqlmock.NewRows([]string{
			"leg_id", "name", "location_id", "latitude", "longitude", "position",
		}).
			AddRow(legID1.String(), "Falomo", nil, 6.4478, 3.4239, 0).
			AddRow(legID1.String(), "Maryland", stopLocationID.String(), nil, nil, 1))

	j, err := repo.GetJourney(context.Background(), journeyID)
	require.NoError(t, err)

	assert.Equal(t, journeyID, j.JourneyID)
	assert.Equal(t, models.JourneyStatusPlanning, j.Status)
	assert.Equal(t, "Computer Village gate", j.DestinationLandmark)
	require.Len(t, j.Legs, 2)
	assert.Equal(t, models.TransportModeBRT, j.Legs[0].Mode)
	assert.Equal(t, "Ojota", j.Legs[0].Segment.EndName)

	require.Len(t, j.Legs[0].Segment.Stops, 2)
	first := j.Legs[0].Segment.Stops[0]
	assert.Equal(t, "Falomo", first.Name)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 6.4478, *first.Latitude, 0.0001)

	second := j.Legs[0].Segment.Stops[1]
	assert.Nil(t, second.Latitude)
	require.NotNil(t, second.LocationID)
	assert.Equal(t, stopLocationID, *second.LocationID)

	assert.Empty(t, j.Legs[1].Segment.Stops)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJourney_NotFound(t *testing.T) {
	repo, mock := newJourneyRepo(t)

	journeyID := uuid.New()
	mock.ExpectQuery("SELECT(.|\n)*FROM journeys").
		WithArgs(journeyID).
		WillReturnRows(sqlmock.NewRows(journeyColumns()))

	_, err := repo.GetJourney(context.Background(), journeyID)
	assert.ErrorIs(t, err, models.ErrJourneyNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJourneyLifecycleUpdates(t *testing.T) {
	repo, mock := newJourneyRepo(t)

	journeyID := uuid.New()
	legID := uuid.New()
	now := time.Now()

	mock.ExpectExec("UPDATE journeys SET status").
		WithArgs(models.JourneyStatusInProgress, now, journeyID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.StartJourney(context.Background(), journeyID, now))

	mock.ExpectExec("UPDATE journeys SET status").
		WithArgs(models.JourneyStatusCompleted, now, journeyID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CompleteJourney(context.Background(), journeyID, now))

	mock.ExpectExec("UPDATE journeys SET status").
		WithArgs(models.JourneyStatusCancelled, now, journeyID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CancelJourney(context.Background(), journeyID, now))

	mock.ExpectExec("UPDATE journey_legs SET status").
		WithArgs(models.LegStatusInProgress, now, legID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.StartLeg(context.Background(), legID, now))

	mock.ExpectExec("UPDATE journey_legs SET status").
		WithArgs(models.LegStatusCompleted, now, legID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CompleteLeg(context.Background(), legID, now))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetLegFlag(t *testing.T) {
	repo, mock := newJourneyRepo(t)

	legID := uuid.New()

	mock.ExpectExec("UPDATE journey_legs SET transfer_alert_sent = TRUE").
		WithArgs(legID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetLegFlag(context.Background(), legID, models.FlagTransferAlertSent)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetLegFlag_RejectsUnknownColumn(t *testing.T) {
	repo, _ := newJourneyRepo(t)

	err := repo.SetLegFlag(context.Background(), uuid.New(), models.LegFlag("status"))
	assert.Error(t, err)
}
