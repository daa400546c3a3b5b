package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// JourneyRepo implements the journey.JourneyRepo interface over Postgres
type JourneyRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewJourneyRepository creates a new journey repository
func NewJourneyRepository(cfg *models.Config, db *sqlx.DB) *JourneyRepo {
	return &JourneyRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetJourney retrieves a journey with its legs and stop geometry eagerly
// loaded. Legs and stops come back ordered by position.
func (r *JourneyRepo) GetJourney(ctx context.Context, journeyID uuid.UUID) (*models.Journey, error) {
	query := `
		SELECT
			journey_id, user_id, status,
			origin_name, origin_latitude, origin_longitude,
			destination_name, destination_latitude, destination_longitude,
			destination_landmark,
			started_at, ended_at, created_at
		FROM journeys
		WHERE journey_id = $1
	`

	row := r.db.QueryRowContext(ctx, query, journeyID)

	j := &models.Journey{}
	var landmark sql.NullString
	var startedAt, endedAt sql.NullTime

	err := row.Scan(
		&j.JourneyID,
		&j.UserID,
		&j.Status,
		&j.OriginName,
		&j.OriginLatitude,
		&j.OriginLongitude,
		&j.DestinationName,
		&j.DestinationLatitude,
		&j.DestinationLongitude,
		&landmark,
		&startedAt,
		&endedAt,
		&j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journey %s: %w", journeyID, models.ErrJourneyNotFound)
		}
		return nil, err
	}

	if landmark.Valid {
		j.DestinationLandmark = landmark.String
	}
	if startedAt.Valid {
		j.StartedAt = &startedAt.Time
	}
	if endedAt.Valid {
		j.EndedAt = &endedAt.Time
	}

	legs, err := r.getLegs(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	j.Legs = legs

	return j, nil
}

// getLegs loads the ordered legs of a journey and attaches their stops
func (r *JourneyRepo) getLegs(ctx context.Context, journeyID uuid.UUID) ([]*models.JourneyLeg, error) {
	query := `
		SELECT
			leg_id, journey_id, position, mode,
			fare_min, fare_max, estimated_minutes,
			start_name, start_latitude, start_longitude,
			end_name, end_latitude, end_longitude,
			status,
			transfer_alert_sent, transfer_imminent_sent, destination_alert_sent,
			started_at, completed_at
		FROM journey_legs
		WHERE journey_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, journeyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var legs []*models.JourneyLeg
	for rows.Next() {
		leg := &models.JourneyLeg{}
		var startedAt, completedAt sql.NullTime

		err := rows.Scan(
			&leg.LegID,
			&leg.JourneyID,
			&leg.Position,
			&leg.Mode,
			&leg.FareMin,
			&leg.FareMax,
			&leg.EstimatedMinutes,
			&leg.Segment.StartName,
			&leg.Segment.StartLatitude,
			&leg.Segment.StartLongitude,
			&leg.Segment.EndName,
			&leg.Segment.EndLatitude,
			&leg.Segment.EndLongitude,
			&leg.Status,
			&leg.TransferAlertSent,
			&leg.TransferImminentSent,
			&leg.DestinationAlertSent,
			&startedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		if startedAt.Valid {
			leg.StartedAt = &startedAt.Time
		}
		if completedAt.Valid {
			leg.CompletedAt = &completedAt.Time
		}

		legs = append(legs, leg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(legs) == 0 {
		return legs, nil
	}

	legIDs := make([]uuid.UUID, 0, len(legs))
	byID := make(map[uuid.UUID]*models.JourneyLeg, len(legs))
	for _, leg := range legs {
		legIDs = append(legIDs, leg.LegID)
		byID[leg.LegID] = leg
	}

	stops, err := r.getStops(ctx, legIDs)
	if err != nil {
		return nil, err
	}
	for legID, legStops := range stops {
		if leg, ok := byID[legID]; ok {
			leg.Segment.Stops = legStops
		}
	}

	return legs, nil
}

// getStops loads intermediate stops for a set of legs, keyed by leg id
func (r *JourneyRepo) getStops(ctx context.Context, legIDs []uuid.UUID) (map[uuid.UUID][]models.Stop, error) {
	query, args, err := sqlx.In(`
		SELECT leg_id, name, location_id, latitude, longitude, position
		FROM leg_stops
		WHERE leg_id IN (?)
		ORDER BY leg_id, position ASC
	`, legIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := make(map[uuid.UUID][]models.Stop)
	for rows.Next() {
		var legID uuid.UUID
		var stop models.Stop
		var locationID uuid.NullUUID
		var latitude, longitude sql.NullFloat64

		err := rows.Scan(&legID, &stop.Name, &locationID, &latitude, &longitude, &stop.Position)
		if err != nil {
			return nil, err
		}

		if locationID.Valid {
			id := locationID.UUID
			stop.LocationID = &id
		}
		if latitude.Valid {
			v := latitude.Float64
			stop.Latitude = &v
		}
		if longitude.Valid {
			v := longitude.Float64
			stop.Longitude = &v
		}

		stops[legID] = append(stops[legID], stop)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}

// StartJourney marks a journey in progress with its actual start time
func (r *JourneyRepo) StartJourney(ctx context.Context, journeyID uuid.UUID, startedAt time.Time) error {
	query := `UPDATE journeys SET status = $1, started_at = $2 WHERE journey_id = $3`

	_, err := r.db.ExecContext(ctx, query, models.JourneyStatusInProgress, startedAt, journeyID)
	return err
}

// CompleteJourney marks a journey completed with its actual end time
func (r *JourneyRepo) CompleteJourney(ctx context.Context, journeyID uuid.UUID, endedAt time.Time) error {
	query := `UPDATE journeys SET status = $1, ended_at = $2 WHERE journey_id = $3`

	_, err := r.db.ExecContext(ctx, query, models.JourneyStatusCompleted, endedAt, journeyID)
	return err
}

// CancelJourney marks a journey cancelled with its actual end time
func (r *JourneyRepo) CancelJourney(ctx context.Context, journeyID uuid.UUID, endedAt time.Time) error {
	query := `UPDATE journeys SET status = $1, ended_at = $2 WHERE journey_id = $3`

	_, err := r.db.ExecContext(ctx, query, models.JourneyStatusCancelled, endedAt, journeyID)
	return err
}

// StartLeg marks a leg in progress with its actual start time
func (r *JourneyRepo) StartLeg(ctx context.Context, legID uuid.UUID, startedAt time.Time) error {
	query := `UPDATE journey_legs SET status = $1, started_at = $2 WHERE leg_id = $3`

	_, err := r.db.ExecContext(ctx, query, models.LegStatusInProgress, startedAt, legID)
	return err
}

// CompleteLeg marks a leg completed with its actual end time
func (r *JourneyRepo) CompleteLeg(ctx context.Context, legID uuid.UUID, completedAt time.Time) error {
	query := `UPDATE journey_legs SET status = $1, completed_at = $2 WHERE leg_id = $3`

	_, err := r.db.ExecContext(ctx, query, models.LegStatusCompleted, completedAt, legID)
	return err
}

// SetLegFlag sets one of the one-shot notification flags on a leg. The flag
// name is whitelisted against known columns; flags are only ever set true.
func (r *JourneyRepo) SetLegFlag(ctx context.Context, legID uuid.UUID, flag models.LegFlag) error {
	columnMap := map[models.LegFlag]string{
		models.FlagTransferAlertSent:    "transfer_alert_sent",
		models.FlagTransferImminentSent: "transfer_imminent_sent",
		models.FlagDestinationAlertSent: "destination_alert_sent",
	}

	column, ok := columnMap[flag]
	if !ok {
		return fmt.Errorf("invalid leg flag: %s", flag)
	}

	query := fmt.Sprintf("UPDATE journey_legs SET %s = TRUE WHERE leg_id = $1", column)

	_, err := r.db.ExecContext(ctx, query, legID)
	return err
}
