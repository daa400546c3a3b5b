package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// GetPlace retrieves a named place by id from Postgres
func (r *LocationRepo) GetPlace(ctx context.Context, placeID uuid.UUID) (*models.Place, error) {
	query := `
		SELECT place_id, name, latitude, longitude, landmark, city, state
		FROM places
		WHERE place_id = $1
	`

	row := r.db.QueryRowContext(ctx, query, placeID)

	place := &models.Place{}
	var latitude, longitude sql.NullFloat64
	var landmark, city, state sql.NullString

	err := row.Scan(
		&place.PlaceID,
		&place.Name,
		&latitude,
		&longitude,
		&landmark,
		&city,
		&state,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("place %s not found: %w", placeID, models.ErrLocationUnavailable)
		}
		return nil, err
	}

	if latitude.Valid {
		v := latitude.Float64
		place.Latitude = &v
	}
	if longitude.Valid {
		v := longitude.Float64
		place.Longitude = &v
	}
	if landmark.Valid {
		place.Landmark = landmark.String
	}
	if city.Valid {
		place.City = city.String
	}
	if state.Valid {
		place.State = state.String
	}

	return place, nil
}
