package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/constants"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/database"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// locationTTL bounds how long a fix stays readable; anything older has no
// value to the tracker
const locationTTL = 30 * time.Minute

// LocationRepo implements the location.LocationRepo interface. Last known
// positions live in Redis; the places table lives in Postgres.
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
	db    *sqlx.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, redis *database.RedisClient, db *sqlx.DB) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		redis: redis,
		db:    db,
	}
}

// StoreUserLocation writes the user's fix to the per-user hash and the shared
// geo set
func (r *LocationRepo) StoreUserLocation(ctx context.Context, userID string, location *models.Location, cell string) error {
	key := fmt.Sprintf(constants.KeyUserLocation, userID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: location.Timestamp.UTC().Format(time.RFC3339),
		constants.FieldGeoCell:   cell,
	}

	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store user location: %w", err)
	}
	if err := r.redis.Expire(ctx, key, locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyUserGeo, location.Longitude, location.Latitude, userID); err != nil {
		return fmt.Errorf("failed to update geo set: %w", err)
	}

	return nil
}

// GetUserLocation reads the user's last stored fix. A missing or partial hash
// reads as unavailable.
func (r *LocationRepo) GetUserLocation(ctx context.Context, userID string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyUserLocation, userID)

	values, err := r.redis.HMGet(ctx, key,
		constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to read user location: %w", err)
	}

	if values[0] == "" || values[1] == "" {
		return nil, fmt.Errorf("no location stored for user %s: %w", userID, models.ErrLocationUnavailable)
	}

	latitude, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored latitude for user %s: %w", userID, err)
	}
	longitude, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored longitude for user %s: %w", userID, err)
	}

	location := &models.Location{
		Latitude:  latitude,
		Longitude: longitude,
	}
	if values[2] != "" {
		if ts, err := time.Parse(time.RFC3339, values[2]); err == nil {
			location.Timestamp = ts
		}
	}

	return location, nil
}
