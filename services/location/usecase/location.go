package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/internal/utils"
	"github.com/AvigateGroup/avigate-tracker/services/location"
)

const (
	// locationFreshness is how old a stored fix may be before it is
	// treated as unavailable
	locationFreshness = 2 * time.Minute

	// geohashPrecision gives cells of roughly 150 m, enough for
	// neighborhood-level area queries
	geohashPrecision = 7
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg  *models.Config
	repo location.LocationRepo
}

// NewLocationUC creates a new location use case
func NewLocationUC(cfg *models.Config, repo location.LocationRepo) *LocationUC {
	return &LocationUC{
		cfg:  cfg,
		repo: repo,
	}
}

// UpdateUserLocation validates and stores a user's current location
func (uc *LocationUC) UpdateUserLocation(ctx context.Context, userID string, loc *models.Location) error {
	if userID == "" {
		return errors.New("user id is required")
	}
	if err := validateLocationData(loc); err != nil {
		return err
	}

	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}

	cell := utils.EncodeLocationCell(*loc, geohashPrecision)
	return uc.repo.StoreUserLocation(ctx, userID, loc, cell)
}

// GetLastKnownLocation returns the user's most recent fix. Stale fixes are
// treated as unavailable rather than replayed as current position.
func (uc *LocationUC) GetLastKnownLocation(ctx context.Context, userID string) (*models.Location, error) {
	loc, err := uc.repo.GetUserLocation(ctx, userID)
	if err != nil {
		return nil, err
	}

	if time.Since(loc.Timestamp) > locationFreshness {
		return nil, fmt.Errorf("location fix for user %s is stale: %w", userID, models.ErrLocationUnavailable)
	}

	return loc, nil
}

// ResolveLocation resolves a referenced place to its coordinates
func (uc *LocationUC) ResolveLocation(ctx context.Context, locationID uuid.UUID) (*models.Place, error) {
	place, err := uc.repo.GetPlace(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if place.Latitude == nil || place.Longitude == nil {
		return nil, fmt.Errorf("place %s has no coordinates: %w", locationID, models.ErrLocationUnavailable)
	}

	return place, nil
}

func validateLocationData(loc *models.Location) error {
	if loc == nil {
		return errors.New("location cannot be nil")
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}
