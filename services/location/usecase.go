package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// LocationUC defines the interface for location business logic. It covers
// both the ingest path (location updates) and the read paths the journey
// tracker depends on.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/AvigateGroup/avigate-tracker/services/location LocationUC
type LocationUC interface {
	UpdateUserLocation(ctx context.Context, userID string, location *models.Location) error
	GetLastKnownLocation(ctx context.Context, userID string) (*models.Location, error)
	ResolveLocation(ctx context.Context, locationID uuid.UUID) (*models.Place, error)
}
