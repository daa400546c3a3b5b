package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// LocationRepo defines the interface for location data access: the Redis
// last-known-location store and the Postgres places table.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/AvigateGroup/avigate-tracker/services/location LocationRepo
type LocationRepo interface {
	StoreUserLocation(ctx context.Context, userID string, location *models.Location, cell string) error
	GetUserLocation(ctx context.Context, userID string) (*models.Location, error)
	GetPlace(ctx context.Context, placeID uuid.UUID) (*models.Place, error)
}
