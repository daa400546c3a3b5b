package journey

import (
	"context"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// NotificationGW defines the interface for dispatching notifications to the
// downstream notifier service
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/AvigateGroup/avigate-tracker/services/journey NotificationGW
type NotificationGW interface {
	SendNotification(ctx context.Context, notification *models.Notification) error
}

// LocationProvider defines the interface for reading a traveler's last known
// location
type LocationProvider interface {
	GetLastKnownLocation(ctx context.Context, userID string) (*models.Location, error)
}

// LocationResolver defines the interface for resolving referenced places to
// coordinates
type LocationResolver interface {
	ResolveLocation(ctx context.Context, locationID uuid.UUID) (*models.Place, error)
}
