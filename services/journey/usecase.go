package journey

import (
	"context"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// JourneyUC defines the interface for journey tracking business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/AvigateGroup/avigate-tracker/services/journey JourneyUC
type JourneyUC interface {
	StartTracking(ctx context.Context, journeyID, userID uuid.UUID) error
	StopTracking(ctx context.Context, journeyID, userID uuid.UUID) error
	GetJourney(ctx context.Context, journeyID uuid.UUID) (*models.Journey, error)
	ActiveTrackerCount() int
	Shutdown()
}
