package journey

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

// JourneyRepo defines the interface for journey data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/AvigateGroup/avigate-tracker/services/journey JourneyRepo
type JourneyRepo interface {
	GetJourney(ctx context.Context, journeyID uuid.UUID) (*models.Journey, error)
	StartJourney(ctx context.Context, journeyID uuid.UUID, startedAt time.Time) error
	CompleteJourney(ctx context.Context, journeyID uuid.UUID, endedAt time.Time) error
	CancelJourney(ctx context.Context, journeyID uuid.UUID, endedAt time.Time) error
	StartLeg(ctx context.Context, legID uuid.UUID, startedAt time.Time) error
	CompleteLeg(ctx context.Context, legID uuid.UUID, completedAt time.Time) error
	SetLegFlag(ctx context.Context, legID uuid.UUID, flag models.LegFlag) error
}
