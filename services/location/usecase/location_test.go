package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	"github.com/AvigateGroup/avigate-tracker/services/location/mocks"
)

func TestUpdateUserLocation_StoresWithGeohashCell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	loc := &models.Location{Latitude: 6.5244, Longitude: 3.3792}

	mockRepo.EXPECT().
		StoreUserLocation(gomock.Any(), "user-1", loc, gomock.Len(geohashPrecision)).
		Return(nil)

	err := uc.UpdateUserLocation(context.Background(), "user-1", loc)
	require.NoError(t, err)
	assert.False(t, loc.Timestamp.IsZero())
}

func TestUpdateUserLocation_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	tests := []struct {
		name   string
		userID string
		loc    *models.Location
	}{
		{name: "missing user id", userID: "", loc: &models.Location{Latitude: 6.5, Longitude: 3.3}},
		{name: "nil location", userID: "user-1", loc: nil},
		{name: "latitude out of range", userID: "user-1", loc: &models.Location{Latitude: 91, Longitude: 3.3}},
		{name: "longitude out of range", userID: "user-1", loc: &models.Location{Latitude: 6.5, Longitude: 181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.UpdateUserLocation(context.Background(), tt.userID, tt.loc)
			assert.Error(t, err)
		})
	}
}

func TestGetLastKnownLocation_FreshFix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	stored := &models.Location{
		Latitude:  6.5244,
		Longitude: 3.3792,
		Timestamp: time.Now().Add(-30 * time.Second),
	}
	mockRepo.EXPECT().GetUserLocation(gomock.Any(), "user-1").Return(stored, nil)

	loc, err := uc.GetLastKnownLocation(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, loc)
}

func TestGetLastKnownLocation_StaleFixUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	stored := &models.Location{
		Latitude:  6.5244,
		Longitude: 3.3792,
		Timestamp: time.Now().Add(-5 * time.Minute),
	}
	mockRepo.EXPECT().GetUserLocation(gomock.Any(), "user-1").Return(stored, nil)

	_, err := uc.GetLastKnownLocation(context.Background(), "user-1")
	assert.ErrorIs(t, err, models.ErrLocationUnavailable)
}

func TestGetLastKnownLocation_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	mockRepo.EXPECT().GetUserLocation(gomock.Any(), "user-1").
		Return(nil, models.ErrLocationUnavailable)

	_, err := uc.GetLastKnownLocation(context.Background(), "user-1")
	assert.ErrorIs(t, err, models.ErrLocationUnavailable)
}

func TestResolveLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	placeID := uuid.New()
	lat, lng := 6.4434, 3.4145
	place := &models.Place{
		PlaceID:   placeID.String(),
		Name:      "Obalende Motor Park",
		Latitude:  &lat,
		Longitude: &lng,
	}
	mockRepo.EXPECT().GetPlace(gomock.Any(), placeID).Return(place, nil)

	resolved, err := uc.ResolveLocation(context.Background(), placeID)
	require.NoError(t, err)
	assert.Equal(t, place, resolved)
}

func TestResolveLocation_MissingCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	placeID := uuid.New()
	mockRepo.EXPECT().GetPlace(gomock.Any(), placeID).
		Return(&models.Place{PlaceID: placeID.String(), Name: "Unmapped junction"}, nil)

	_, err := uc.ResolveLocation(context.Background(), placeID)
	assert.ErrorIs(t, err, models.ErrLocationUnavailable)
}

func TestResolveLocation_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	uc := NewLocationUC(&models.Config{}, mockRepo)

	placeID := uuid.New()
	mockRepo.EXPECT().GetPlace(gomock.Any(), placeID).
		Return(nil, errors.New("connection refused"))

	_, err := uc.ResolveLocation(context.Background(), placeID)
	assert.Error(t, err)
}
