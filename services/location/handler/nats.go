package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/constants"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	natspkg "github.com/AvigateGroup/avigate-tracker/internal/pkg/nats"
)

// InitNATSConsumers initializes all NATS consumers for the location service
func (h *Handler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumer(
		constants.SubjectLocationUpdate,
		"journey-tracker",
		h.cfg.NATS.URL,
		h.handleLocationUpdate,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize location update consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	return nil
}

// StopNATSConsumers stops all running consumers
func (h *Handler) StopNATSConsumers() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

// handleLocationUpdate processes location update events from the mobile apps
func (h *Handler) handleLocationUpdate(msg []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Warn("Failed to unmarshal location update", logger.Err(err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.locationUC.UpdateUserLocation(ctx, update.UserID, &update.Location); err != nil {
		logger.Warn("Failed to store location update",
			logger.String("user_id", update.UserID),
			logger.Err(err))
		return err
	}

	return nil
}
