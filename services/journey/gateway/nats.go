package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/constants"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
	natspkg "github.com/AvigateGroup/avigate-tracker/internal/pkg/nats"
	"github.com/AvigateGroup/avigate-tracker/services/journey"
)

// pushEnvelope is the wire format consumed by the downstream notifier
type pushEnvelope struct {
	UserID  string                     `json:"user_id"`
	Title   string                     `json:"title"`
	Body    string                     `json:"body"`
	Type    models.NotificationKind    `json:"type"`
	Payload models.NotificationPayload `json:"payload"`
}

type notificationGW struct {
	publisher natspkg.Publisher
}

// NewNotificationGW creates a new NATS-backed notification gateway
func NewNotificationGW(publisher natspkg.Publisher) journey.NotificationGW {
	return &notificationGW{
		publisher: publisher,
	}
}

// SendNotification publishes a notification to the per-kind push subject
// notify.push.{kind}. Delivery and retries belong to the notifier service.
func (g *notificationGW) SendNotification(ctx context.Context, notification *models.Notification) error {
	if notification == nil || notification.Payload == nil {
		return fmt.Errorf("notification payload is required")
	}

	envelope := pushEnvelope{
		UserID:  notification.UserID,
		Title:   notification.Title,
		Body:    notification.Body,
		Type:    notification.Kind(),
		Payload: notification.Payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	subject := constants.SubjectNotifyPushPrefix + string(notification.Kind())
	return g.publisher.Publish(subject, data)
}
