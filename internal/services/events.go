package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/postpal/postpal-server/internal/logger"
	"github.com/postpal/postpal-server/internal/models"
)

// Event operation names published by the services.
const (
	OpUserRegistered = "user_registered"
	OpScoreUpdated   = "score_updated"
	OpImageUploaded  = "image_uploaded"
)

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes an audit event to Kafka. Publishing is best
// effort: a nil writer or a broker failure is logged and never fails
// the calling operation.
func publishEvent(ctx context.Context, w EventWriter, userID uuid.UUID, operation string) {
	if w == nil {
		return
	}

	ev := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Operation: operation,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", ev.EventID, "operation", operation)
	}
}
