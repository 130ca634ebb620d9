// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "studio/internal/delivery/context"
	"studio/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes record-created events. The record is already
// stored when it runs, so a failed publish is logged and swallowed.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) eventEmitter {
	return eventEmitter{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (e eventEmitter) emit(ctx context.Context, eventType string, entityID int64, summary string) {
	if e.publisher == nil {
		return
	}

	event := &service.StudioEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		EntityID:   entityID,
		Summary:    summary,
		OccurredAt: e.now().UTC(),
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		deliverycontext.LoggerFrom(ctx, e.logger).Warn("Failed to publish event",
			slog.String("type", eventType),
			slog.Int64("entity_id", entityID),
			slog.Any("error", err),
		)
	}
}
