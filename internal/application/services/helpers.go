package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/domain/events"
	"github.com/Haleralex/peoplehub/internal/pkg/logger"
)

// compensatePersonDelete removes a person whose aggregate could not be
// completed. A failed compensation is logged, not returned: the caller
// already carries the original error.
func compensatePersonDelete(ctx context.Context, people ports.PersonRepository, personID uuid.UUID) {
	if err := people.Delete(ctx, personID); err != nil {
		logger.FromContext(ctx).Error("compensating person delete failed",
			"person_id", personID.String(),
			"error", err,
		)
	}
}

// publishBestEffort sends an event without letting delivery problems fail
// an already-completed operation.
func publishBestEffort(ctx context.Context, publisher ports.EventPublisher, event events.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn("failed to publish event",
			"event_type", event.EventType(),
			"aggregate_id", event.AggregateID().String(),
			"error", err,
		)
	}
}
