package ports

import (
	"context"

	"github.com/Haleralex/peoplehub/internal/domain/events"
)

// EventPublisher defines the contract for publishing domain events.
//
// Implementations:
// - NATS (production)
// - In-memory (tests)
//
// Delivery is at-least-once; consumers must be idempotent.
type EventPublisher interface {
	// Publish publishes one event.
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch publishes several events in one call.
	// If any event fails the whole batch fails.
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// EventHandler processes a single event.
type EventHandler func(ctx context.Context, event events.DomainEvent) error
