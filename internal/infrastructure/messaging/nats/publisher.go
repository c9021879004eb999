// Package nats implements the event publisher port on top of NATS.
//
// Events are published as JSON envelopes on subjects derived from the
// event type, e.g. "peoplehub.person.created". Delivery is fire and
// forget; consumers must tolerate duplicates.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/domain/events"
)

// Config holds NATS connection settings.
type Config struct {
	URL           string
	SubjectPrefix string
	ClientName    string
}

// DefaultConfig returns settings for a local NATS server.
func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: "peoplehub",
		ClientName:    "peoplehub-api",
	}
}

// envelope is the wire format for published events.
type envelope struct {
	EventID     uuid.UUID       `json:"eventId"`
	EventType   string          `json:"eventType"`
	OccurredAt  time.Time       `json:"occurredAt"`
	AggregateID uuid.UUID       `json:"aggregateId"`
	Payload     json.RawMessage `json:"payload"`
}

func newEnvelope(event events.DomainEvent) (envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return envelope{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	return envelope{
		EventID:     event.EventID(),
		EventType:   event.EventType(),
		OccurredAt:  event.OccurredAt(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
	}, nil
}

// Publisher publishes domain events to NATS subjects.
type Publisher struct {
	conn   *nats.Conn
	prefix string
}

// Compile-time check
var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher connects to NATS and returns a ready publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		prefix: cfg.SubjectPrefix,
	}, nil
}

// NewPublisherWithConn wraps an existing connection. The caller owns the
// connection lifecycle.
func NewPublisherWithConn(conn *nats.Conn, subjectPrefix string) *Publisher {
	return &Publisher{
		conn:   conn,
		prefix: subjectPrefix,
	}
}

// Publish publishes one event.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	if err := p.conn.Publish(p.subject(event.EventType()), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.EventType(), err)
	}

	return nil
}

// PublishBatch publishes several events in one call.
// If any event fails the whole batch fails.
func (p *Publisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := p.Publish(ctx, event); err != nil {
			return err
		}
	}

	return p.conn.FlushWithContext(ctx)
}

// Close flushes buffered messages and drops the connection.
func (p *Publisher) Close() {
	if p.conn == nil {
		return
	}
	_ = p.conn.Flush()
	p.conn.Close()
}

func (p *Publisher) subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return p.prefix + "." + eventType
}
