package nats

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haleralex/peoplehub/internal/domain/events"
)

func TestNewEnvelope(t *testing.T) {
	personID := uuid.New()
	event := events.NewPersonCreated(personID, "Maria Silva", "52998224725")

	env, err := newEnvelope(event)
	require.NoError(t, err)

	assert.Equal(t, event.EventID(), env.EventID)
	assert.Equal(t, "person.created", env.EventType)
	assert.Equal(t, personID, env.AggregateID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, "Maria Silva", payload["Name"])
	assert.Equal(t, "52998224725", payload["CPF"])
}

func TestEnvelopeWireFormat(t *testing.T) {
	event := events.NewAddressCreated(uuid.New(), uuid.New(), "São Paulo", "SP")

	env, err := newEnvelope(event)
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "eventId")
	assert.Contains(t, decoded, "eventType")
	assert.Contains(t, decoded, "occurredAt")
	assert.Contains(t, decoded, "aggregateId")
	assert.Contains(t, decoded, "payload")
}

func TestSubject(t *testing.T) {
	p := &Publisher{prefix: "peoplehub"}
	assert.Equal(t, "peoplehub.person.created", p.subject(events.EventTypePersonCreated))

	bare := &Publisher{}
	assert.Equal(t, "person.created", bare.subject(events.EventTypePersonCreated))
}
