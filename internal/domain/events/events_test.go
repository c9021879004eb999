package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPersonCreated(t *testing.T) {
	personID := uuid.New()

	event := NewPersonCreated(personID, "Maria Silva", "52998224725")

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, EventTypePersonCreated, event.EventType())
	assert.Equal(t, personID, event.AggregateID())
	assert.Equal(t, "Maria Silva", event.Name)
	assert.Equal(t, "52998224725", event.CPF)
	assert.WithinDuration(t, time.Now(), event.OccurredAt(), time.Second)
}

func TestNewAddressCreated(t *testing.T) {
	addressID := uuid.New()
	personID := uuid.New()

	event := NewAddressCreated(addressID, personID, "São Paulo", "SP")

	assert.Equal(t, EventTypeAddressCreated, event.EventType())
	assert.Equal(t, addressID, event.AggregateID())
	assert.Equal(t, personID, event.PersonID)
	assert.Equal(t, "São Paulo", event.City)
	assert.Equal(t, "SP", event.State)
}

func TestEventIDsAreUnique(t *testing.T) {
	personID := uuid.New()

	first := NewPersonDeleted(personID)
	second := NewPersonDeleted(personID)

	assert.NotEqual(t, first.EventID(), second.EventID())
}
