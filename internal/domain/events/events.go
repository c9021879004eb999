// Package events defines domain events that represent significant business occurrences.
// Events are immutable facts about what happened in the past.
//
// Pattern: Domain Events (Observer Pattern foundation)
// - Events are raised by services after state changes are persisted
// - Handlers can react asynchronously
// - Enables loose coupling between domain modules
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the base interface for all domain events.
// All events must have an ID, timestamp, and type.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID // ID of the entity that raised this event
}

// BaseEvent provides common fields for all events.
// Embedded in specific event types to avoid duplication.
type BaseEvent struct {
	eventID     uuid.UUID
	eventType   string
	occurredAt  time.Time
	aggregateID uuid.UUID
}

func newBaseEvent(eventType string, aggregateID uuid.UUID) BaseEvent {
	return BaseEvent{
		eventID:     uuid.New(),
		eventType:   eventType,
		occurredAt:  time.Now(),
		aggregateID: aggregateID,
	}
}

func (e BaseEvent) EventID() uuid.UUID {
	return e.eventID
}

func (e BaseEvent) EventType() string {
	return e.eventType
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e BaseEvent) AggregateID() uuid.UUID {
	return e.aggregateID
}

// Event Types (constants for type checking)
const (
	EventTypePersonCreated  = "person.created"
	EventTypePersonUpdated  = "person.updated"
	EventTypePersonDeleted  = "person.deleted"
	EventTypeAddressCreated = "address.created"
	EventTypeAddressUpdated = "address.updated"
	EventTypeAddressDeleted = "address.deleted"
	EventTypeUserRegistered = "user.registered"
)

// ===== Person Events =====

// PersonCreated is raised when a new person is registered.
type PersonCreated struct {
	BaseEvent
	Name string
	CPF  string
}

func NewPersonCreated(personID uuid.UUID, name, cpf string) *PersonCreated {
	return &PersonCreated{
		BaseEvent: newBaseEvent(EventTypePersonCreated, personID),
		Name:      name,
		CPF:       cpf,
	}
}

// PersonUpdated is raised when a person's data changes.
type PersonUpdated struct {
	BaseEvent
	Name string
}

func NewPersonUpdated(personID uuid.UUID, name string) *PersonUpdated {
	return &PersonUpdated{
		BaseEvent: newBaseEvent(EventTypePersonUpdated, personID),
		Name:      name,
	}
}

// PersonDeleted is raised when a person is removed.
// Consumers should treat the person's addresses as gone too.
type PersonDeleted struct {
	BaseEvent
}

func NewPersonDeleted(personID uuid.UUID) *PersonDeleted {
	return &PersonDeleted{
		BaseEvent: newBaseEvent(EventTypePersonDeleted, personID),
	}
}

// ===== Address Events =====

// AddressCreated is raised when an address is attached to a person.
type AddressCreated struct {
	BaseEvent
	PersonID uuid.UUID
	City     string
	State    string
}

func NewAddressCreated(addressID, personID uuid.UUID, city, state string) *AddressCreated {
	return &AddressCreated{
		BaseEvent: newBaseEvent(EventTypeAddressCreated, addressID),
		PersonID:  personID,
		City:      city,
		State:     state,
	}
}

// AddressUpdated is raised when an address changes.
type AddressUpdated struct {
	BaseEvent
	PersonID uuid.UUID
}

func NewAddressUpdated(addressID, personID uuid.UUID) *AddressUpdated {
	return &AddressUpdated{
		BaseEvent: newBaseEvent(EventTypeAddressUpdated, addressID),
		PersonID:  personID,
	}
}

// AddressDeleted is raised when an address is removed.
type AddressDeleted struct {
	BaseEvent
	PersonID uuid.UUID
}

func NewAddressDeleted(addressID, personID uuid.UUID) *AddressDeleted {
	return &AddressDeleted{
		BaseEvent: newBaseEvent(EventTypeAddressDeleted, addressID),
		PersonID:  personID,
	}
}

// ===== User Events =====

// UserRegistered is raised when a new authentication user is created.
type UserRegistered struct {
	BaseEvent
	Email string
	Name  string
}

func NewUserRegistered(userID uuid.UUID, email, name string) *UserRegistered {
	return &UserRegistered{
		BaseEvent: newBaseEvent(EventTypeUserRegistered, userID),
		Email:     email,
		Name:      name,
	}
}
