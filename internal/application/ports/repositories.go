// Package ports defines the interfaces (ports) for external dependencies.
// The infrastructure layer provides the implementations.
//
// Pattern: Repository Pattern + Ports & Adapters (Hexagonal Architecture)
// - The application layer depends on abstractions, not concrete stores
// - Each interface focuses on one entity
// - Easy to mock for tests
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/domain/entities"
)

// PersonRepository defines the persistence contract for people.
type PersonRepository interface {
	// Save persists a person (create or update, upsert by ID).
	Save(ctx context.Context, person *entities.Person) error

	// FindByID loads a person by ID.
	// Returns ErrEntityNotFound when no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error)

	// FindByCPF loads a person by CPF digits.
	FindByCPF(ctx context.Context, cpf string) (*entities.Person, error)

	// FindAll returns every person, newest first.
	FindAll(ctx context.Context) ([]*entities.Person, error)

	// List returns a page of people, newest first.
	List(ctx context.Context, offset, limit int) ([]*entities.Person, error)

	// Count returns the total number of people.
	Count(ctx context.Context) (int64, error)

	// CPFExists checks whether another person already holds this CPF.
	// The row with excludeID is ignored so updates don't collide with themselves.
	CPFExists(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error)

	// Delete removes a person by ID.
	// Returns ErrEntityNotFound when no row exists.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository defines the persistence contract for addresses.
type AddressRepository interface {
	// Save persists an address (create or update, upsert by ID).
	Save(ctx context.Context, address *entities.Address) error

	// FindByID loads an address by ID.
	// Returns ErrEntityNotFound when no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Address, error)

	// FindAll returns every address, oldest first.
	FindAll(ctx context.Context) ([]*entities.Address, error)

	// FindByPersonID returns every address of a person, oldest first.
	FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*entities.Address, error)

	// ListByPersonID returns a page of a person's addresses, oldest first.
	ListByPersonID(ctx context.Context, personID uuid.UUID, offset, limit int) ([]*entities.Address, error)

	// CountByPersonID returns how many addresses a person has.
	CountByPersonID(ctx context.Context, personID uuid.UUID) (int64, error)

	// Delete removes an address by ID.
	// Returns ErrEntityNotFound when no row exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPersonID removes every address of a person.
	// Deleting zero rows is not an error.
	DeleteByPersonID(ctx context.Context, personID uuid.UUID) error
}

// UserRepository defines the persistence contract for authentication users.
type UserRepository interface {
	// Save persists a user (create or update, upsert by ID).
	Save(ctx context.Context, user *entities.User) error

	// FindByID loads a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByEmail loads a user by login email.
	// Email is unique in the system.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// ExistsByEmail checks existence without loading the entity.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
