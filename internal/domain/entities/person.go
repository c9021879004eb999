// Package entities contains domain entities with identity and lifecycle.
// Entities are mutable and compared by their ID, not by their attributes.
//
// Entities here deliberately do not self-validate on construction: the
// registry accepts whatever the caller submits and reports every broken rule
// through the validators in internal/domain/validation. Construction only
// establishes identity and audit timestamps.
package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/domain/valueobjects"
)

// Person is the primary individual record of the registry.
//
// A person owns zero or more addresses by foreign reference only: Address
// holds the owning person's ID, and the address list is assembled on read.
// CPF is immutable after creation and globally unique across all persons
// (uniqueness is a validator/repository concern).
type Person struct {
	id          uuid.UUID // Identity - never changes
	name        string
	sex         string
	email       string
	birthDate   time.Time
	birthPlace  string // "naturalidade"
	nationality string
	cpf         valueobjects.CPF
	createdAt   time.Time
	updatedAt   *time.Time // nil until the first mutation
}

// NewPerson creates a Person with a fresh identity and registration timestamp.
func NewPerson(name, sex, email string, birthDate time.Time, birthPlace, nationality, cpf string) *Person {
	return &Person{
		id:          uuid.New(),
		name:        name,
		sex:         sex,
		email:       email,
		birthDate:   birthDate,
		birthPlace:  birthPlace,
		nationality: nationality,
		cpf:         valueobjects.NewCPF(cpf),
		createdAt:   time.Now(),
	}
}

// ReconstructPerson rebuilds a Person from stored data.
// Used by the repository layer to hydrate entities. No validation.
func ReconstructPerson(id uuid.UUID, name, sex, email string, birthDate time.Time,
	birthPlace, nationality, cpf string, createdAt time.Time, updatedAt *time.Time) *Person {
	return &Person{
		id:          id,
		name:        name,
		sex:         sex,
		email:       email,
		birthDate:   birthDate,
		birthPlace:  birthPlace,
		nationality: nationality,
		cpf:         valueobjects.NewCPF(cpf),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the person's unique identifier.
func (p *Person) ID() uuid.UUID { return p.id }

// Name returns the person's full name.
func (p *Person) Name() string { return p.name }

// Sex returns the person's declared sex.
func (p *Person) Sex() string { return p.sex }

// Email returns the person's email, possibly empty.
func (p *Person) Email() string { return p.email }

// BirthDate returns the person's birth date.
func (p *Person) BirthDate() time.Time { return p.birthDate }

// BirthPlace returns the person's place of birth.
func (p *Person) BirthPlace() string { return p.birthPlace }

// Nationality returns the person's nationality.
func (p *Person) Nationality() string { return p.nationality }

// CPF returns the person's national identifier.
func (p *Person) CPF() valueobjects.CPF { return p.cpf }

// CreatedAt returns the registration timestamp.
func (p *Person) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last-update timestamp, nil if never updated.
func (p *Person) UpdatedAt() *time.Time { return p.updatedAt }

// Update overwrites the mutable fields and stamps the update time.
// CPF is not part of the update surface: the national identifier cannot
// change once registered.
func (p *Person) Update(name, sex, email string, birthDate time.Time, birthPlace, nationality string) {
	p.name = name
	p.sex = sex
	p.email = email
	p.birthDate = birthDate
	p.birthPlace = birthPlace
	p.nationality = nationality
	now := time.Now()
	p.updatedAt = &now
}
