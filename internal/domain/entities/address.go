package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/domain/valueobjects"
)

// Address is a postal address owned by exactly one Person.
// The owning person reference is immutable after creation.
type Address struct {
	id           uuid.UUID
	street       string // "logradouro"
	number       string
	complement   string
	neighborhood string // "bairro"
	city         string
	state        string // two-letter state code ("UF")
	cep          valueobjects.CEP
	personID     uuid.UUID
	createdAt    time.Time
	updatedAt    *time.Time
}

// NewAddress creates an Address bound to the given person.
func NewAddress(street, number, complement, neighborhood, city, state, cep string, personID uuid.UUID) *Address {
	return &Address{
		id:           uuid.New(),
		street:       street,
		number:       number,
		complement:   complement,
		neighborhood: neighborhood,
		city:         city,
		state:        state,
		cep:          valueobjects.NewCEP(cep),
		personID:     personID,
		createdAt:    time.Now(),
	}
}

// ReconstructAddress rebuilds an Address from stored data.
func ReconstructAddress(id uuid.UUID, street, number, complement, neighborhood, city, state, cep string,
	personID uuid.UUID, createdAt time.Time, updatedAt *time.Time) *Address {
	return &Address{
		id:           id,
		street:       street,
		number:       number,
		complement:   complement,
		neighborhood: neighborhood,
		city:         city,
		state:        state,
		cep:          valueobjects.NewCEP(cep),
		personID:     personID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the address identifier.
func (a *Address) ID() uuid.UUID { return a.id }

// Street returns the street line.
func (a *Address) Street() string { return a.street }

// Number returns the street number.
func (a *Address) Number() string { return a.number }

// Complement returns the optional complement line.
func (a *Address) Complement() string { return a.complement }

// Neighborhood returns the neighborhood.
func (a *Address) Neighborhood() string { return a.neighborhood }

// City returns the city.
func (a *Address) City() string { return a.city }

// State returns the two-letter state code.
func (a *Address) State() string { return a.state }

// CEP returns the postal code.
func (a *Address) CEP() valueobjects.CEP { return a.cep }

// PersonID returns the owning person's identifier.
func (a *Address) PersonID() uuid.UUID { return a.personID }

// CreatedAt returns the registration timestamp.
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last-update timestamp, nil if never updated.
func (a *Address) UpdatedAt() *time.Time { return a.updatedAt }

// Update overwrites the address fields and stamps the update time.
// The owning person never changes.
func (a *Address) Update(street, number, complement, neighborhood, city, state, cep string) {
	a.street = street
	a.number = number
	a.complement = complement
	a.neighborhood = neighborhood
	a.city = city
	a.state = state
	a.cep = valueobjects.NewCEP(cep)
	now := time.Now()
	a.updatedAt = &now
}
