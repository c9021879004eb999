// Package services contains the application services that orchestrate
// domain entities, validators, repositories and events.
//
// Pattern: Application Service
// - One service per aggregate or API surface
// - Dependency injection through constructors
// - Validation happens before persistence; multi-entity writes compensate
//   already-persisted siblings on failure
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/domain/entities"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
	"github.com/Haleralex/peoplehub/internal/domain/events"
	"github.com/Haleralex/peoplehub/internal/domain/validation"
	"github.com/Haleralex/peoplehub/internal/domain/valueobjects"
)

// PersonService implements the v1 person aggregate: a person with zero or
// more addresses.
//
// Consistency model: person and addresses are persisted sequentially, not
// in one transaction. When an address fails validation during Create, the
// already-persisted person is deleted again (compensating delete) so no
// partial aggregate survives.
type PersonService struct {
	people           ports.PersonRepository
	addresses        ports.AddressRepository
	personValidator  *validation.PersonValidator
	addressValidator *validation.AddressValidator
	publisher        ports.EventPublisher
}

// NewPersonService wires the v1 person service.
func NewPersonService(
	people ports.PersonRepository,
	addresses ports.AddressRepository,
	personValidator *validation.PersonValidator,
	addressValidator *validation.AddressValidator,
	publisher ports.EventPublisher,
) *PersonService {
	return &PersonService{
		people:           people,
		addresses:        addresses,
		personValidator:  personValidator,
		addressValidator: addressValidator,
		publisher:        publisher,
	}
}

// GetAll returns every person with their addresses, newest first.
func (s *PersonService) GetAll(ctx context.Context) ([]dtos.PersonDTO, error) {
	people, err := s.people.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}
	result := make([]dtos.PersonDTO, 0, len(people))
	for _, person := range people {
		dto, err := s.assemble(ctx, person)
		if err != nil {
			return nil, err
		}
		result = append(result, dto)
	}
	return result, nil
}

// GetAllPaged returns one page of people with their addresses.
// A page past the end yields an empty item list.
func (s *PersonService) GetAllPaged(ctx context.Context, params dtos.PaginationParams) (dtos.PagedResult[dtos.PersonDTO], error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return dtos.PagedResult[dtos.PersonDTO]{}, err
	}
	return dtos.Paginate(all, params), nil
}

// GetByID returns one person with their addresses.
// Returns ErrEntityNotFound when the person does not exist.
func (s *PersonService) GetByID(ctx context.Context, id uuid.UUID) (*dtos.PersonDTO, error) {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto, err := s.assemble(ctx, person)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// GetByCPF returns the person registered under the given CPF.
// The lookup normalizes the document, so formatted and bare digits match.
func (s *PersonService) GetByCPF(ctx context.Context, cpf string) (*dtos.PersonDTO, error) {
	person, err := s.people.FindByCPF(ctx, valueobjects.NewCPF(cpf).Digits())
	if err != nil {
		return nil, err
	}
	dto, err := s.assemble(ctx, person)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Create registers a person together with the addresses in the request.
//
// Flow:
//  1. Validate the person (field rules + CPF uniqueness); nothing persisted on failure
//  2. Persist the person
//  3. For each address: validate, then persist. The first invalid address
//     deletes the person again and aborts: no partial aggregate survives
func (s *PersonService) Create(ctx context.Context, req dtos.CreatePersonRequest) (*dtos.PersonDTO, error) {
	person := entities.NewPerson(req.Nome, req.Sexo, req.Email, req.DataNascimento, req.Naturalidade, req.Nacionalidade, req.CPF)

	if err := s.personValidator.Validate(ctx, person); err != nil {
		return nil, err
	}
	if err := s.people.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to save person: %w", err)
	}

	addressDTOs := make([]dtos.AddressDTO, 0, len(req.Enderecos))
	for _, entry := range req.Enderecos {
		address := entities.NewAddress(entry.Logradouro, entry.Numero, entry.Complemento, entry.Bairro, entry.Cidade, entry.Estado, entry.CEP, person.ID())
		if err := s.addressValidator.Validate(ctx, address); err != nil {
			s.compensatePersonCreate(ctx, person.ID())
			return nil, err
		}
		if err := s.addresses.Save(ctx, address); err != nil {
			s.compensatePersonCreate(ctx, person.ID())
			return nil, fmt.Errorf("failed to save address: %w", err)
		}
		addressDTOs = append(addressDTOs, dtos.ToAddressDTO(address))
	}

	s.publish(ctx, events.NewPersonCreated(person.ID(), person.Name(), person.CPF().Digits()))

	dto := dtos.ToPersonDTO(person)
	dto.Enderecos = addressDTOs
	return &dto, nil
}

// Update changes a person's mutable fields and applies the address entries
// in the request. CPF never changes. Entries with an ID update the matching
// existing address; entries without an ID create new ones. Addresses not
// mentioned in the payload are left untouched and included in the result.
func (s *PersonService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePersonRequest) (*dtos.PersonDTO, error) {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	person.Update(req.Nome, req.Sexo, req.Email, req.DataNascimento, req.Naturalidade, req.Nacionalidade)
	if err := s.personValidator.Validate(ctx, person); err != nil {
		return nil, err
	}
	if err := s.people.Save(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to save person: %w", err)
	}

	current, err := s.addresses.FindByPersonID(ctx, person.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}

	touched := make(map[uuid.UUID]bool)
	addressDTOs := make([]dtos.AddressDTO, 0, len(current)+len(req.Enderecos))

	for _, entry := range req.Enderecos {
		if entry.ID != "" {
			addressID, parseErr := uuid.Parse(entry.ID)
			if parseErr != nil {
				return nil, domainerrors.NewValidationError("enderecos", "O ID do endereço não é válido.")
			}
			existing := findAddress(current, addressID)
			if existing == nil {
				// Entries pointing at someone else's address are skipped.
				continue
			}
			existing.Update(entry.Logradouro, entry.Numero, entry.Complemento, entry.Bairro, entry.Cidade, entry.Estado, entry.CEP)
			if err := s.addressValidator.Validate(ctx, existing); err != nil {
				return nil, err
			}
			if err := s.addresses.Save(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to save address: %w", err)
			}
			touched[existing.ID()] = true
			addressDTOs = append(addressDTOs, dtos.ToAddressDTO(existing))
			continue
		}

		created := entities.NewAddress(entry.Logradouro, entry.Numero, entry.Complemento, entry.Bairro, entry.Cidade, entry.Estado, entry.CEP, person.ID())
		if err := s.addressValidator.Validate(ctx, created); err != nil {
			return nil, err
		}
		if err := s.addresses.Save(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to save address: %w", err)
		}
		touched[created.ID()] = true
		addressDTOs = append(addressDTOs, dtos.ToAddressDTO(created))
	}

	for _, address := range current {
		if !touched[address.ID()] {
			addressDTOs = append(addressDTOs, dtos.ToAddressDTO(address))
		}
	}

	s.publish(ctx, events.NewPersonUpdated(person.ID(), person.Name()))

	dto := dtos.ToPersonDTO(person)
	dto.Enderecos = addressDTOs
	return &dto, nil
}

// Delete removes a person by ID. Owned addresses go with them through the
// store's cascading delete. Returns false when the person does not exist.
func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := s.people.FindByID(ctx, id); err != nil {
		if domainerrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := s.people.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}
	s.publish(ctx, events.NewPersonDeleted(id))
	return true, nil
}

// assemble attaches a person's addresses to their DTO.
func (s *PersonService) assemble(ctx context.Context, person *entities.Person) (dtos.PersonDTO, error) {
	addresses, err := s.addresses.FindByPersonID(ctx, person.ID())
	if err != nil {
		return dtos.PersonDTO{}, fmt.Errorf("failed to load addresses: %w", err)
	}
	dto := dtos.ToPersonDTO(person)
	dto.Enderecos = dtos.ToAddressDTOList(addresses)
	return dto, nil
}

func (s *PersonService) compensatePersonCreate(ctx context.Context, personID uuid.UUID) {
	compensatePersonDelete(ctx, s.people, personID)
}

func (s *PersonService) publish(ctx context.Context, event events.DomainEvent) {
	publishBestEffort(ctx, s.publisher, event)
}

// findAddress locates an address by ID in a loaded list.
func findAddress(addresses []*entities.Address, id uuid.UUID) *entities.Address {
	for _, address := range addresses {
		if address.ID() == id {
			return address
		}
	}
	return nil
}
