package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/domain/entities"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
	"github.com/Haleralex/peoplehub/internal/domain/events"
	"github.com/Haleralex/peoplehub/internal/domain/validation"
)

// AddressService manages addresses as standalone resources.
// Every address still belongs to an existing person; creating one against
// an unknown person fails before anything is persisted.
type AddressService struct {
	addresses ports.AddressRepository
	people    ports.PersonRepository
	validator *validation.AddressValidator
	publisher ports.EventPublisher
}

// NewAddressService wires the address service.
func NewAddressService(
	addresses ports.AddressRepository,
	people ports.PersonRepository,
	validator *validation.AddressValidator,
	publisher ports.EventPublisher,
) *AddressService {
	return &AddressService{
		addresses: addresses,
		people:    people,
		validator: validator,
		publisher: publisher,
	}
}

// GetAll returns every address.
func (s *AddressService) GetAll(ctx context.Context) ([]dtos.AddressDTO, error) {
	addresses, err := s.addresses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}
	return dtos.ToAddressDTOList(addresses), nil
}

// GetByID returns one address.
// Returns ErrEntityNotFound when it does not exist.
func (s *AddressService) GetByID(ctx context.Context, id uuid.UUID) (*dtos.AddressDTO, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := dtos.ToAddressDTO(address)
	return &dto, nil
}

// GetByPersonID returns every address of a person.
func (s *AddressService) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]dtos.AddressDTO, error) {
	addresses, err := s.addresses.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}
	return dtos.ToAddressDTOList(addresses), nil
}

// GetByPersonIDPaged returns one page of a person's addresses using
// store-side slicing.
func (s *AddressService) GetByPersonIDPaged(ctx context.Context, personID uuid.UUID, params dtos.PaginationParams) (dtos.PagedResult[dtos.AddressDTO], error) {
	params = params.Normalize()

	total, err := s.addresses.CountByPersonID(ctx, personID)
	if err != nil {
		return dtos.PagedResult[dtos.AddressDTO]{}, fmt.Errorf("failed to count addresses: %w", err)
	}
	addresses, err := s.addresses.ListByPersonID(ctx, personID, params.Offset(), params.PageSize)
	if err != nil {
		return dtos.PagedResult[dtos.AddressDTO]{}, fmt.Errorf("failed to load addresses: %w", err)
	}
	return dtos.NewPagedResult(dtos.ToAddressDTOList(addresses), int(total), params.PageNumber, params.PageSize), nil
}

// Search filters addresses by city, state and CEP. Empty criteria match
// everything; city matching is case-insensitive.
func (s *AddressService) Search(ctx context.Context, criteria dtos.AddressSearchRequest) ([]dtos.AddressDTO, error) {
	addresses, err := s.addresses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}

	// Hyphenated and bare CEPs refer to the same code
	wantCEP := strings.ReplaceAll(criteria.CEP, "-", "")
	result := make([]dtos.AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		if criteria.Cidade != "" && !strings.EqualFold(address.City(), criteria.Cidade) {
			continue
		}
		if criteria.Estado != "" && !strings.EqualFold(address.State(), criteria.Estado) {
			continue
		}
		if wantCEP != "" && strings.ReplaceAll(address.CEP().String(), "-", "") != wantCEP {
			continue
		}
		result = append(result, dtos.ToAddressDTO(address))
	}
	return result, nil
}

// Create attaches a new address to an existing person.
func (s *AddressService) Create(ctx context.Context, req dtos.CreateAddressRequest) (*dtos.AddressDTO, error) {
	personID, err := uuid.Parse(req.PessoaID)
	if err != nil {
		return nil, domainerrors.NewValidationError("pessoaId", "O ID da pessoa é obrigatório.")
	}
	if _, err := s.people.FindByID(ctx, personID); err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.NewValidationError("pessoaId", "Pessoa não encontrada.")
		}
		return nil, err
	}

	address := entities.NewAddress(req.Logradouro, req.Numero, req.Complemento, req.Bairro, req.Cidade, req.Estado, req.CEP, personID)
	if err := s.validator.Validate(ctx, address); err != nil {
		return nil, err
	}
	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}

	publishBestEffort(ctx, s.publisher, events.NewAddressCreated(address.ID(), personID, address.City(), address.State()))

	dto := dtos.ToAddressDTO(address)
	return &dto, nil
}

// Update changes an existing address. Ownership never moves.
func (s *AddressService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateAddressRequest) (*dtos.AddressDTO, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	address.Update(req.Logradouro, req.Numero, req.Complemento, req.Bairro, req.Cidade, req.Estado, req.CEP)
	if err := s.validator.Validate(ctx, address); err != nil {
		return nil, err
	}
	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}

	publishBestEffort(ctx, s.publisher, events.NewAddressUpdated(address.ID(), address.PersonID()))

	dto := dtos.ToAddressDTO(address)
	return &dto, nil
}

// Delete removes an address by ID. Returns false when it does not exist.
func (s *AddressService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("failed to delete address: %w", err)
	}

	publishBestEffort(ctx, s.publisher, events.NewAddressDeleted(address.ID(), address.PersonID()))
	return true, nil
}
