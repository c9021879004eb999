package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
)

// Portuguese API messages for the v2 address requirement.
const (
	msgAddressRequiredOnCreate = "Na versão 2 da API, pelo menos um endereço é obrigatório para criar uma pessoa."
	msgAddressRequiredOnUpdate = "Na versão 2 da API, pelo menos um endereço é obrigatório para atualizar uma pessoa."
)

// PersonServiceV2 is the v2 rendition of the person aggregate: same data
// shape as v1, but at least one address is mandatory on writes.
//
// Implemented as a wrapper around PersonService. The address-required check
// runs before any base logic, so a v2 write with no addresses fails before
// anything touches the store.
type PersonServiceV2 struct {
	base *PersonService
}

// NewPersonServiceV2 wraps the v1 service with the v2 write rules.
func NewPersonServiceV2(base *PersonService) *PersonServiceV2 {
	return &PersonServiceV2{base: base}
}

// GetAll delegates to the v1 behavior.
func (s *PersonServiceV2) GetAll(ctx context.Context) ([]dtos.PersonDTO, error) {
	return s.base.GetAll(ctx)
}

// GetAllPaged delegates to the v1 behavior.
func (s *PersonServiceV2) GetAllPaged(ctx context.Context, params dtos.PaginationParams) (dtos.PagedResult[dtos.PersonDTO], error) {
	return s.base.GetAllPaged(ctx, params)
}

// GetByID delegates to the v1 behavior.
func (s *PersonServiceV2) GetByID(ctx context.Context, id uuid.UUID) (*dtos.PersonDTO, error) {
	return s.base.GetByID(ctx, id)
}

// GetByCPF delegates to the v1 behavior.
func (s *PersonServiceV2) GetByCPF(ctx context.Context, cpf string) (*dtos.PersonDTO, error) {
	return s.base.GetByCPF(ctx, cpf)
}

// Create requires at least one address, then delegates.
func (s *PersonServiceV2) Create(ctx context.Context, req dtos.CreatePersonRequest) (*dtos.PersonDTO, error) {
	if len(req.Enderecos) == 0 {
		return nil, domainerrors.NewValidationError("enderecos", msgAddressRequiredOnCreate)
	}
	return s.base.Create(ctx, req)
}

// Update requires at least one address, then delegates.
func (s *PersonServiceV2) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePersonRequest) (*dtos.PersonDTO, error) {
	if len(req.Enderecos) == 0 {
		return nil, domainerrors.NewValidationError("enderecos", msgAddressRequiredOnUpdate)
	}
	return s.base.Update(ctx, id, req)
}

// Delete delegates to the v1 behavior.
func (s *PersonServiceV2) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.base.Delete(ctx, id)
}
