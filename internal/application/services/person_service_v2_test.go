package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
)

func newV2Service(people *mockPersonRepo, addresses *mockAddressRepo) *PersonServiceV2 {
	return NewPersonServiceV2(newPersonService(people, addresses, &mockPublisher{}))
}

func TestPersonServiceV2_Create_RequiresAddress(t *testing.T) {
	people := &mockPersonRepo{}
	service := newV2Service(people, &mockAddressRepo{})

	// Same payload succeeds through v1 but fails through v2.
	_, err := service.Create(context.Background(), validCreateRequest())

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Na versão 2 da API, pelo menos um endereço é obrigatório para criar uma pessoa.")
	assert.Empty(t, people.saved, "check runs before any persistence")
}

func TestPersonServiceV2_Create_WithAddressDelegates(t *testing.T) {
	people := &mockPersonRepo{}
	addresses := &mockAddressRepo{}
	service := newV2Service(people, addresses)

	req := validCreateRequest()
	req.Enderecos = []dtos.AddressEntry{validEntry()}

	dto, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, dto.Enderecos, 1)
	assert.Len(t, people.saved, 1)
	assert.Len(t, addresses.saved, 1)
}

func TestPersonServiceV2_Update_RequiresAddress(t *testing.T) {
	people := &mockPersonRepo{}
	service := newV2Service(people, &mockAddressRepo{})

	_, err := service.Update(context.Background(), uuid.New(), dtos.UpdatePersonRequest{Nome: "Novo Nome"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Na versão 2 da API, pelo menos um endereço é obrigatório para atualizar uma pessoa.")
	assert.Empty(t, people.saved)
}

func TestPersonServiceV2_ReadsDelegate(t *testing.T) {
	service := newV2Service(&mockPersonRepo{}, &mockAddressRepo{})

	all, err := service.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = service.GetByID(context.Background(), uuid.New())
	assert.True(t, domainerrors.IsNotFound(err))

	deleted, err := service.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}
