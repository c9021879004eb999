package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	"github.com/Haleralex/peoplehub/internal/domain/entities"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
	"github.com/Haleralex/peoplehub/internal/domain/events"
	"github.com/Haleralex/peoplehub/internal/domain/validation"
)

func newPersonService(people *mockPersonRepo, addresses *mockAddressRepo, publisher *mockPublisher) *PersonService {
	return NewPersonService(
		people,
		addresses,
		validation.NewPersonValidator(people),
		validation.NewAddressValidator(),
		publisher,
	)
}

func validCreateRequest() dtos.CreatePersonRequest {
	return dtos.CreatePersonRequest{
		Nome:           "João Santos",
		Sexo:           "M",
		Email:          "joao@example.com",
		DataNascimento: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Naturalidade:   "Recife",
		Nacionalidade:  "Brasileiro",
		CPF:            "529.982.247-25",
	}
}

func validEntry() dtos.AddressEntry {
	return dtos.AddressEntry{
		Logradouro: "Rua das Flores",
		Numero:     "100",
		Bairro:     "Centro",
		Cidade:     "São Paulo",
		Estado:     "SP",
		CEP:        "01310-100",
	}
}

func TestPersonService_Create_WithoutAddresses(t *testing.T) {
	people := &mockPersonRepo{}
	addresses := &mockAddressRepo{}
	publisher := &mockPublisher{}
	service := newPersonService(people, addresses, publisher)

	dto, err := service.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "João Santos", dto.Nome)
	assert.Equal(t, "52998224725", dto.CPF)
	assert.Empty(t, dto.Enderecos)
	assert.Len(t, people.saved, 1)
	assert.Empty(t, addresses.saved)
	assert.Len(t, publisher.published, 1)
}

func TestPersonService_Create_InvalidPersonPersistsNothing(t *testing.T) {
	people := &mockPersonRepo{}
	addresses := &mockAddressRepo{}
	service := newPersonService(people, addresses, &mockPublisher{})

	req := validCreateRequest()
	req.Nome = ""
	req.CPF = "123"

	_, err := service.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.Empty(t, people.saved)
	assert.Empty(t, addresses.saved)
}

func TestPersonService_Create_DuplicateCPF(t *testing.T) {
	people := &mockPersonRepo{
		CPFExistsFunc: func(context.Context, string, uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	service := newPersonService(people, &mockAddressRepo{}, &mockPublisher{})

	_, err := service.Create(context.Background(), validCreateRequest())

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Este CPF já está cadastrado para outra pessoa.")
	assert.Empty(t, people.saved)
}

func TestPersonService_Create_InvalidAddressCompensates(t *testing.T) {
	people := &mockPersonRepo{}
	addresses := &mockAddressRepo{}
	service := newPersonService(people, addresses, &mockPublisher{})

	req := validCreateRequest()
	bad := validEntry()
	bad.CEP = "not-a-cep"
	req.Enderecos = []dtos.AddressEntry{validEntry(), bad}

	_, err := service.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	// The person was persisted and then removed again.
	require.Len(t, people.saved, 1)
	require.Len(t, people.deleted, 1)
	assert.Equal(t, people.saved[0].ID(), people.deleted[0])
}

func TestPersonService_Create_AllAddressesValid(t *testing.T) {
	people := &mockPersonRepo{}
	addresses := &mockAddressRepo{}
	service := newPersonService(people, addresses, &mockPublisher{})

	req := validCreateRequest()
	second := validEntry()
	second.Logradouro = "Av. Paulista"
	req.Enderecos = []dtos.AddressEntry{validEntry(), second}

	dto, err := service.Create(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, dto.Enderecos, 2)
	assert.Len(t, addresses.saved, 2)
	assert.Empty(t, people.deleted)
	for _, address := range addresses.saved {
		assert.Equal(t, people.saved[0].ID(), address.PersonID())
	}
}

func TestPersonService_Update_NotFound(t *testing.T) {
	service := newPersonService(&mockPersonRepo{}, &mockAddressRepo{}, &mockPublisher{})

	_, err := service.Update(context.Background(), uuid.New(), dtos.UpdatePersonRequest{})

	assert.True(t, domainerrors.IsNotFound(err))
}

func TestPersonService_Update_PreservesUntouchedAddresses(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	person := entities.NewPerson("João", "M", "joao@example.com", birth, "Recife", "Brasileiro", "52998224725")
	kept := entities.NewAddress("Rua Antiga", "1", "", "Centro", "Recife", "PE", "50000-000", person.ID())
	updated := entities.NewAddress("Rua Velha", "2", "", "Centro", "Recife", "PE", "51000-000", person.ID())

	people := &mockPersonRepo{
		FindByIDFunc: func(_ context.Context, id uuid.UUID) (*entities.Person, error) {
			if id == person.ID() {
				return person, nil
			}
			return nil, domainerrors.ErrEntityNotFound
		},
	}
	addresses := &mockAddressRepo{
		FindByPersonIDFunc: func(context.Context, uuid.UUID) ([]*entities.Address, error) {
			return []*entities.Address{kept, updated}, nil
		},
	}
	service := newPersonService(people, addresses, &mockPublisher{})

	newEntry := validEntry()
	updateEntry := validEntry()
	updateEntry.ID = updated.ID().String()
	updateEntry.Logradouro = "Rua Renovada"

	dto, err := service.Update(context.Background(), person.ID(), dtos.UpdatePersonRequest{
		Nome:           "João Atualizado",
		Sexo:           "M",
		Email:          "joao@example.com",
		DataNascimento: birth,
		Naturalidade:   "Recife",
		Nacionalidade:  "Brasileiro",
		Enderecos:      []dtos.AddressEntry{updateEntry, newEntry},
	})

	require.NoError(t, err)
	assert.Equal(t, "João Atualizado", dto.Nome)
	assert.Equal(t, "52998224725", dto.CPF, "CPF never changes on update")

	// Result is the union of updated, newly created and untouched addresses.
	require.Len(t, dto.Enderecos, 3)
	streets := make(map[string]bool)
	for _, address := range dto.Enderecos {
		streets[address.Logradouro] = true
	}
	assert.True(t, streets["Rua Renovada"])
	assert.True(t, streets["Rua das Flores"])
	assert.True(t, streets["Rua Antiga"])
}

func TestPersonService_Update_InvalidPersonNotPersisted(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	person := entities.NewPerson("João", "M", "", birth, "", "", "52998224725")
	people := &mockPersonRepo{
		FindByIDFunc: func(context.Context, uuid.UUID) (*entities.Person, error) {
			return person, nil
		},
	}
	service := newPersonService(people, &mockAddressRepo{}, &mockPublisher{})

	_, err := service.Update(context.Background(), person.ID(), dtos.UpdatePersonRequest{
		Nome:           "",
		DataNascimento: birth,
	})

	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.Empty(t, people.saved)
}

func TestPersonService_Delete(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	person := entities.NewPerson("João", "M", "", birth, "", "", "52998224725")

	t.Run("existing person", func(t *testing.T) {
		people := &mockPersonRepo{
			FindByIDFunc: func(context.Context, uuid.UUID) (*entities.Person, error) {
				return person, nil
			},
		}
		service := newPersonService(people, &mockAddressRepo{}, &mockPublisher{})

		deleted, err := service.Delete(context.Background(), person.ID())

		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, []uuid.UUID{person.ID()}, people.deleted)
	})

	t.Run("absent person", func(t *testing.T) {
		people := &mockPersonRepo{}
		service := newPersonService(people, &mockAddressRepo{}, &mockPublisher{})

		deleted, err := service.Delete(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Empty(t, people.deleted)
	})
}

func TestPersonService_GetAllPaged(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := make([]*entities.Person, 25)
	for i := range stored {
		stored[i] = entities.NewPerson("Pessoa", "F", "", birth, "", "", "52998224725")
	}
	people := &mockPersonRepo{
		FindAllFunc: func(context.Context) ([]*entities.Person, error) {
			return stored, nil
		},
	}
	service := newPersonService(people, &mockAddressRepo{}, &mockPublisher{})

	page, err := service.GetAllPaged(context.Background(), dtos.PaginationParams{PageNumber: 3, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5)
}

func TestPersonService_PublisherFailureDoesNotFailOperation(t *testing.T) {
	publisher := &mockPublisher{
		PublishFunc: func(context.Context, events.DomainEvent) error {
			return errors.New("broker unavailable")
		},
	}
	service := newPersonService(&mockPersonRepo{}, &mockAddressRepo{}, publisher)

	dto, err := service.Create(context.Background(), validCreateRequest())

	require.NoError(t, err, "event delivery is best-effort")
	assert.NotNil(t, dto)
	assert.Len(t, publisher.published, 1)
}
