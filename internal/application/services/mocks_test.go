package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/domain/entities"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
	"github.com/Haleralex/peoplehub/internal/domain/events"
)

// Mock repositories with function fields: each test overrides only the
// calls it cares about. Defaults behave like an empty store.

type mockPersonRepo struct {
	SaveFunc      func(ctx context.Context, person *entities.Person) error
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*entities.Person, error)
	FindByCPFFunc func(ctx context.Context, cpf string) (*entities.Person, error)
	FindAllFunc   func(ctx context.Context) ([]*entities.Person, error)
	ListFunc      func(ctx context.Context, offset, limit int) ([]*entities.Person, error)
	CountFunc     func(ctx context.Context) (int64, error)
	CPFExistsFunc func(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	saved   []*entities.Person
	deleted []uuid.UUID
}

func (m *mockPersonRepo) Save(ctx context.Context, person *entities.Person) error {
	m.saved = append(m.saved, person)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, person)
	}
	return nil
}

func (m *mockPersonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domainerrors.ErrEntityNotFound
}

func (m *mockPersonRepo) FindByCPF(ctx context.Context, cpf string) (*entities.Person, error) {
	if m.FindByCPFFunc != nil {
		return m.FindByCPFFunc(ctx, cpf)
	}
	return nil, domainerrors.ErrEntityNotFound
}

func (m *mockPersonRepo) FindAll(ctx context.Context) ([]*entities.Person, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPersonRepo) List(ctx context.Context, offset, limit int) ([]*entities.Person, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockPersonRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockPersonRepo) CPFExists(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error) {
	if m.CPFExistsFunc != nil {
		return m.CPFExistsFunc(ctx, cpf, excludeID)
	}
	return false, nil
}

func (m *mockPersonRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAddressRepo struct {
	SaveFunc             func(ctx context.Context, address *entities.Address) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*entities.Address, error)
	FindAllFunc          func(ctx context.Context) ([]*entities.Address, error)
	FindByPersonIDFunc   func(ctx context.Context, personID uuid.UUID) ([]*entities.Address, error)
	ListByPersonIDFunc   func(ctx context.Context, personID uuid.UUID, offset, limit int) ([]*entities.Address, error)
	CountByPersonIDFunc  func(ctx context.Context, personID uuid.UUID) (int64, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByPersonIDFunc func(ctx context.Context, personID uuid.UUID) error

	saved           []*entities.Address
	deleted         []uuid.UUID
	deletedByPerson []uuid.UUID
}

func (m *mockAddressRepo) Save(ctx context.Context, address *entities.Address) error {
	m.saved = append(m.saved, address)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, address)
	}
	return nil
}

func (m *mockAddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Address, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domainerrors.ErrEntityNotFound
}

func (m *mockAddressRepo) FindAll(ctx context.Context) ([]*entities.Address, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAddressRepo) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*entities.Address, error) {
	if m.FindByPersonIDFunc != nil {
		return m.FindByPersonIDFunc(ctx, personID)
	}
	return nil, nil
}

func (m *mockAddressRepo) ListByPersonID(ctx context.Context, personID uuid.UUID, offset, limit int) ([]*entities.Address, error) {
	if m.ListByPersonIDFunc != nil {
		return m.ListByPersonIDFunc(ctx, personID, offset, limit)
	}
	return nil, nil
}

func (m *mockAddressRepo) CountByPersonID(ctx context.Context, personID uuid.UUID) (int64, error) {
	if m.CountByPersonIDFunc != nil {
		return m.CountByPersonIDFunc(ctx, personID)
	}
	return 0, nil
}

func (m *mockAddressRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAddressRepo) DeleteByPersonID(ctx context.Context, personID uuid.UUID) error {
	m.deletedByPerson = append(m.deletedByPerson, personID)
	if m.DeleteByPersonIDFunc != nil {
		return m.DeleteByPersonIDFunc(ctx, personID)
	}
	return nil
}

type mockUserRepo struct {
	SaveFunc          func(ctx context.Context, user *entities.User) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*entities.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)

	saved []*entities.User
}

func (m *mockUserRepo) Save(ctx context.Context, user *entities.User) error {
	m.saved = append(m.saved, user)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domainerrors.ErrEntityNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domainerrors.ErrEntityNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// mockUnitOfWork runs the function directly: mocks don't need real
// transactions, only the call shape.
type mockUnitOfWork struct {
	executions int
}

func (m *mockUnitOfWork) Execute(ctx context.Context, fn func(context.Context) error) error {
	m.executions++
	return fn(ctx)
}

func (m *mockUnitOfWork) ExecuteWithResult(ctx context.Context, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	m.executions++
	return fn(ctx)
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, event events.DomainEvent) error

	published []events.DomainEvent
}

func (m *mockPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, event)
	}
	return nil
}

func (m *mockPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	m.published = append(m.published, batch...)
	return nil
}
