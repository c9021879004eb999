package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/domain/entities"
	domainErrors "github.com/Haleralex/peoplehub/internal/domain/errors"
)

// Compile-time check: AddressRepository implements ports.AddressRepository
var _ ports.AddressRepository = (*AddressRepository)(nil)

// AddressRepository implements ports.AddressRepository on PostgreSQL.
type AddressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository creates an AddressRepository.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) getQuerier(ctx context.Context) querier {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const addressColumns = `id, street, number, complement, neighborhood, city, state, cep, person_id, created_at, updated_at`

// Save persists an address (INSERT or UPDATE, upsert by ID).
func (r *AddressRepository) Save(ctx context.Context, address *entities.Address) error {
	q := r.getQuerier(ctx)

	query := `
		INSERT INTO addresses (id, street, number, complement, neighborhood, city, state, cep, person_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			street = EXCLUDED.street,
			number = EXCLUDED.number,
			complement = EXCLUDED.complement,
			neighborhood = EXCLUDED.neighborhood,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			cep = EXCLUDED.cep,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		address.ID(),
		address.Street(),
		address.Number(),
		address.Complement(),
		address.Neighborhood(),
		address.City(),
		address.State(),
		address.CEP().String(),
		address.PersonID(),
		address.CreatedAt(),
		address.UpdatedAt(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domainErrors.NewValidationError("pessoaId", "Pessoa não encontrada.")
		}
		return fmt.Errorf("failed to save address: %w", err)
	}

	return nil
}

func scanAddress(scanner interface{ Scan(dest ...any) error }) (*entities.Address, error) {
	var (
		id           uuid.UUID
		street       string
		number       string
		complement   string
		neighborhood string
		city         string
		state        string
		cep          string
		personID     uuid.UUID
		createdAt    time.Time
		updatedAt    *time.Time
	)

	err := scanner.Scan(&id, &street, &number, &complement, &neighborhood, &city, &state, &cep, &personID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructAddress(id, street, number, complement, neighborhood, city, state, cep, personID, createdAt, updatedAt), nil
}

// FindByID loads an address by ID.
func (r *AddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Address, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	address, err := scanAddress(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to find address by id: %w", err)
	}

	return address, nil
}

// FindAll returns every address, oldest first.
func (r *AddressRepository) FindAll(ctx context.Context) ([]*entities.Address, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + addressColumns + ` FROM addresses ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	return collectAddresses(rows)
}

// FindByPersonID returns every address of a person, oldest first.
// Oldest-first keeps the canonical address stable across reads.
func (r *AddressRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*entities.Address, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE person_id = $1 ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses by person: %w", err)
	}
	defer rows.Close()

	return collectAddresses(rows)
}

// ListByPersonID returns a page of a person's addresses, oldest first.
func (r *AddressRepository) ListByPersonID(ctx context.Context, personID uuid.UUID, offset, limit int) ([]*entities.Address, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + addressColumns + ` FROM addresses WHERE person_id = $1 ORDER BY created_at ASC OFFSET $2 LIMIT $3`

	rows, err := q.Query(ctx, query, personID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses by person: %w", err)
	}
	defer rows.Close()

	return collectAddresses(rows)
}

// CountByPersonID returns how many addresses a person has.
func (r *AddressRepository) CountByPersonID(ctx context.Context, personID uuid.UUID) (int64, error) {
	q := r.getQuerier(ctx)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM addresses WHERE person_id = $1`, personID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count addresses: %w", err)
	}
	return count, nil
}

// Delete removes an address by ID.
func (r *AddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := r.getQuerier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrEntityNotFound
	}
	return nil
}

// DeleteByPersonID removes every address of a person.
// Zero affected rows is fine: the person may simply have no addresses.
func (r *AddressRepository) DeleteByPersonID(ctx context.Context, personID uuid.UUID) error {
	q := r.getQuerier(ctx)

	if _, err := q.Exec(ctx, `DELETE FROM addresses WHERE person_id = $1`, personID); err != nil {
		return fmt.Errorf("failed to delete addresses by person: %w", err)
	}
	return nil
}

func collectAddresses(rows pgx.Rows) ([]*entities.Address, error) {
	var addresses []*entities.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address row: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating address rows: %w", err)
	}
	return addresses, nil
}
