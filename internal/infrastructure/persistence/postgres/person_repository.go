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

// Compile-time check: PersonRepository implements ports.PersonRepository
var _ ports.PersonRepository = (*PersonRepository)(nil)

// PersonRepository implements ports.PersonRepository on PostgreSQL.
//
// Thread-safe: backed by the connection pool.
// Transaction-aware: uses the transaction from the context when present.
type PersonRepository struct {
	pool *pgxpool.Pool
}

// NewPersonRepository creates a PersonRepository.
func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) getQuerier(ctx context.Context) querier {
	if tx := extractTx(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const personColumns = `id, name, sex, email, birth_date, birth_place, nationality, cpf, created_at, updated_at`

// Save persists a person (INSERT or UPDATE, upsert by ID).
func (r *PersonRepository) Save(ctx context.Context, person *entities.Person) error {
	q := r.getQuerier(ctx)

	query := `
		INSERT INTO people (id, name, sex, email, birth_date, birth_place, nationality, cpf, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			sex = EXCLUDED.sex,
			email = EXCLUDED.email,
			birth_date = EXCLUDED.birth_date,
			birth_place = EXCLUDED.birth_place,
			nationality = EXCLUDED.nationality,
			updated_at = EXCLUDED.updated_at
	`

	_, err := q.Exec(ctx, query,
		person.ID(),
		person.Name(),
		person.Sex(),
		person.Email(),
		person.BirthDate(),
		person.BirthPlace(),
		person.Nationality(),
		person.CPF().Digits(),
		person.CreatedAt(),
		person.UpdatedAt(),
	)
	if err != nil {
		// The validator checks CPF uniqueness first; the constraint is the
		// last line of defense against concurrent writers.
		if isUniqueViolation(err, "people_cpf_unique") {
			return domainErrors.NewValidationError("cpf", "Este CPF já está cadastrado para outra pessoa.")
		}
		return fmt.Errorf("failed to save person: %w", err)
	}

	return nil
}

// scanPerson scans one row into a Person entity.
func scanPerson(scanner interface{ Scan(dest ...any) error }) (*entities.Person, error) {
	var (
		id          uuid.UUID
		name        string
		sex         string
		email       string
		birthDate   time.Time
		birthPlace  string
		nationality string
		cpf         string
		createdAt   time.Time
		updatedAt   *time.Time
	)

	err := scanner.Scan(&id, &name, &sex, &email, &birthDate, &birthPlace, &nationality, &cpf, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructPerson(id, name, sex, email, birthDate, birthPlace, nationality, cpf, createdAt, updatedAt), nil
}

// FindByID loads a person by ID.
func (r *PersonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	person, err := scanPerson(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to find person by id: %w", err)
	}

	return person, nil
}

// FindByCPF loads a person by CPF digits.
func (r *PersonRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Person, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + personColumns + ` FROM people WHERE cpf = $1`

	person, err := scanPerson(q.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to find person by cpf: %w", err)
	}

	return person, nil
}

// FindAll returns every person, newest first.
func (r *PersonRepository) FindAll(ctx context.Context) ([]*entities.Person, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + personColumns + ` FROM people ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	return collectPeople(rows)
}

// List returns a page of people, newest first.
func (r *PersonRepository) List(ctx context.Context, offset, limit int) ([]*entities.Person, error) {
	q := r.getQuerier(ctx)

	query := `SELECT ` + personColumns + ` FROM people ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := q.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	return collectPeople(rows)
}

// Count returns the total number of people.
func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	q := r.getQuerier(ctx)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM people`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return count, nil
}

// CPFExists checks whether another person holds this CPF.
func (r *PersonRepository) CPFExists(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error) {
	q := r.getQuerier(ctx)

	query := `SELECT EXISTS(SELECT 1 FROM people WHERE cpf = $1 AND id <> $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, cpf, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check cpf existence: %w", err)
	}
	return exists, nil
}

// Delete removes a person by ID. Addresses follow through ON DELETE CASCADE.
func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := r.getQuerier(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrEntityNotFound
	}
	return nil
}

func collectPeople(rows pgx.Rows) ([]*entities.Person, error) {
	var people []*entities.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}
	return people, nil
}
