package validation

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/domain/entities"
)

// CPFChecker is the narrow repository surface the person validator needs.
// The person's own ID is excluded so updates don't collide with themselves.
type CPFChecker interface {
	CPFExists(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error)
}

// emailPattern accepts anything shaped local@domain. Deliverability is not
// the validator's problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// PersonValidator checks every business rule for a Person.
// With a nil repository it runs in detached mode: format rules apply but
// the CPF uniqueness check is skipped.
type PersonValidator struct {
	rules *RuleSet[*entities.Person]
}

// NewPersonValidator builds the person rule list.
func NewPersonValidator(repo CPFChecker) *PersonValidator {
	return &PersonValidator{
		rules: NewRuleSet(
			Rule[*entities.Person]{
				Field:   "nome",
				Message: "O nome é obrigatório.",
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return p.Name() != "", nil
				},
			},
			Rule[*entities.Person]{
				Field:   "nome",
				Message: "O nome não pode ter mais de 100 caracteres.",
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return len([]rune(p.Name())) <= 100, nil
				},
			},
			Rule[*entities.Person]{
				Field:   "email",
				Message: "O e-mail informado não é válido.",
				When: func(p *entities.Person) bool {
					return p.Email() != ""
				},
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return emailPattern.MatchString(p.Email()), nil
				},
			},
			Rule[*entities.Person]{
				Field:   "dataNascimento",
				Message: "A data de nascimento é obrigatória.",
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return !p.BirthDate().IsZero(), nil
				},
			},
			Rule[*entities.Person]{
				Field:   "dataNascimento",
				Message: "A data de nascimento não pode ser no futuro.",
				When: func(p *entities.Person) bool {
					return !p.BirthDate().IsZero()
				},
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return !dateOf(p.BirthDate()).After(dateOf(time.Now())), nil
				},
			},
			Rule[*entities.Person]{
				Field:   "cpf",
				Message: "O CPF é obrigatório.",
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return !p.CPF().IsEmpty(), nil
				},
			},
			Rule[*entities.Person]{
				Field:   "cpf",
				Message: "O CPF informado não é válido.",
				When: func(p *entities.Person) bool {
					return !p.CPF().IsEmpty()
				},
				Check: func(_ context.Context, p *entities.Person) (bool, error) {
					return p.CPF().IsValid(), nil
				},
			},
			Rule[*entities.Person]{
				Field:   "cpf",
				Message: "Este CPF já está cadastrado para outra pessoa.",
				// Only reaches the repository when the CPF is well-formed,
				// and never in detached mode.
				When: func(p *entities.Person) bool {
					return repo != nil && p.CPF().IsValid()
				},
				Check: func(ctx context.Context, p *entities.Person) (bool, error) {
					exists, err := repo.CPFExists(ctx, p.CPF().Digits(), p.ID())
					if err != nil {
						return false, err
					}
					return !exists, nil
				},
			},
		),
	}
}

// Validate reports every broken rule for the person.
func (v *PersonValidator) Validate(ctx context.Context, person *entities.Person) error {
	return v.rules.Validate(ctx, person)
}

// dateOf drops the time-of-day component for date-only comparison.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
