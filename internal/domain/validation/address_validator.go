package validation

import (
	"context"

	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/domain/entities"
)

// AddressValidator checks every business rule for an Address.
// All rules are pure; no repository is involved.
type AddressValidator struct {
	rules *RuleSet[*entities.Address]
}

// NewAddressValidator builds the address rule list.
func NewAddressValidator() *AddressValidator {
	return &AddressValidator{
		rules: NewRuleSet(
			Rule[*entities.Address]{
				Field:   "logradouro",
				Message: "O logradouro é obrigatório.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.Street() != "", nil
				},
			},
			Rule[*entities.Address]{
				Field:   "logradouro",
				Message: "O logradouro não pode ter mais de 100 caracteres.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return len([]rune(a.Street())) <= 100, nil
				},
			},
			Rule[*entities.Address]{
				Field:   "numero",
				Message: "O número é obrigatório.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.Number() != "", nil
				},
			},
			Rule[*entities.Address]{
				Field:   "numero",
				Message: "O número não pode ter mais de 10 caracteres.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return len([]rune(a.Number())) <= 10, nil
				},
			},
			Rule[*entities.Address]{
				Field:   "complemento",
				Message: "O complemento não pode ter mais de 100 caracteres.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return len([]rune(a.Complement())) <= 100, nil
				},
			},
			Rule[*entities.Address]{
				Field:   "bairro",
				Message: "O bairro é obrigatório.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.Neighborhood() != "", nil
				},
			},
			Rule[*entities.Address]{
				Field:   "bairro",
				Message: "O bairro não pode ter mais de 50 caracteres.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return len([]rune(a.Neighborhood())) <= 50, nil
				},
			},
			Rule[*entities.Address]{
				Field:   "cidade",
				Message: "A cidade é obrigatória.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.City() != "", nil
				},
			},
			Rule[*entities.Address]{
				Field:   "cidade",
				Message: "A cidade não pode ter mais de 50 caracteres.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return len([]rune(a.City())) <= 50, nil
				},
			},
			Rule[*entities.Address]{
				Field:   "estado",
				Message: "O estado é obrigatório.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.State() != "", nil
				},
			},
			Rule[*entities.Address]{
				Field:   "estado",
				Message: "Use a sigla do estado com 2 caracteres.",
				When: func(a *entities.Address) bool {
					return a.State() != ""
				},
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return len([]rune(a.State())) <= 2, nil
				},
			},
			Rule[*entities.Address]{
				Field:   "cep",
				Message: "O CEP é obrigatório.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return !a.CEP().IsEmpty(), nil
				},
			},
			Rule[*entities.Address]{
				Field:   "cep",
				Message: "O CEP deve estar no formato 00000-000 ou 00000000.",
				When: func(a *entities.Address) bool {
					return !a.CEP().IsEmpty()
				},
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.CEP().IsValid(), nil
				},
			},
			Rule[*entities.Address]{
				Field:   "pessoaId",
				Message: "O ID da pessoa é obrigatório.",
				Check: func(_ context.Context, a *entities.Address) (bool, error) {
					return a.PersonID() != uuid.Nil, nil
				},
			},
		),
	}
}

// Validate reports every broken rule for the address.
func (v *AddressValidator) Validate(ctx context.Context, address *entities.Address) error {
	return v.rules.Validate(ctx, address)
}
