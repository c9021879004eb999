// Mappers convert domain entities into DTOs.
// Conversion is explicit field by field; no reflection, no struct tags.
//
// Pattern: Mapper/Converter
package dtos

import (
	"github.com/Haleralex/peoplehub/internal/domain/entities"
)

// ============================================
// Person Mappers
// ============================================

// ToPersonDTO converts a Person entity into its API representation.
func ToPersonDTO(person *entities.Person) PersonDTO {
	return PersonDTO{
		ID:              person.ID().String(),
		Nome:            person.Name(),
		Sexo:            person.Sex(),
		Email:           person.Email(),
		DataNascimento:  person.BirthDate(),
		Naturalidade:    person.BirthPlace(),
		Nacionalidade:   person.Nationality(),
		CPF:             person.CPF().Digits(),
		DataCadastro:    person.CreatedAt(),
		DataAtualizacao: person.UpdatedAt(),
		Enderecos:       []AddressDTO{},
	}
}

// ToPersonDTOList converts a list of people.
func ToPersonDTOList(people []*entities.Person) []PersonDTO {
	result := make([]PersonDTO, len(people))
	for i, person := range people {
		result[i] = ToPersonDTO(person)
	}
	return result
}

// ============================================
// Address Mappers
// ============================================

// ToAddressDTO converts an Address entity into its API representation.
func ToAddressDTO(address *entities.Address) AddressDTO {
	return AddressDTO{
		ID:              address.ID().String(),
		Logradouro:      address.Street(),
		Numero:          address.Number(),
		Complemento:     address.Complement(),
		Bairro:          address.Neighborhood(),
		Cidade:          address.City(),
		Estado:          address.State(),
		CEP:             address.CEP().String(),
		PessoaID:        address.PersonID().String(),
		DataCadastro:    address.CreatedAt(),
		DataAtualizacao: address.UpdatedAt(),
	}
}

// ToAddressDTOList converts a list of addresses.
func ToAddressDTOList(addresses []*entities.Address) []AddressDTO {
	result := make([]AddressDTO, len(addresses))
	for i, address := range addresses {
		result[i] = ToAddressDTO(address)
	}
	return result
}

// ============================================
// Person + Address Mappers (API v2)
// ============================================

// ToPersonAddressDTO combines a person and one of their addresses into a
// v2 row. address may be nil; the row then carries the person ID as its ID
// and no endereco document.
func ToPersonAddressDTO(person *entities.Person, address *entities.Address) PersonAddressDTO {
	dto := PersonAddressDTO{
		ID:              person.ID().String(),
		PessoaID:        person.ID().String(),
		Nome:            person.Name(),
		Sexo:            person.Sex(),
		Email:           person.Email(),
		DataNascimento:  person.BirthDate(),
		Naturalidade:    person.BirthPlace(),
		Nacionalidade:   person.Nationality(),
		CPF:             person.CPF().Digits(),
		DataCadastro:    person.CreatedAt(),
		DataAtualizacao: person.UpdatedAt(),
	}
	if address != nil {
		addressDTO := ToAddressDTO(address)
		dto.ID = addressDTO.ID
		dto.Endereco = &addressDTO
	}
	return dto
}

// ============================================
// User Mappers
// ============================================

// ToUserDTO converts a User entity into its API representation.
// Hash and salt are deliberately not mapped.
func ToUserDTO(user *entities.User) UserDTO {
	return UserDTO{
		ID:           user.ID().String(),
		Nome:         user.Name(),
		Email:        user.Email(),
		DataCadastro: user.CreatedAt(),
	}
}
