// Package dtos defines Data Transfer Objects for moving data between layers.
//
// Domain entities never cross the API boundary directly:
// 1. Entities can change independently of the API contract
// 2. Internal fields (password hashes, salts) stay hidden
// 3. Different API versions can use different DTOs
//
// JSON field names follow the public contract (Portuguese), matching the
// clients that consume this API.
//
// Pattern: Data Transfer Object
package dtos

import "time"

// ============================================
// Person
// ============================================

// PersonDTO is the API representation of a person.
type PersonDTO struct {
	ID              string     `json:"id"`
	Nome            string     `json:"nome"`
	Sexo            string     `json:"sexo,omitempty"`
	Email           string     `json:"email,omitempty"`
	DataNascimento  time.Time  `json:"dataNascimento"`
	Naturalidade    string     `json:"naturalidade,omitempty"`
	Nacionalidade   string     `json:"nacionalidade,omitempty"`
	CPF             string     `json:"cpf"`
	DataCadastro    time.Time  `json:"dataCadastro"`
	DataAtualizacao *time.Time `json:"dataAtualizacao,omitempty"`

	Enderecos []AddressDTO `json:"enderecos"`
}

// AddressEntry is an address document embedded in person payloads.
// ID is set when the entry targets an existing address, empty when it
// should create a new one.
type AddressEntry struct {
	ID          string `json:"id,omitempty"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}

// CreatePersonRequest carries the payload for registering a person.
// Business rules (CPF check digits, uniqueness, dates) are enforced by the
// domain validator, which reports every broken rule at once.
type CreatePersonRequest struct {
	Nome           string    `json:"nome"`
	Sexo           string    `json:"sexo"`
	Email          string    `json:"email"`
	DataNascimento time.Time `json:"dataNascimento"`
	Naturalidade   string    `json:"naturalidade"`
	Nacionalidade  string    `json:"nacionalidade"`
	CPF            string    `json:"cpf"`

	Enderecos []AddressEntry `json:"enderecos"`
}

// UpdatePersonRequest carries the payload for updating a person.
// CPF is absent: it identifies the person and never changes after creation.
type UpdatePersonRequest struct {
	Nome           string    `json:"nome"`
	Sexo           string    `json:"sexo"`
	Email          string    `json:"email"`
	DataNascimento time.Time `json:"dataNascimento"`
	Naturalidade   string    `json:"naturalidade"`
	Nacionalidade  string    `json:"nacionalidade"`

	Enderecos []AddressEntry `json:"enderecos"`
}
