package dtos

import "time"

// ============================================
// Person + Address (API v2)
// ============================================

// PersonAddressDTO is the v2 read model: one row per person/address pair.
// ID is the address ID when an address is present, otherwise the person ID.
// Endereco is nil for people who have no address yet.
type PersonAddressDTO struct {
	ID              string      `json:"id"`
	PessoaID        string      `json:"pessoaId"`
	Nome            string      `json:"nome"`
	Sexo            string      `json:"sexo,omitempty"`
	Email           string      `json:"email,omitempty"`
	DataNascimento  time.Time   `json:"dataNascimento"`
	Naturalidade    string      `json:"naturalidade,omitempty"`
	Nacionalidade   string      `json:"nacionalidade,omitempty"`
	CPF             string      `json:"cpf"`
	DataCadastro    time.Time   `json:"dataCadastro"`
	DataAtualizacao *time.Time  `json:"dataAtualizacao,omitempty"`
	Endereco        *AddressDTO `json:"endereco,omitempty"`
}

// CreatePersonAddressRequest carries the v2 payload: person and address
// fields in one flat document.
type CreatePersonAddressRequest struct {
	Nome           string    `json:"nome"`
	Sexo           string    `json:"sexo"`
	Email          string    `json:"email"`
	DataNascimento time.Time `json:"dataNascimento"`
	Naturalidade   string    `json:"naturalidade"`
	Nacionalidade  string    `json:"nacionalidade"`
	CPF            string    `json:"cpf"`

	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}

// UpdatePersonAddressRequest carries the v2 update payload.
// CPF is absent for the same reason as in UpdatePersonRequest.
type UpdatePersonAddressRequest struct {
	Nome           string    `json:"nome"`
	Sexo           string    `json:"sexo"`
	Email          string    `json:"email"`
	DataNascimento time.Time `json:"dataNascimento"`
	Naturalidade   string    `json:"naturalidade"`
	Nacionalidade  string    `json:"nacionalidade"`

	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}
