package dtos

import "time"

// ============================================
// Address
// ============================================

// AddressDTO is the API representation of an address.
type AddressDTO struct {
	ID              string     `json:"id"`
	Logradouro      string     `json:"logradouro"`
	Numero          string     `json:"numero"`
	Complemento     string     `json:"complemento,omitempty"`
	Bairro          string     `json:"bairro"`
	Cidade          string     `json:"cidade"`
	Estado          string     `json:"estado"`
	CEP             string     `json:"cep"`
	PessoaID        string     `json:"pessoaId"`
	DataCadastro    time.Time  `json:"dataCadastro"`
	DataAtualizacao *time.Time `json:"dataAtualizacao,omitempty"`
}

// CreateAddressRequest carries the payload for attaching an address to a person.
type CreateAddressRequest struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
	PessoaID    string `json:"pessoaId"`
}

// AddressSearchRequest carries the optional search criteria for addresses.
// Empty fields match everything.
type AddressSearchRequest struct {
	Cidade string `json:"cidade" form:"cidade"`
	Estado string `json:"estado" form:"estado"`
	CEP    string `json:"cep" form:"cep"`
}

// UpdateAddressRequest carries the payload for updating an address.
// The owning person is absent: ownership never moves.
type UpdateAddressRequest struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}
