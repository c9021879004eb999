package dtos

import "time"

// ============================================
// User / Auth
// ============================================

// UserDTO is the API representation of an authentication user.
// Password hash and salt never leave the application layer.
type UserDTO struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	DataCadastro time.Time `json:"dataCadastro"`
}

// RegisterUserRequest carries the payload for creating a user.
type RegisterUserRequest struct {
	Nome  string `json:"nome" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

// LoginRequest carries the credentials for authentication.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// TokenDTO is the authentication response: a signed JWT and its expiry.
type TokenDTO struct {
	Token     string    `json:"token"`
	Expiracao time.Time `json:"expiracao"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
}
