package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is an authentication principal. Passwords are stored as a
// salted hash, never in plain text.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	salt         string
	createdAt    time.Time
}

// NewUser creates a User with an already-hashed password.
func NewUser(name, email, passwordHash, salt string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		salt:         salt,
		createdAt:    time.Now(),
	}
}

// ReconstructUser rebuilds a User from stored data.
func ReconstructUser(id uuid.UUID, name, email, passwordHash, salt string, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		salt:         salt,
		createdAt:    createdAt,
	}
}

// ID returns the user identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the salted password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Salt returns the per-user salt.
func (u *User) Salt() string { return u.salt }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }
