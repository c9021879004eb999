package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	"github.com/Haleralex/peoplehub/internal/application/ports"
	"github.com/Haleralex/peoplehub/internal/domain/entities"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
	"github.com/Haleralex/peoplehub/internal/domain/events"
)

// UserService creates authentication users.
// Passwords are stored as base64(SHA-256(password+salt)) with a random
// 16-byte salt per user.
type UserService struct {
	users     ports.UserRepository
	publisher ports.EventPublisher
}

// NewUserService wires the user service.
func NewUserService(users ports.UserRepository, publisher ports.EventPublisher) *UserService {
	return &UserService{users: users, publisher: publisher}
}

// Create registers a user. Email must be unique.
func (s *UserService) Create(ctx context.Context, req dtos.RegisterUserRequest) (*dtos.UserDTO, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return nil, domainerrors.NewValidationError("email", "E-mail já cadastrado para outro usuário.")
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	user := entities.NewUser(req.Nome, req.Email, HashPassword(req.Senha, salt), salt)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	publishBestEffort(ctx, s.publisher, events.NewUserRegistered(user.ID(), user.Email(), user.Name()))

	dto := dtos.ToUserDTO(user)
	return &dto, nil
}

// HashPassword derives the stored password hash from a plain password and
// a salt. Shared with the login verification path.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func generateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
