package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Haleralex/peoplehub/internal/application/dtos"
	"github.com/Haleralex/peoplehub/internal/application/ports"
	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
)

// AuthConfig carries the token signing parameters.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

// AuthService authenticates users and issues HS256-signed JWTs.
// Wrong email and wrong password are indistinguishable to the caller.
type AuthService struct {
	users ports.UserRepository
	cfg   AuthConfig
}

// NewAuthService wires the auth service.
func NewAuthService(users ports.UserRepository, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	return &AuthService{users: users, cfg: cfg}
}

// Login verifies the credentials and returns a signed token.
// Returns ErrInvalidCredentials for unknown email or wrong password.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.TokenDTO, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	computed := HashPassword(req.Senha, user.Salt())
	if subtle.ConstantTimeCompare([]byte(computed), []byte(user.PasswordHash())) != 1 {
		return nil, domainerrors.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID().String(),
		"name":  user.Name(),
		"email": user.Email(),
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	if s.cfg.Issuer != "" {
		claims["iss"] = s.cfg.Issuer
	}
	if s.cfg.Audience != "" {
		claims["aud"] = s.cfg.Audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dtos.TokenDTO{
		Token:     signed,
		Expiracao: expiresAt,
		Nome:      user.Name(),
		Email:     user.Email(),
	}, nil
}
