// Package middleware - Authentication middleware.
//
// Bearer token authentication. The token format is decided by the
// TokenValidator, keeping the middleware independent from the JWT
// library and testable with a plain function.
package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AuthUserIDKey is the context key holding the authenticated user ID.
	AuthUserIDKey = "auth_user_id"
	// AuthUserNameKey is the context key holding the user display name.
	AuthUserNameKey = "auth_user_name"
	// AuthUserEmailKey is the context key holding the user email.
	AuthUserEmailKey = "auth_user_email"
)

// AuthConfig configures the authentication middleware.
type AuthConfig struct {
	// TokenValidator validates the bearer token and extracts the claims.
	TokenValidator func(token string) (*AuthClaims, error)
	// SkipPaths lists paths that do not require authorization.
	SkipPaths []string
}

// AuthClaims holds the data extracted from the authorization token.
type AuthClaims struct {
	UserID string
	Name   string
	Email  string
	Exp    time.Time
}

// Auth checks the Authorization header on every request.
//
// Flow:
// 1. Extract the token from the Authorization header
// 2. Validate it through TokenValidator
// 3. Put the user data into the request context
// 4. Continue, or abort with 401
func Auth(config *AuthConfig) gin.HandlerFunc {
	skipMap := make(map[string]bool)
	for _, path := range config.SkipPaths {
		skipMap[path] = true
	}

	return func(c *gin.Context) {
		if skipMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithUnauthorized(c, "Invalid authorization header format")
			return
		}

		token := parts[1]
		if token == "" {
			abortWithUnauthorized(c, "Token is required")
			return
		}

		claims, err := config.TokenValidator(token)
		if err != nil {
			abortWithUnauthorized(c, "Invalid or expired token")
			return
		}

		if claims.Exp.Before(time.Now()) {
			abortWithUnauthorized(c, "Token has expired")
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthUserNameKey, claims.Name)
		c.Set(AuthUserEmailKey, claims.Email)

		c.Next()
	}
}

// abortWithUnauthorized sends a 401 response.
func abortWithUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
		"request_id": GetRequestID(c),
		"timestamp":  time.Now().UTC(),
	})
}

// ============================================
// JWT Token Validator
// ============================================

// JWTConfig carries the token verification parameters. Issuer and
// Audience are only enforced when non-empty, matching how the tokens
// are issued.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// NewJWTTokenValidator builds a TokenValidator for HS256-signed tokens.
func NewJWTTokenValidator(cfg JWTConfig) func(token string) (*AuthClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}

	return func(tokenString string) (*AuthClaims, error) {
		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.Secret), nil
		}, options...)
		if err != nil {
			return nil, err
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return nil, errors.New("token is missing the sub claim")
		}

		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil {
			return nil, errors.New("token is missing the exp claim")
		}

		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)

		return &AuthClaims{
			UserID: sub,
			Name:   name,
			Email:  email,
			Exp:    exp.Time,
		}, nil
	}
}

// ============================================
// Context Helpers
// ============================================

// GetAuthUserID returns the authenticated user's ID.
func GetAuthUserID(c *gin.Context) uuid.UUID {
	if id, exists := c.Get(AuthUserIDKey); exists {
		if strID, ok := id.(string); ok {
			if uid, err := uuid.Parse(strID); err == nil {
				return uid
			}
		}
	}
	return uuid.Nil
}

// GetAuthUserName returns the authenticated user's display name.
func GetAuthUserName(c *gin.Context) string {
	if name, exists := c.Get(AuthUserNameKey); exists {
		if strName, ok := name.(string); ok {
			return strName
		}
	}
	return ""
}

// GetAuthUserEmail returns the authenticated user's email.
func GetAuthUserEmail(c *gin.Context) string {
	if email, exists := c.Get(AuthUserEmailKey); exists {
		if strEmail, ok := email.(string); ok {
			return strEmail
		}
	}
	return ""
}
