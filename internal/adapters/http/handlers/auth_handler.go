// Package handlers - Authentication HTTP handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/peoplehub/internal/adapters/http/common"
	"github.com/Haleralex/peoplehub/internal/adapters/http/middleware"
	"github.com/Haleralex/peoplehub/internal/application/dtos"
)

// AuthService is the application surface the handler depends on.
type AuthService interface {
	Login(ctx context.Context, req dtos.LoginRequest) (*dtos.TokenDTO, error)
}

// AuthHandler handles the authentication endpoints.
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// Login exchanges credentials for a signed JWT.
//
// @Summary Login
// @Description Authenticates a user and returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} common.APIResponse{data=dtos.TokenDTO}
// @Failure 400 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !BindJSON(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), dtos.LoginRequest{
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		middleware.RecordLoginAttempt(false)
		common.HandleDomainError(c, err)
		return
	}

	middleware.RecordLoginAttempt(true)
	common.Success(c, http.StatusOK, token)
}

// RegisterRoutes registers the auth routes.
//
// Routes:
// - POST /auth/login - Login
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}
