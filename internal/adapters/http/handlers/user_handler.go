// Package handlers - User registration HTTP handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/peoplehub/internal/adapters/http/common"
	"github.com/Haleralex/peoplehub/internal/application/dtos"
)

// UserService is the application surface the handler depends on.
type UserService interface {
	Create(ctx context.Context, req dtos.RegisterUserRequest) (*dtos.UserDTO, error)
}

// UserHandler handles the user registration endpoint.
type UserHandler struct {
	users UserService
}

// NewUserHandler builds a UserHandler.
func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterUserRequest is the user registration request body.
type RegisterUserRequest struct {
	Nome  string `json:"nome" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

// Create registers a new authentication user.
//
// @Summary Register user
// @Description Creates a user account for API authentication
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User data"
// @Success 201 {object} common.APIResponse{data=dtos.UserDTO}
// @Failure 400 {object} common.APIResponse "Validation failure or duplicate email"
// @Router /api/usuarios [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterUserRequest
	if !BindJSON(c, &req) {
		return
	}

	user, err := h.users.Create(c.Request.Context(), dtos.RegisterUserRequest{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusCreated, user)
}

// RegisterRoutes registers the user routes.
//
// Routes:
// - POST /usuarios - Register user
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/usuarios")
	{
		users.POST("", h.Create)
	}
}
