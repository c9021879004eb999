// Package handlers - Person HTTP handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/adapters/http/common"
	"github.com/Haleralex/peoplehub/internal/adapters/http/middleware"
	"github.com/Haleralex/peoplehub/internal/application/dtos"
)

// ============================================
// Service Interface
// ============================================

// PersonService is the application surface the handler depends on.
// Satisfied by both the v1 and the v2 person services, so the same
// handler type serves both API versions.
type PersonService interface {
	GetAll(ctx context.Context) ([]dtos.PersonDTO, error)
	GetAllPaged(ctx context.Context, params dtos.PaginationParams) (dtos.PagedResult[dtos.PersonDTO], error)
	GetByID(ctx context.Context, id uuid.UUID) (*dtos.PersonDTO, error)
	GetByCPF(ctx context.Context, cpf string) (*dtos.PersonDTO, error)
	Create(ctx context.Context, req dtos.CreatePersonRequest) (*dtos.PersonDTO, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePersonRequest) (*dtos.PersonDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ============================================
// Person Handler
// ============================================

// PersonHandler handles the person endpoints.
type PersonHandler struct {
	people PersonService
}

// NewPersonHandler builds a PersonHandler.
func NewPersonHandler(people PersonService) *PersonHandler {
	return &PersonHandler{people: people}
}

// CPFParam is the CPF path parameter.
type CPFParam struct {
	CPF string `uri:"cpf" binding:"required,cpf"`
}

// ============================================
// HTTP Handlers
// ============================================

// GetAll returns every person, or one page when pagination is requested.
//
// @Summary List people
// @Description Returns all people with their addresses; pass pageNumber/pageSize for a paged response
// @Tags People
// @Produce json
// @Security BearerAuth
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10) maximum(50)
// @Success 200 {object} common.APIResponse{data=[]dtos.PersonDTO}
// @Failure 401 {object} common.APIResponse
// @Router /api/v1/pessoas [get]
func (h *PersonHandler) GetAll(c *gin.Context) {
	if HasPagination(c) {
		page, err := h.people.GetAllPaged(c.Request.Context(), ParsePagination(c))
		if err != nil {
			common.HandleDomainError(c, err)
			return
		}
		common.SuccessWithMeta(c, http.StatusOK, page, BuildMeta(page))
		return
	}

	people, err := h.people.GetAll(c.Request.Context())
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, people)
}

// GetByID returns one person by ID.
//
// @Summary Get person by ID
// @Tags People
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.PersonDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas/{id} [get]
func (h *PersonHandler) GetByID(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	person, err := h.people.GetByID(c.Request.Context(), id)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, person)
}

// GetByCPF returns one person by CPF.
//
// @Summary Get person by CPF
// @Tags People
// @Produce json
// @Security BearerAuth
// @Param cpf path string true "CPF (formatted or bare digits)"
// @Success 200 {object} common.APIResponse{data=dtos.PersonDTO}
// @Failure 400 {object} common.APIResponse "Malformed CPF"
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas/cpf/{cpf} [get]
func (h *PersonHandler) GetByCPF(c *gin.Context) {
	var params CPFParam
	if err := c.ShouldBindUri(&params); err != nil {
		HandleValidationErrors(c, err)
		return
	}

	person, err := h.people.GetByCPF(c.Request.Context(), params.CPF)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, person)
}

// Create registers a new person.
//
// @Summary Create person
// @Description Creates a person with the embedded address list
// @Tags People
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dtos.CreatePersonRequest true "Person data"
// @Success 201 {object} common.APIResponse{data=dtos.PersonDTO}
// @Failure 400 {object} common.APIResponse
// @Router /api/v1/pessoas [post]
func (h *PersonHandler) Create(c *gin.Context) {
	var req dtos.CreatePersonRequest
	if !BindJSON(c, &req) {
		return
	}

	person, err := h.people.Create(c.Request.Context(), req)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	middleware.RecordPersonCreated(apiVersion(c))
	common.Success(c, http.StatusCreated, person)
}

// apiVersion extracts the version segment from the matched route.
func apiVersion(c *gin.Context) string {
	if strings.Contains(c.FullPath(), "/v2/") {
		return "v2"
	}
	return "v1"
}

// Update changes an existing person.
//
// @Summary Update person
// @Description Updates a person and reconciles the embedded address list
// @Tags People
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID" format(uuid)
// @Param request body dtos.UpdatePersonRequest true "Person data (CPF is immutable)"
// @Success 200 {object} common.APIResponse{data=dtos.PersonDTO}
// @Failure 400 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas/{id} [put]
func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dtos.UpdatePersonRequest
	if !BindJSON(c, &req) {
		return
	}

	person, err := h.people.Update(c.Request.Context(), id, req)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, person)
}

// Delete removes a person and, through the store, their addresses.
//
// @Summary Delete person
// @Tags People
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID" format(uuid)
// @Success 204 "No Content"
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas/{id} [delete]
func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.people.Delete(c.Request.Context(), id)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	if !deleted {
		common.NotFoundResponse(c, "Person")
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers the full person surface (API v1).
//
// Routes:
// - GET    /pessoas           - List people (optionally paged)
// - GET    /pessoas/:id       - Get person by ID
// - GET    /pessoas/cpf/:cpf  - Get person by CPF
// - POST   /pessoas           - Create person
// - PUT    /pessoas/:id       - Update person
// - DELETE /pessoas/:id       - Delete person
func (h *PersonHandler) RegisterRoutes(router *gin.RouterGroup) {
	people := router.Group("/pessoas")
	{
		people.GET("", h.GetAll)
		people.GET("/:id", h.GetByID)
		people.GET("/cpf/:cpf", h.GetByCPF)
		people.POST("", h.Create)
		people.PUT("/:id", h.Update)
		people.DELETE("/:id", h.Delete)
	}
}

// RegisterRoutesV2 registers the v2 write surface. Reads stay on v1;
// version 2 only changes the write rules (an address is mandatory).
//
// Routes:
// - POST /pessoas     - Create person (requires at least one address)
// - PUT  /pessoas/:id - Update person (requires at least one address)
func (h *PersonHandler) RegisterRoutesV2(router *gin.RouterGroup) {
	people := router.Group("/pessoas")
	{
		people.POST("", h.Create)
		people.PUT("/:id", h.Update)
	}
}
