// Package handlers - Person+Address composite HTTP handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/adapters/http/common"
	"github.com/Haleralex/peoplehub/internal/application/dtos"
)

// ============================================
// Service Interface
// ============================================

// PersonAddressService is the application surface the handler depends on.
type PersonAddressService interface {
	GetAll(ctx context.Context) ([]dtos.PersonAddressDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dtos.PersonAddressDTO, error)
	GetByPersonID(ctx context.Context, personID uuid.UUID) ([]dtos.PersonAddressDTO, error)
	Create(ctx context.Context, req dtos.CreatePersonAddressRequest) (*dtos.PersonAddressDTO, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePersonAddressRequest) (*dtos.PersonAddressDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ============================================
// PersonAddress Handler
// ============================================

// PersonAddressHandler serves the flat person+address projection: one row
// per person/address pair, person data and address data side by side.
type PersonAddressHandler struct {
	records PersonAddressService
}

// NewPersonAddressHandler builds a PersonAddressHandler.
func NewPersonAddressHandler(records PersonAddressService) *PersonAddressHandler {
	return &PersonAddressHandler{records: records}
}

// ============================================
// HTTP Handlers
// ============================================

// GetAll returns one row per person with their canonical address.
//
// @Summary List person+address records
// @Tags PersonAddress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]dtos.PersonAddressDTO}
// @Failure 401 {object} common.APIResponse
// @Router /api/v1/pessoas-enderecos [get]
func (h *PersonAddressHandler) GetAll(c *gin.Context) {
	records, err := h.records.GetAll(c.Request.Context())
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, records)
}

// GetByID returns one record. The ID may be an address ID or, for people
// without addresses, a person ID.
//
// @Summary Get person+address record
// @Tags PersonAddress
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.PersonAddressDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas-enderecos/{id} [get]
func (h *PersonAddressHandler) GetByID(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.records.GetByID(c.Request.Context(), id)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, record)
}

// GetByPersonID returns every record of one person.
//
// @Summary List records of a person
// @Tags PersonAddress
// @Produce json
// @Security BearerAuth
// @Param pessoaId path string true "Person ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=[]dtos.PersonAddressDTO}
// @Router /api/v1/pessoas-enderecos/pessoa/{pessoaId} [get]
func (h *PersonAddressHandler) GetByPersonID(c *gin.Context) {
	personID, ok := ParseIDParam(c, "pessoaId")
	if !ok {
		return
	}

	records, err := h.records.GetByPersonID(c.Request.Context(), personID)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, records)
}

// Create registers a person and their address in one request.
//
// @Summary Create person with address
// @Tags PersonAddress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dtos.CreatePersonAddressRequest true "Person and address data"
// @Success 201 {object} common.APIResponse{data=dtos.PersonAddressDTO}
// @Failure 400 {object} common.APIResponse
// @Router /api/v1/pessoas-enderecos [post]
func (h *PersonAddressHandler) Create(c *gin.Context) {
	var req dtos.CreatePersonAddressRequest
	if !BindJSON(c, &req) {
		return
	}

	record, err := h.records.Create(c.Request.Context(), req)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusCreated, record)
}

// Update changes a person and their canonical address in one request.
//
// @Summary Update person with address
// @Tags PersonAddress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID" format(uuid)
// @Param request body dtos.UpdatePersonAddressRequest true "Person and address data (CPF is immutable)"
// @Success 200 {object} common.APIResponse{data=dtos.PersonAddressDTO}
// @Failure 400 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas-enderecos/{id} [put]
func (h *PersonAddressHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dtos.UpdatePersonAddressRequest
	if !BindJSON(c, &req) {
		return
	}

	record, err := h.records.Update(c.Request.Context(), id, req)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, record)
}

// Delete removes a person together with all their addresses.
//
// @Summary Delete person and addresses
// @Tags PersonAddress
// @Produce json
// @Security BearerAuth
// @Param id path string true "Person ID" format(uuid)
// @Success 204 "No Content"
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/pessoas-enderecos/{id} [delete]
func (h *PersonAddressHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.records.Delete(c.Request.Context(), id)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	if !deleted {
		common.NotFoundResponse(c, "Record")
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers the person+address routes.
//
// Routes:
// - GET    /pessoas-enderecos                  - List records
// - GET    /pessoas-enderecos/:id              - Get record
// - GET    /pessoas-enderecos/pessoa/:pessoaId - List records of a person
// - POST   /pessoas-enderecos                  - Create person with address
// - PUT    /pessoas-enderecos/:id              - Update person with address
// - DELETE /pessoas-enderecos/:id              - Delete person and addresses
func (h *PersonAddressHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/pessoas-enderecos")
	{
		records.GET("", h.GetAll)
		records.GET("/:id", h.GetByID)
		records.GET("/pessoa/:pessoaId", h.GetByPersonID)
		records.POST("", h.Create)
		records.PUT("/:id", h.Update)
		records.DELETE("/:id", h.Delete)
	}
}
