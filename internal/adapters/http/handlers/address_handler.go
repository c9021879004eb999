// Package handlers - Address HTTP handlers.
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

// AddressService is the application surface the handler depends on.
type AddressService interface {
	GetAll(ctx context.Context) ([]dtos.AddressDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dtos.AddressDTO, error)
	GetByPersonID(ctx context.Context, personID uuid.UUID) ([]dtos.AddressDTO, error)
	GetByPersonIDPaged(ctx context.Context, personID uuid.UUID, params dtos.PaginationParams) (dtos.PagedResult[dtos.AddressDTO], error)
	Search(ctx context.Context, criteria dtos.AddressSearchRequest) ([]dtos.AddressDTO, error)
	Create(ctx context.Context, req dtos.CreateAddressRequest) (*dtos.AddressDTO, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateAddressRequest) (*dtos.AddressDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ============================================
// Address Handler
// ============================================

// AddressHandler handles the address endpoints.
type AddressHandler struct {
	addresses AddressService
}

// NewAddressHandler builds an AddressHandler.
func NewAddressHandler(addresses AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

// AddressSearchParams are the optional search filters from the query string.
type AddressSearchParams struct {
	Cidade string `form:"cidade" json:"cidade"`
	Estado string `form:"estado" json:"estado" binding:"omitempty,uf"`
	CEP    string `form:"cep" json:"cep" binding:"omitempty,cep"`
}

// ============================================
// HTTP Handlers
// ============================================

// GetAll returns every address.
//
// @Summary List addresses
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]dtos.AddressDTO}
// @Failure 401 {object} common.APIResponse
// @Router /api/v1/enderecos [get]
func (h *AddressHandler) GetAll(c *gin.Context) {
	addresses, err := h.addresses.GetAll(c.Request.Context())
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, addresses)
}

// Search filters addresses by city, state and CEP.
//
// @Summary Search addresses
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param cidade query string false "City (case-insensitive)"
// @Param estado query string false "State abbreviation (UF)"
// @Param cep query string false "Postal code"
// @Success 200 {object} common.APIResponse{data=[]dtos.AddressDTO}
// @Failure 400 {object} common.APIResponse
// @Router /api/v1/enderecos/busca [get]
func (h *AddressHandler) Search(c *gin.Context) {
	var params AddressSearchParams
	if !BindQuery(c, &params) {
		return
	}

	addresses, err := h.addresses.Search(c.Request.Context(), dtos.AddressSearchRequest{
		Cidade: params.Cidade,
		Estado: params.Estado,
		CEP:    params.CEP,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, addresses)
}

// GetByID returns one address by ID.
//
// @Summary Get address by ID
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.AddressDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/enderecos/{id} [get]
func (h *AddressHandler) GetByID(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	address, err := h.addresses.GetByID(c.Request.Context(), id)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, address)
}

// GetByPersonID returns a person's addresses, or one page of them when
// pagination is requested.
//
// @Summary List addresses of a person
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param pessoaId path string true "Person ID" format(uuid)
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10) maximum(50)
// @Success 200 {object} common.APIResponse{data=[]dtos.AddressDTO}
// @Router /api/v1/enderecos/pessoa/{pessoaId} [get]
func (h *AddressHandler) GetByPersonID(c *gin.Context) {
	personID, ok := ParseIDParam(c, "pessoaId")
	if !ok {
		return
	}

	if HasPagination(c) {
		page, err := h.addresses.GetByPersonIDPaged(c.Request.Context(), personID, ParsePagination(c))
		if err != nil {
			common.HandleDomainError(c, err)
			return
		}
		common.SuccessWithMeta(c, http.StatusOK, page, BuildMeta(page))
		return
	}

	addresses, err := h.addresses.GetByPersonID(c.Request.Context(), personID)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, addresses)
}

// Create attaches an address to an existing person.
//
// @Summary Create address
// @Tags Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dtos.CreateAddressRequest true "Address data"
// @Success 201 {object} common.APIResponse{data=dtos.AddressDTO}
// @Failure 400 {object} common.APIResponse
// @Router /api/v1/enderecos [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req dtos.CreateAddressRequest
	if !BindJSON(c, &req) {
		return
	}

	address, err := h.addresses.Create(c.Request.Context(), req)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusCreated, address)
}

// Update changes an existing address. Ownership never moves.
//
// @Summary Update address
// @Tags Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID" format(uuid)
// @Param request body dtos.UpdateAddressRequest true "Address data"
// @Success 200 {object} common.APIResponse{data=dtos.AddressDTO}
// @Failure 400 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/enderecos/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dtos.UpdateAddressRequest
	if !BindJSON(c, &req) {
		return
	}

	address, err := h.addresses.Update(c.Request.Context(), id, req)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.Success(c, http.StatusOK, address)
}

// Delete removes an address.
//
// @Summary Delete address
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID" format(uuid)
// @Success 204 "No Content"
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/enderecos/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.addresses.Delete(c.Request.Context(), id)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	if !deleted {
		common.NotFoundResponse(c, "Address")
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers the address routes.
//
// Routes:
// - GET    /enderecos                  - List addresses
// - GET    /enderecos/busca            - Search addresses
// - GET    /enderecos/:id              - Get address by ID
// - GET    /enderecos/pessoa/:pessoaId - List addresses of a person (optionally paged)
// - POST   /enderecos                  - Create address
// - PUT    /enderecos/:id              - Update address
// - DELETE /enderecos/:id              - Delete address
func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup) {
	addresses := router.Group("/enderecos")
	{
		addresses.GET("", h.GetAll)
		addresses.GET("/busca", h.Search)
		addresses.GET("/:id", h.GetByID)
		addresses.GET("/pessoa/:pessoaId", h.GetByPersonID)
		addresses.POST("", h.Create)
		addresses.PUT("/:id", h.Update)
		addresses.DELETE("/:id", h.Delete)
	}
}
