// Package handlers contains the HTTP handlers for the REST API.
//
// A handler is an Adapter in Clean Architecture terms:
// - Accepts an HTTP request
// - Converts it into an application DTO
// - Calls the service
// - Converts the result into an HTTP response
package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Haleralex/peoplehub/internal/adapters/http/common"
	"github.com/Haleralex/peoplehub/internal/application/dtos"
	"github.com/Haleralex/peoplehub/internal/domain/valueobjects"
)

// ============================================
// Custom Validator Setup
// ============================================

var setupOnce sync.Once

// SetupValidator registers the custom validators with Gin.
func SetupValidator() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			// Use the json tag for field names in error payloads
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})

			_ = v.RegisterValidation("cpf", validateCPF)
			_ = v.RegisterValidation("cep", validateCEP)
			_ = v.RegisterValidation("uf", validateUF)
		}
	})
}

// ============================================
// Custom Validators
// ============================================

// validateCPF checks the CPF check digits.
func validateCPF(fl validator.FieldLevel) bool {
	return valueobjects.NewCPF(fl.Field().String()).IsValid()
}

// validateCEP checks the 00000-000 / 00000000 postal code format.
func validateCEP(fl validator.FieldLevel) bool {
	return valueobjects.NewCEP(fl.Field().String()).IsValid()
}

// brazilianStates holds the 26 state abbreviations plus the federal district.
var brazilianStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// validateUF checks a Brazilian state abbreviation.
func validateUF(fl validator.FieldLevel) bool {
	return brazilianStates[strings.ToUpper(fl.Field().String())]
}

// ============================================
// Validation Error Handling
// ============================================

// HandleValidationErrors converts binding errors into an HTTP response.
func HandleValidationErrors(c *gin.Context, err error) {
	var fieldErrors []common.FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			fieldErrors = append(fieldErrors, common.FieldError{
				Field:   fieldErr.Field(),
				Message: getValidationMessage(fieldErr),
			})
		}
	}

	if len(fieldErrors) == 0 {
		common.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	common.ValidationErrorResponse(c, fieldErrors)
}

// getValidationMessage returns a human-readable message for a failed rule.
func getValidationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return "Invalid UUID format"
	case "min":
		return "Value is too short (minimum: " + fe.Param() + ")"
	case "max":
		return "Value is too long (maximum: " + fe.Param() + ")"
	case "cpf":
		return "O CPF informado não é válido."
	case "cep":
		return "O CEP deve estar no formato 00000-000 ou 00000000."
	case "uf":
		return "Use a sigla do estado com 2 caracteres."
	default:
		return "Invalid value"
	}
}

// ============================================
// Request Parsing Helpers
// ============================================

// BindJSON binds the JSON request body.
// Returns true on success, false when the error response was already sent.
func BindJSON[T any](c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		HandleValidationErrors(c, err)
		return false
	}
	return true
}

// BindQuery binds query parameters.
func BindQuery[T any](c *gin.Context, req *T) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		HandleValidationErrors(c, err)
		return false
	}
	return true
}

// ParseIDParam parses a UUID path parameter. When the value is malformed
// the error response is sent and ok is false.
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		common.ValidationErrorResponse(c, []common.FieldError{
			{Field: name, Message: "Invalid UUID format"},
		})
		return uuid.Nil, false
	}
	return id, true
}

// ============================================
// Pagination Helpers
// ============================================

// HasPagination reports whether the client asked for a paged response.
// Mirrors the optional pagination of the API: without the query
// parameters the full collection is returned.
func HasPagination(c *gin.Context) bool {
	return c.Query("pageNumber") != "" || c.Query("pageSize") != ""
}

// ParsePagination reads the pagination query parameters.
func ParsePagination(c *gin.Context) dtos.PaginationParams {
	var params dtos.PaginationParams
	_ = c.ShouldBindQuery(&params)
	return params.Normalize()
}

// BuildMeta converts a paged result into response metadata.
func BuildMeta[T any](page dtos.PagedResult[T]) *common.APIMeta {
	return &common.APIMeta{
		Page:       page.CurrentPage,
		PerPage:    page.PageSize,
		Total:      int64(page.TotalCount),
		TotalPages: page.TotalPages,
	}
}
