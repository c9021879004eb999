// Package common holds shared types for the HTTP layer.
//
// It lives in its own package to avoid import cycles between handlers
// and the main http package.
package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/Haleralex/peoplehub/internal/domain/errors"
)

// ============================================
// Standard API Response Format
// ============================================

// APIResponse is the standard API response envelope.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *APIMeta    `json:"meta,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
}

// APIMeta carries pagination metadata.
type APIMeta struct {
	Page       int   `json:"page,omitempty"`
	PerPage    int   `json:"per_page,omitempty"`
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

// APIError is the API error structure.
type APIError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields,omitempty"`
	RetryAfter int          `json:"retry_after,omitempty"`
}

// FieldError reports a problem with a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ============================================
// Error Codes
// ============================================

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeUnavailable     = "SERVICE_UNAVAILABLE"
)

// ============================================
// Request ID
// ============================================

const (
	// RequestIDKey is the gin context key, shared with the RequestID
	// middleware.
	RequestIDKey = "request_id"
	// RequestIDHeader is the HTTP header carrying the request ID.
	RequestIDHeader = "X-Request-ID"
)

// GetRequestID returns the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if strID, ok := id.(string); ok {
			return strID
		}
	}
	return ""
}

// SetRequestID stores the request ID in the gin context and response header.
func SetRequestID(c *gin.Context, id string) {
	c.Set(RequestIDKey, id)
	c.Header(RequestIDHeader, id)
}

// ============================================
// Response Helpers
// ============================================

// Success sends a successful response.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success:   true,
		Data:      data,
		RequestID: GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// SuccessWithMeta sends a successful response with pagination metadata.
func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *APIMeta) {
	c.JSON(statusCode, APIResponse{
		Success:   true,
		Data:      data,
		Meta:      meta,
		RequestID: GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// Error sends an error response.
func Error(c *gin.Context, statusCode int, apiError *APIError) {
	c.JSON(statusCode, APIResponse{
		Success:   false,
		Error:     apiError,
		RequestID: GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// ============================================
// Error Response Helpers
// ============================================

// ValidationErrorResponse builds the response for validation failures.
func ValidationErrorResponse(c *gin.Context, fields []FieldError) {
	Error(c, http.StatusBadRequest, &APIError{
		Code:    ErrCodeValidation,
		Message: "Request validation failed",
		Fields:  fields,
	})
}

// NotFoundResponse builds a 404 response.
func NotFoundResponse(c *gin.Context, resource string) {
	Error(c, http.StatusNotFound, &APIError{
		Code:    ErrCodeNotFound,
		Message: resource + " not found",
	})
}

// BadRequestResponse builds a 400 response.
func BadRequestResponse(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
	})
}

// UnauthorizedResponse builds a 401 response.
func UnauthorizedResponse(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
	})
}

// ForbiddenResponse builds a 403 response.
func ForbiddenResponse(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
	})
}

// TooManyRequestsResponse builds the rate limiting response.
func TooManyRequestsResponse(c *gin.Context, retryAfter int) {
	Error(c, http.StatusTooManyRequests, &APIError{
		Code:       ErrCodeTooManyRequests,
		Message:    "Too many requests, please try again later",
		RetryAfter: retryAfter,
	})
}

// InternalErrorResponse builds a 500 response.
func InternalErrorResponse(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, &APIError{
		Code:    ErrCodeInternal,
		Message: message,
	})
}

// ============================================
// Domain Error to HTTP Error Mapper
// ============================================

// HandleDomainError translates a domain error into an HTTP response.
func HandleDomainError(c *gin.Context, err error) {
	// 1. Validation failures carry the full field list
	if valErrs := domainerrors.AsValidationErrors(err); valErrs != nil {
		fields := make([]FieldError, len(valErrs))
		for i, ve := range valErrs {
			fields[i] = FieldError{Field: ve.Field, Message: ve.Message}
		}
		ValidationErrorResponse(c, fields)
		return
	}

	// 2. Bad credentials never reveal whether the email exists
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		UnauthorizedResponse(c, "Invalid email or password")
		return
	}

	// 3. NotFound
	if domainerrors.IsNotFound(err) {
		NotFoundResponse(c, "Resource")
		return
	}

	// 4. Coded domain errors
	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		statusCode := http.StatusBadRequest

		switch domainErr.Code {
		case "PERSON_NOT_FOUND", "ADDRESS_NOT_FOUND", "USER_NOT_FOUND":
			statusCode = http.StatusNotFound
		}

		Error(c, statusCode, &APIError{
			Code:    domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	// 5. Default: Internal Server Error
	InternalErrorResponse(c, "An unexpected error occurred")
}
