package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Haleralex/peoplehub/internal/adapters/http/middleware"
	"github.com/Haleralex/peoplehub/internal/application/dtos"
)

// ============================================
// Stub Services
// ============================================

type stubPersonService struct{}

func (stubPersonService) GetAll(context.Context) ([]dtos.PersonDTO, error) {
	return []dtos.PersonDTO{}, nil
}
func (stubPersonService) GetAllPaged(context.Context, dtos.PaginationParams) (dtos.PagedResult[dtos.PersonDTO], error) {
	return dtos.PagedResult[dtos.PersonDTO]{}, nil
}
func (stubPersonService) GetByID(context.Context, uuid.UUID) (*dtos.PersonDTO, error) {
	return &dtos.PersonDTO{}, nil
}
func (stubPersonService) GetByCPF(context.Context, string) (*dtos.PersonDTO, error) {
	return &dtos.PersonDTO{}, nil
}
func (stubPersonService) Create(context.Context, dtos.CreatePersonRequest) (*dtos.PersonDTO, error) {
	return &dtos.PersonDTO{}, nil
}
func (stubPersonService) Update(context.Context, uuid.UUID, dtos.UpdatePersonRequest) (*dtos.PersonDTO, error) {
	return &dtos.PersonDTO{}, nil
}
func (stubPersonService) Delete(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, dtos.LoginRequest) (*dtos.TokenDTO, error) {
	return &dtos.TokenDTO{Token: "stub"}, nil
}

// ============================================
// Test Setup
// ============================================

func buildTestRouter(validator func(string) (*middleware.AuthClaims, error)) *gin.Engine {
	gin.SetMode(gin.TestMode)

	config := DefaultRouterConfig()
	if validator != nil {
		config.AuthTokenValidator = validator
	}

	return NewRouter(config, &Services{
		People: &PersonServices{
			V1: stubPersonService{},
			V2: stubPersonService{},
		},
		Auth: stubAuthService{},
	})
}

func allowAllValidator(string) (*middleware.AuthClaims, error) {
	return &middleware.AuthClaims{
		UserID: uuid.New().String(),
		Exp:    time.Now().Add(time.Hour),
	}, nil
}

// ============================================
// Test Cases
// ============================================

func TestRouter_HealthEndpointsArePublic(t *testing.T) {
	router := buildTestRouter(nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_MetricsEndpointIsPublic(t *testing.T) {
	router := buildTestRouter(nil)

	// Generate at least one sample before scraping
	warmup := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(httptest.NewRecorder(), warmup)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "peoplehub_http_requests_total")
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := buildTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pessoas", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Malformed scheme is rejected as well
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pessoas", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w = httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_ValidTokenPassesAuth(t *testing.T) {
	router := buildTestRouter(allowAllValidator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pessoas", nil)
	req.Header.Set("Authorization", "Bearer any-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LoginIsPublic(t *testing.T) {
	router := buildTestRouter(nil)

	// No body: binding fails with 400, but auth does not block the route
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_V2ExposesOnlyWrites(t *testing.T) {
	router := buildTestRouter(allowAllValidator)

	// Reads are not mounted on v2
	req := httptest.NewRequest(http.MethodGet, "/api/v2/pessoas", nil)
	req.Header.Set("Authorization", "Bearer any-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deletes neither
	req = httptest.NewRequest(http.MethodDelete, "/api/v2/pessoas/"+uuid.New().String(), nil)
	req.Header.Set("Authorization", "Bearer any-token")
	w = httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_NoRoute(t *testing.T) {
	router := buildTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Endpoint not found")
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := buildTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pessoas", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_MissingServicesStillServesHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(DefaultRouterConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
