package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMetrics_BasicRequest(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestMetrics_SkipMetricsEndpoint(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"200 OK", http.StatusOK},
		{"201 Created", http.StatusCreated},
		{"400 Bad Request", http.StatusBadRequest},
		{"404 Not Found", http.StatusNotFound},
		{"500 Internal Server Error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Metrics())
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)
		})
	}
}

func TestRecordPersonCreated(t *testing.T) {
	before := testutil.ToFloat64(PeopleCreatedTotal.WithLabelValues("v2"))

	RecordPersonCreated("v2")

	after := testutil.ToFloat64(PeopleCreatedTotal.WithLabelValues("v2"))
	assert.Equal(t, before+1, after)
}

func TestRecordLoginAttempt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success"))

		RecordLoginAttempt(true)

		after := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("success"))
		assert.Equal(t, before+1, after)
	})

	t.Run("Failure", func(t *testing.T) {
		before := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("failure"))

		RecordLoginAttempt(false)

		after := testutil.ToFloat64(LoginAttemptsTotal.WithLabelValues("failure"))
		assert.Equal(t, before+1, after)
	})
}

func TestUpdateDBConnections(t *testing.T) {
	UpdateDBConnections(3, 2, 10)

	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionsTotal.WithLabelValues("idle")))
	assert.Equal(t, float64(2), testutil.ToFloat64(DBConnectionsTotal.WithLabelValues("in_use")))
	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionsTotal.WithLabelValues("max")))
}
