package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiaraclaudya/inventory-service/internal/api/handlers"
	"github.com/tiaraclaudya/inventory-service/internal/testutils"
)

func TestHealth(t *testing.T) {
	metaHandler := handlers.NewMetaHandler()

	// Arrange
	rr := httptest.NewRecorder()
	req := testutils.NewRequest(http.MethodGet, "/health", nil, nil)

	// Act
	metaHandler.Health().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Status    string  `json:"status"`
		Service   string  `json:"service"`
		Timestamp string  `json:"timestamp"`
		Uptime    float64 `json:"uptime"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "Inventory Service", body.Service)
	assert.NotEmpty(t, body.Timestamp)
	assert.GreaterOrEqual(t, body.Uptime, 0.0)
}

func TestCatalog(t *testing.T) {
	metaHandler := handlers.NewMetaHandler()

	// Arrange
	rr := httptest.NewRecorder()
	req := testutils.NewRequest(http.MethodGet, "/", nil, nil)

	// Act
	metaHandler.Catalog().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Service   string         `json:"service"`
		Version   string         `json:"version"`
		Endpoints map[string]any `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Electronic Inventory Service", body.Service)
	assert.Contains(t, body.Endpoints, "products")
	assert.Contains(t, body.Endpoints, "categories")
	assert.Contains(t, body.Endpoints, "users")
}

func TestNotFound(t *testing.T) {
	metaHandler := handlers.NewMetaHandler()

	// Arrange
	rr := httptest.NewRecorder()
	req := testutils.NewRequest(http.MethodGet, "/api/unknown", nil, nil)

	// Act
	metaHandler.NotFound().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, "Endpoint not found", env.Message)
	assert.Equal(t, "/api/unknown", env.Path)
	assert.Equal(t, http.MethodGet, env.Method)
}
