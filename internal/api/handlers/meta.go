package handlers

import (
	"net/http"
	"time"

	"github.com/tiaraclaudya/inventory-service/internal/utils/response"
)

// MetaHandler serves the liveness, catalog, and fallback endpoints.
type MetaHandler struct {
	startTime time.Time
}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{startTime: time.Now()}
}

type healthStatus struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

func (h *MetaHandler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.WriteJSON(w, http.StatusOK, healthStatus{
			Status:    "OK",
			Service:   "Inventory Service",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(h.startTime).Seconds(),
		})

	}
}

type serviceInfo struct {
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   map[string]any `json:"endpoints"`
}

// Catalog answers the root path with a machine-readable endpoint map.
func (h *MetaHandler) Catalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.WriteJSON(w, http.StatusOK, serviceInfo{
			Service:     "Electronic Inventory Service",
			Version:     "1.0.0",
			Description: "Microservice managing the electronics inventory",
			Endpoints: map[string]any{
				"products": map[string]string{
					"get_all":      "GET /api/product",
					"get_by_id":    "GET /api/product/{id}",
					"get_by_code":  "GET /api/product/code/{code}",
					"search":       "GET /api/product/search?q=keyword",
					"low_stock":    "GET /api/product/low-stock?threshold=10",
					"by_category":  "GET /api/product/category/{categoryId}",
					"by_price":     "GET /api/product/price-range?min=0&max=1000000",
					"statistics":   "GET /api/product/statistics",
					"create":       "POST /api/product",
					"update":       "PUT /api/product/{id}",
					"update_stock": "PATCH /api/product/{id}/stock",
					"delete":       "DELETE /api/product/{id}",
				},
				"categories": map[string]string{
					"get_all":        "GET /api/categories",
					"get_with_count": "GET /api/categories/with-count",
					"get_by_id":      "GET /api/categories/{id}",
					"create":         "POST /api/categories",
					"update":         "PUT /api/categories/{id}",
					"delete":         "DELETE /api/categories/{id}",
				},
				"users": map[string]string{
					"get_all":          "GET /api/user",
					"get_by_id":        "GET /api/user/{id}",
					"search":           "GET /api/user/search?q=keyword",
					"create":           "POST /api/user",
					"update":           "PUT /api/user/{id}",
					"delete":           "DELETE /api/user/{id}",
					"user_for_product": "GET /api/products/{productId}/creator/{userId}",
					"health_check":     "GET /api/health/user-service",
				},
				"health":  "GET /health",
				"ready":   "GET /health/ready",
				"metrics": "GET /metrics",
			},
		})

	}
}

// NotFound is the fallback for every unmatched route.
func (h *MetaHandler) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.WriteJSON(w, http.StatusNotFound, response.Envelope{
			Success: false,
			Message: "Endpoint not found",
			Path:    r.URL.Path,
			Method:  r.Method,
		})

	}
}
