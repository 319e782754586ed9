package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	appErrors "github.com/tiaraclaudya/inventory-service/internal/errors"
	service "github.com/tiaraclaudya/inventory-service/internal/services"
	"github.com/tiaraclaudya/inventory-service/internal/utils"
	"github.com/tiaraclaudya/inventory-service/internal/utils/response"
)

const userServiceSource = "user-service"

// UserHandler is a pure relay onto the user service; payloads pass through
// untouched and only statuses are re-mapped.
type UserHandler struct {
	integrationService service.UserIntegrationService
}

func NewUserHandler(integrationService service.UserIntegrationService) *UserHandler {
	return &UserHandler{integrationService: integrationService}
}

func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		resp, err := h.integrationService.FetchUsers(r.Context())

		if err != nil {
			slog.Error("Failed to fetch users", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "Users fetched from User Service",
			Count:   resp.Count,
			Data:    resp.Data,
			Source:  userServiceSource,
		})

	}
}

func (h *UserHandler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID := r.PathValue("id")

		resp, err := h.integrationService.FetchUser(r.Context(), userID)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: fmt.Sprintf("User %s fetched successfully", userID),
			Data:    resp.Data,
			Source:  userServiceSource,
		})

	}
}

func (h *UserHandler) SearchUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query().Get("q")

		if query == "" {
			response.Error(w, appErrors.ValidationError("Search query (q) is required"))
			return
		}

		resp, err := h.integrationService.SearchUsers(r.Context(), query)

		if err != nil {
			slog.Error("Failed to search users", slog.String("query", query), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: fmt.Sprintf("Search results for %q", query),
			Query:   query,
			Count:   resp.Count,
			Data:    resp.Data,
			Source:  userServiceSource,
		})

	}
}

func (h *UserHandler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var body json.RawMessage
		if err := utils.DecodeJSONBody(r, &body); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		resp, err := h.integrationService.CreateUser(r.Context(), body)

		if err != nil {
			slog.Warn("User creation rejected by User Service", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.Envelope{
			Success: true,
			Message: "User created in User Service",
			Data:    resp.Data,
			Source:  userServiceSource,
		})

	}
}

func (h *UserHandler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID := r.PathValue("id")

		var body json.RawMessage
		if err := utils.DecodeJSONBody(r, &body); err != nil {
			response.Error(w, appErrors.ValidationError(err.Error()))
			return
		}

		resp, err := h.integrationService.UpdateUser(r.Context(), userID, body)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: fmt.Sprintf("User %s updated successfully", userID),
			Data:    resp.Data,
			Source:  userServiceSource,
		})

	}
}

func (h *UserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID := r.PathValue("id")

		resp, err := h.integrationService.DeleteUser(r.Context(), userID)

		if err != nil {
			response.Error(w, err)
			return
		}

		message := resp.Message
		if message == "" {
			message = fmt.Sprintf("User %s deleted", userID)
		}

		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: message,
			Source:  userServiceSource,
		})

	}
}

func (h *UserHandler) GetProductCreator() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := parseID(r, "productId")

		if err != nil {
			response.Error(w, appErrors.ValidationError("Invalid product id"))
			return
		}

		userID := r.PathValue("userId")

		data, err := h.integrationService.GetProductCreator(r.Context(), productID, userID)

		if err != nil {
			slog.Error("Failed to get user for product",
				slog.Int64("productId", productID),
				slog.String("userId", userID),
				slog.String("error", err.Error()),
			)
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "User and product data",
			Data:    data,
			Sources: map[string]string{
				"user":    userServiceSource,
				"product": "inventory-service",
			},
		})

	}
}

type dependencyStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Error   string `json:"error,omitempty"`
}

type userServiceHealth struct {
	Success          bool             `json:"success"`
	Message          string           `json:"message"`
	UserService      any              `json:"user_service"`
	InventoryService dependencyStatus `json:"inventory_service"`
}

// CheckUserServiceHealth reports both sides: this service is always OK when
// it can answer, the user service side reflects the probe result.
func (h *UserHandler) CheckUserServiceHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		self := dependencyStatus{Status: "OK", Service: "Inventory Service"}

		resp, err := h.integrationService.CheckHealth(r.Context())

		if err != nil {
			slog.Warn("User Service health check failed", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusServiceUnavailable, userServiceHealth{
				Success:          false,
				Message:          "User Service is not available",
				UserService:      dependencyStatus{Status: "DOWN", Error: err.Error()},
				InventoryService: self,
			})
			return
		}

		response.WriteJSON(w, http.StatusOK, userServiceHealth{
			Success:          true,
			Message:          "User Service is healthy",
			UserService:      resp,
			InventoryService: self,
		})

	}
}
