package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tiaraclaudya/inventory-service/internal/errors"
	"github.com/go-playground/validator/v10"
)

// Envelope is the uniform response shape. Every endpoint answers with
// success plus whichever auxiliary fields apply; absent fields are omitted.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Count      *int   `json:"count,omitempty"`
	Query      string `json:"query,omitempty"`
	Threshold  *int   `json:"threshold,omitempty"`
	CategoryID *int64 `json:"category_id,omitempty"`
	PriceRange any    `json:"price_range,omitempty"`
	Data       any    `json:"data,omitempty"`
	Source     string `json:"source,omitempty"`
	Sources    any    `json:"sources,omitempty"`
	Errors     any    `json:"errors,omitempty"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Path       string `json:"path,omitempty"`
	Method     string `json:"method,omitempty"`
}

// Debug controls whether internal error detail is exposed in 500 bodies.
// Set once at startup from the environment; never enabled in production.
var Debug bool

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// List writes a collection payload with its length echoed as count.
func List(w http.ResponseWriter, count int, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Message(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// Error is the single translation point from a service fault to an HTTP
// status. Unknown errors become a generic 500; detail is only attached in
// developer mode.
func Error(w http.ResponseWriter, err error) {

	if appErr, ok := errors.IsAppError(err); ok {
		env := Envelope{
			Success:    false,
			Message:    appErr.Message,
			Errors:     appErr.Errors,
			Suggestion: appErr.Suggestion,
		}

		if Debug && appErr.Err != nil {
			env.Error = appErr.Err.Error()
		}

		WriteJSON(w, appErr.StatusCode, env)

		return
	}

	env := Envelope{
		Success: false,
		Message: "Internal server error",
	}

	if Debug && err != nil {
		env.Error = err.Error()
	}

	WriteJSON(w, http.StatusInternalServerError, env)
}

// ValidationError writes the per-field messages produced by the validator.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		case "gte":
			message = fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		case "lte":
			message = fmt.Sprintf("Field %s must be at most %s", err.Field(), err.Param())
		case "min":
			message = fmt.Sprintf("Field %s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s characters", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)

	}

	WriteJSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errMsgs,
	})
}
