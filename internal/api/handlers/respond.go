package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/logger"
)

// validate checks request DTOs; handlers share one instance.
var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError is the single mapping from domain outcomes to HTTP responses.
// ErrMealNotFound covers both "does not exist" and "not yours"; the mapping
// must stay uniform so ownership cannot be probed through status codes.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	case errors.Is(err, domain.ErrUsernameTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Username already registered"})
	case errors.Is(err, domain.ErrMealNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Meal not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "User not found"})
	default:
		logger.Log.Errorf("request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()),
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
}
