package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vendio/api/internal/core/domain"
)

const serverErrorMessage = "Server error. Please try again."

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, map[string]any{
		"success": success,
		"message": message,
	})
}

// writeAuthError maps credential-verifier failures onto statuses:
// validation 400, bad credentials 401, duplicate email 409, the rest
// a generic 500 that leaks nothing.
func writeAuthError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, false, verr.Message)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, false, "Invalid email or password.")
	case errors.Is(err, domain.ErrEmailExists):
		writeMessage(w, http.StatusConflict, false, "An account with this email already exists.")
	default:
		writeMessage(w, http.StatusInternalServerError, false, serverErrorMessage)
	}
}
