package handler

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/dinethlive/dpdf-planner/pkg/errors"
)

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError maps a domain error to the transport taxonomy and writes it.
func writeDomainError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromDomain(err)
	writeJSON(w, appErr.StatusCode, appErr)
}
