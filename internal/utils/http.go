package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteJSON serializes data and writes it with statusCode and an
// "application/json" content type. If marshaling fails it responds with 500
// and returns the error.
//
// Example usage:
//
//	WriteJSON(w, models.VaultListResponse{Owner: owner, Numbers: numbers}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an ErrorResponse with statusCode, tagging it with the
// trace id of r when one is known.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{
		Error:   message,
		TraceID: GetTraceIDFromContext(r.Context()),
	}, statusCode)
}
