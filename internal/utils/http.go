package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and sends it as the response body with the given
// status code. The "Content-Type" header is set to "application/json" before
// the status line is written. On success it returns the number of body bytes
// written.
//
// If marshaling fails the client receives a plain 500 instead, and the
// wrapped marshal error is returned for the caller to log.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
