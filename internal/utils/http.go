package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializes body as JSON into w with the given HTTP status code.
// The Content-Type header is set before the status line is written. A nil
// body writes only the status line, which is what 204 responses want.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}
