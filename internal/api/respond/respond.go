// Package respond provides shared JSON response utilities for API handlers.
// Every response is a JSON body, even when serializing the intended body
// fails: the fallback is a minimal error object, never an empty or non-JSON
// response.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// JSON writes v as a JSON body with the given status. A serialization
// failure degrades to a minimal {"error": ...} body with the same status.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		body = []byte(fmt.Sprintf(`{"error": "Failed to serialize response: %s"}`, jsonEscape(err.Error())))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// Error writes an error body of the form {"error": msg, ...extra}.
func Error(w http.ResponseWriter, status int, msg string, extra map[string]any) {
	body := map[string]any{"error": msg}
	for k, v := range extra {
		body[k] = v
	}
	JSON(w, status, body)
}

// jsonEscape makes an arbitrary message safe inside a JSON string literal.
func jsonEscape(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(b[1 : len(b)-1])
}
