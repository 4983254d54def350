package httpapi

import (
	"encoding/json"
	"net/http"
)

// APIError is the envelope every non-2xx response carries. The request id
// echoes the X-Request-ID header so a client error can be matched to the
// access log line.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError sends an APIError. Codes are short machine-readable slugs
// ("bad_json", "unranked_archive", "rate_limited") that clients switch on;
// the message is for humans.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
