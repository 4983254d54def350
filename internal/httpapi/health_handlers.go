package httpapi

import (
	"net/http"
)

type HealthHandler struct {
	Deps
}

// Health reports liveness plus a cheap archive probe so dashboards can tell
// "engine up" apart from "engine up but archive unreachable".
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	archiveOK := h.Archive.Pool.PingContext(r.Context()) == nil
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"archive": archiveOK,
	})
}
