package httpapi

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewMux wires the handler set. Outer middleware (request IDs, recovery,
// access log, CORS) is applied by main around the whole mux.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	bh := BatchesHandler{Deps: d}
	// one ingest at a time on average, short bursts allowed
	ingestLimit := rate.NewLimiter(rate.Limit(1), 4)
	mux.Handle("/batches", Chain(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: bh.Ingest,
	}), RateLimit(ingestLimit)))

	ph := PostingsHandler{Deps: d}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.List,
	}))
	mux.HandleFunc("/snapshots", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Snapshots,
	}))

	ch := ConfigHandler{Deps: d}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{Deps: d}.Health,
	}))

	return mux
}
