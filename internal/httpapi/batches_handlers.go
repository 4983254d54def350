package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobsift-engine/internal/domain"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/pipeline"
	"jobsift-engine/internal/rank"
)

type BatchesHandler struct {
	Deps
}

// BatchResult is the ingest response: counts plus the processed postings in
// ranked order.
type BatchResult struct {
	Received int              `json:"received"`
	Kept     int              `json:"kept"`
	Archived int              `json:"archived"`
	Postings []domain.Posting `json:"postings"`
}

// Ingest accepts one collected batch, runs the full pipeline against the
// current archive, and persists the merged result. The batch may be partial;
// a collector cancelled mid-run posts whatever it has.
func (h BatchesHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var batch []domain.Posting
	if err := dec.Decode(&batch); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}

	ctx := r.Context()
	cfg := h.cfg()

	archived, err := h.Archive.LoadAll(ctx)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "archive_read", err.Error())
		return
	}

	processed, err := pipeline.Process(ctx, batch, archived, rank.ConfigScorer{Scoring: cfg.Scoring}, h.Workers)
	if err != nil {
		status, code := http.StatusInternalServerError, "pipeline"
		if errors.Is(err, ctx.Err()) {
			status, code = 499, "client_closed"
		}
		WriteError(w, r, status, code, err.Error())
		return
	}

	merged := append(processed, archived...)
	if err := h.Archive.ReplaceAll(ctx, merged, cfg.Archive.Snapshots); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "archive_write", err.Error())
		return
	}

	reqID := RequestIDFrom(ctx)
	h.Hub.Publish(events.BatchProcessed(reqID, len(batch), len(processed), len(merged)))

	WriteJSON(w, http.StatusOK, BatchResult{
		Received: len(batch),
		Kept:     len(processed),
		Archived: len(merged),
		Postings: processed,
	})
}
