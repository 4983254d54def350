package httpapi

import (
	"net/http"
	"strconv"

	"jobsift-engine/internal/rank"
)

type PostingsHandler struct {
	Deps
}

// List returns archived postings, newest first by default. ?sort=rank
// re-ranks against the current scoring config and annotates every posting
// with its score breakdown; ?limit= caps the result.
func (h PostingsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	ps, err := h.Archive.LoadAll(ctx)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "archive_read", err.Error())
		return
	}

	if state := q.Get("state"); state != "" {
		kept := ps[:0]
		for _, p := range ps {
			if p.Derived != nil && p.Derived.State == state {
				kept = append(kept, p)
			}
		}
		ps = kept
	}

	limit := -1
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			WriteError(w, r, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative integer")
			return
		}
	}

	if q.Get("sort") == "rank" {
		scorer := rank.ConfigScorer{Scoring: h.cfg().Scoring}
		scored, err := rank.ScoreAll(ps, scorer)
		if err != nil {
			// archive rows predating the pipeline lack derived fields
			WriteError(w, r, http.StatusConflict, "unranked_archive", err.Error())
			return
		}
		rank.Prioritize(scored)
		if limit >= 0 && limit < len(scored) {
			scored = scored[:limit]
		}
		writeJSON(w, scored)
		return
	}

	if limit >= 0 && limit < len(ps) {
		ps = ps[:limit]
	}
	writeJSON(w, ps)
}

// Snapshots lists per-run snapshot metadata.
func (h PostingsHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.Archive.Snapshots(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "archive_read", err.Error())
		return
	}
	writeJSON(w, snaps)
}
