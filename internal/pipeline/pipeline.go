// Package pipeline runs the per-posting derivations and the batch-level
// dedup/rank passes in the right order. Per-posting work is pure and runs
// fanned out across workers; results are written by index so a concurrent
// run is indistinguishable from a sequential one.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"jobsift-engine/internal/ascii"
	"jobsift-engine/internal/dedupe"
	"jobsift-engine/internal/describe"
	"jobsift-engine/internal/domain"
	"jobsift-engine/internal/parse"
	"jobsift-engine/internal/rank"
)

const defaultWorkers = 8

// Derive computes every derived field for one posting from its raw fields.
// Existing derived state is discarded, never patched.
func Derive(p domain.Posting) domain.Posting {
	d := &domain.Derived{}
	d.Description = describe.Clean(p.Description)
	d.City, d.State, d.LocationDisplay = parse.Location(ascii.Normalize(p.Location))
	d.Degrees = parse.Degrees(d.Description)
	p.Derived = d
	return p
}

// DeriveAll derives the whole batch across workers goroutines, returning a
// new slice in the same order as the input. Cancelling ctx abandons the run;
// callers get the error, not a half-derived batch.
func DeriveAll(ctx context.Context, batch []domain.Posting, workers int) ([]domain.Posting, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	out := make([]domain.Posting, len(batch))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range batch {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Derive(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Process runs a collected batch through the full pipeline: derive fields,
// remove in-batch duplicates, drop postings already in the archive, then
// score and order best first. The batch may be partial; whatever was
// collected before cancellation still processes cleanly.
func Process(ctx context.Context, batch, archive []domain.Posting, scorer rank.Scorer, workers int) ([]domain.Posting, error) {
	derived, err := DeriveAll(ctx, batch, workers)
	if err != nil {
		return nil, err
	}
	derived = dedupe.InBatch(derived)
	derived = dedupe.DropKnown(derived, archive)
	return rank.PrioritizePostings(derived, scorer)
}
