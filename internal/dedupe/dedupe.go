// Package dedupe removes duplicate postings, both within one collected batch
// and against the historical archive. Two postings are duplicates when they
// agree on any one of a fixed priority list of key sets; a key with an empty
// component never matches anything.
package dedupe

import (
	"sort"
	"strings"

	"jobsift-engine/internal/domain"
)

// keySets, in evaluation order. Each extracts the composite key for one
// duplicate criterion, or "" when a component is empty.
var keySets = []func(domain.Posting) string{
	func(p domain.Posting) string { return compositeKey(p.ID) },
	func(p domain.Posting) string { return compositeKey(p.JobURLDirect) },
	func(p domain.Posting) string { return compositeKey(p.Company, p.Title) },
	func(p domain.Posting) string { return compositeKey(p.Title, p.Description) },
}

func compositeKey(fields ...string) string {
	for _, f := range fields {
		if f == "" {
			return ""
		}
	}
	return strings.Join(fields, "\x00")
}

// InBatch removes duplicates within one batch. The batch is put in
// oldest-first order so that the earliest posting of a duplicate group is
// the one kept, each key set is applied in turn, and the survivors come back
// newest-first. Idempotent.
func InBatch(batch []domain.Posting) []domain.Posting {
	out := make([]domain.Posting, len(batch))
	copy(out, batch)
	sortByDate(out, false)

	for _, key := range keySets {
		seen := make(map[string]bool, len(out))
		kept := out[:0]
		for _, p := range out {
			k := key(p)
			if k != "" {
				if seen[k] {
					continue
				}
				seen[k] = true
			}
			kept = append(kept, p)
		}
		out = kept
	}

	sortByDate(out, true)
	return out
}

// DropKnown removes batch postings already present in the archive: a posting
// is dropped when it matches any archive posting on any key set. Order of
// the survivors is unchanged.
func DropKnown(batch, archive []domain.Posting) []domain.Posting {
	known := make([]map[string]bool, len(keySets))
	for i, key := range keySets {
		known[i] = make(map[string]bool, len(archive))
		for _, p := range archive {
			if k := key(p); k != "" {
				known[i][k] = true
			}
		}
	}

	out := make([]domain.Posting, 0, len(batch))
	for _, p := range batch {
		dup := false
		for i, key := range keySets {
			if k := key(p); k != "" && known[i][k] {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// Legacy is the lightweight variant from before keyed archives existed. When
// keywordsOf supplies a matched-keywords string per posting, duplicates are
// dropped on (company, keywords) then (title, keywords); with no keywords
// available it degrades to (company, title) alone. Keeps first occurrences
// in the given order.
func Legacy(batch []domain.Posting, keywordsOf func(domain.Posting) string) []domain.Posting {
	var keys []func(domain.Posting) string
	if keywordsOf != nil {
		keys = []func(domain.Posting) string{
			func(p domain.Posting) string { return compositeKey(p.Company, keywordsOf(p)) },
			func(p domain.Posting) string { return compositeKey(p.Title, keywordsOf(p)) },
		}
	} else {
		keys = []func(domain.Posting) string{
			func(p domain.Posting) string { return compositeKey(p.Company, p.Title) },
		}
	}

	out := append([]domain.Posting(nil), batch...)
	for _, key := range keys {
		seen := make(map[string]bool, len(out))
		kept := out[:0]
		for _, p := range out {
			k := key(p)
			if k != "" {
				if seen[k] {
					continue
				}
				seen[k] = true
			}
			kept = append(kept, p)
		}
		out = kept
	}
	return out
}

// sortByDate stable-sorts by posting date; ties keep their relative order.
func sortByDate(ps []domain.Posting, newestFirst bool) {
	sort.SliceStable(ps, func(i, j int) bool {
		if newestFirst {
			return ps[i].DatePosted.After(ps[j].DatePosted)
		}
		return ps[i].DatePosted.Before(ps[j].DatePosted)
	})
}
