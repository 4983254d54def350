// Package rank scores postings along independent dimensions and orders a
// batch best first. Scores are comparative, not absolute: a posting's numbers
// only mean anything next to another posting scored with the same config.
package rank

import (
	"sort"
	"strings"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/domain"
)

// KeywordScore sums tier weights for every configured term found in text.
// Matching is case-insensitive substring containment. Tiers apply from
// heaviest to lightest and every hit counts, so a term listed in two tiers
// scores twice and shows up twice in the matched list.
func KeywordScore(text string, tiers map[int][]string) (int, []string) {
	lower := strings.ToLower(text)
	weights := make([]int, 0, len(tiers))
	for w := range tiers {
		weights = append(weights, w)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(weights)))

	score := 0
	var matched []string
	for _, w := range weights {
		for _, term := range tiers[w] {
			if term == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(term)) {
				score += w
				// report terms without escape backslashes
				matched = append(matched, strings.ReplaceAll(term, `\`, ""))
			}
		}
	}
	return score, matched
}

// DegreeScore sums the configured weight of every degree level the posting
// mentions.
func DegreeScore(set domain.DegreeSet, w config.DegreeWeights) int {
	score := 0
	if set.Has(domain.Bachelor) {
		score += w.Bachelor
	}
	if set.Has(domain.Master) {
		score += w.Master
	}
	if set.Has(domain.Doctorate) {
		score += w.Doctorate
	}
	return score
}

// RankOrderScore positions value in a preference list: the first entry scores
// len(order), the last scores 1, anything unlisted scores 0, and an empty
// value scores -1 so unknowns sort below known-but-unlisted ones.
func RankOrderScore(value string, order []string) int {
	if value == "" {
		return -1
	}
	for i, v := range order {
		if strings.EqualFold(v, value) {
			return len(order) - i
		}
	}
	return 0
}

// Scored pairs a posting with its score breakdown. The posting's fields
// marshal inline; the breakdown nests under "scores".
type Scored struct {
	domain.Posting
	Breakdown Breakdown `json:"scores"`
}

// ScoreAll scores every posting in order. The first scoring error aborts the
// batch; partial score sets are worse than none because Prioritize would
// silently favor the scored half.
func ScoreAll(ps []domain.Posting, s Scorer) ([]Scored, error) {
	out := make([]Scored, 0, len(ps))
	for _, p := range ps {
		b, err := s.Score(p)
		if err != nil {
			return nil, err
		}
		out = append(out, Scored{Posting: p, Breakdown: b})
	}
	return out, nil
}

// Prioritize stable-sorts scored postings best first: most recent posting
// date, then requirement, location, and site scores in that order. Stability
// keeps the incoming order for full ties.
func Prioritize(items []Scored) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.DatePosted.Equal(b.DatePosted) {
			return a.DatePosted.After(b.DatePosted)
		}
		if a.Breakdown.Requirement != b.Breakdown.Requirement {
			return a.Breakdown.Requirement > b.Breakdown.Requirement
		}
		if a.Breakdown.Location != b.Breakdown.Location {
			return a.Breakdown.Location > b.Breakdown.Location
		}
		return a.Breakdown.Site > b.Breakdown.Site
	})
}

// PrioritizePostings scores and sorts a batch, returning the postings alone
// for callers that only need the order.
func PrioritizePostings(ps []domain.Posting, s Scorer) ([]domain.Posting, error) {
	scored, err := ScoreAll(ps, s)
	if err != nil {
		return nil, err
	}
	Prioritize(scored)
	out := make([]domain.Posting, len(scored))
	for i, item := range scored {
		out[i] = item.Posting
	}
	return out, nil
}
