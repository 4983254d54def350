package rank

import (
	"errors"
	"fmt"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/domain"
)

// ErrMissingField is returned when a posting reaches the scorer without its
// derived fields. Scores computed from raw fields would silently disagree
// with the rest of the pipeline, so this is an error rather than a zero.
var ErrMissingField = errors.New("posting has no derived fields")

// Breakdown is one posting's score along each ranking dimension. Requirement
// is always Keyword + Degree; the parts stay visible so a dashboard can show
// what drove the number.
type Breakdown struct {
	Keyword     int      `json:"keyword"`
	Degree      int      `json:"degree"`
	Requirement int      `json:"requirement"`
	Location    int      `json:"location"`
	Site        int      `json:"site"`
	Matched     []string `json:"matched,omitempty"`
}

type Scorer interface {
	Score(p domain.Posting) (Breakdown, error)
}

// ConfigScorer scores postings against the weights and rank orders in the
// loaded configuration.
type ConfigScorer struct {
	Scoring config.Scoring
}

func (s ConfigScorer) Score(p domain.Posting) (Breakdown, error) {
	if p.Derived == nil {
		return Breakdown{}, fmt.Errorf("score %q: %w", p.ID, ErrMissingField)
	}
	kw, matched := KeywordScore(p.Title+"\n"+p.Derived.Description, s.Scoring.KeywordTiers)
	deg := DegreeScore(p.Derived.Degrees, s.Scoring.DegreeWeights)
	return Breakdown{
		Keyword:     kw,
		Degree:      deg,
		Requirement: kw + deg,
		Location:    RankOrderScore(p.Derived.State, s.Scoring.StateRank),
		Site:        RankOrderScore(p.Site, s.Scoring.SiteRank),
		Matched:     matched,
	}, nil
}
