package rank

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/domain"
)

func TestKeywordScore(t *testing.T) {
	tiers := map[int][]string{
		3: {"Python"},
		1: {"SQL"},
	}
	score, matched := KeywordScore("Looking for python and sql experience", tiers)
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}
	if !reflect.DeepEqual(matched, []string{"Python", "SQL"}) {
		t.Errorf("matched = %v, want [Python SQL]", matched)
	}

	score, matched = KeywordScore("nothing relevant here", tiers)
	if score != 0 || matched != nil {
		t.Errorf("got (%d, %v), want (0, nil)", score, matched)
	}

	// same term in two tiers counts twice
	twice := map[int][]string{3: {"go"}, 1: {"go"}}
	score, matched = KeywordScore("we use Go", twice)
	if score != 4 || len(matched) != 2 {
		t.Errorf("got (%d, %v), want score 4 with 2 matches", score, matched)
	}
}

func TestDegreeScore(t *testing.T) {
	w := config.DegreeWeights{Bachelor: 1, Master: 2, Doctorate: 3}
	cases := []struct {
		set  domain.DegreeSet
		want int
	}{
		{0, 0},
		{domain.Bachelor, 1},
		{domain.Master, 2},
		{domain.Bachelor | domain.Doctorate, 4},
		{domain.Bachelor | domain.Master | domain.Doctorate, 6},
	}
	for _, tc := range cases {
		if got := DegreeScore(tc.set, w); got != tc.want {
			t.Errorf("DegreeScore(%v) = %d, want %d", tc.set, got, tc.want)
		}
	}
}

func TestRankOrderScore(t *testing.T) {
	order := []string{"WA", "OR"}
	cases := []struct {
		value string
		want  int
	}{
		{"WA", 2},
		{"OR", 1},
		{"CA", 0},
		{"wa", 2},
		{"", -1},
	}
	for _, tc := range cases {
		if got := RankOrderScore(tc.value, order); got != tc.want {
			t.Errorf("RankOrderScore(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func testScoring() config.Scoring {
	return config.Scoring{
		KeywordTiers:  map[int][]string{3: {"go"}, 1: {"sql"}},
		DegreeWeights: config.DegreeWeights{Bachelor: 1, Master: 2, Doctorate: 3},
		StateRank:     []string{"WA", "OR"},
		SiteRank:      []string{"linkedin", "indeed"},
	}
}

func derived(state, desc string, degrees domain.DegreeSet) *domain.Derived {
	return &domain.Derived{State: state, Description: desc, Degrees: degrees}
}

func TestConfigScorer(t *testing.T) {
	s := ConfigScorer{Scoring: testScoring()}

	p := domain.Posting{
		ID:      "a",
		Site:    "indeed",
		Title:   "Go Developer",
		Derived: derived("WA", "a shop that uses SQL daily", domain.Bachelor),
	}
	b, err := s.Score(p)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// "go" matches the title, "sql" the description; both count.
	want := Breakdown{
		Keyword:     4,
		Degree:      1,
		Requirement: 5,
		Location:    2,
		Site:        1,
		Matched:     []string{"go", "sql"},
	}
	if !reflect.DeepEqual(b, want) {
		t.Errorf("breakdown = %+v, want %+v", b, want)
	}

	_, err = s.Score(domain.Posting{ID: "raw"})
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}

func TestPrioritize(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}
	items := []Scored{
		{Posting: domain.Posting{ID: "old-high"}, Breakdown: Breakdown{Requirement: 9}},
		{Posting: domain.Posting{ID: "new-low", DatePosted: day(20)}, Breakdown: Breakdown{Requirement: 1}},
		{Posting: domain.Posting{ID: "new-high", DatePosted: day(20)}, Breakdown: Breakdown{Requirement: 5}},
		{Posting: domain.Posting{ID: "new-mid-a", DatePosted: day(20)}, Breakdown: Breakdown{Requirement: 3, Location: 1}},
		{Posting: domain.Posting{ID: "new-mid-b", DatePosted: day(20)}, Breakdown: Breakdown{Requirement: 3, Location: 2}},
	}
	Prioritize(items)

	got := make([]string, len(items))
	for i, it := range items {
		got[i] = it.ID
	}
	want := []string{"new-high", "new-mid-b", "new-mid-a", "new-low", "old-high"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestPrioritizePostingsPropagatesError(t *testing.T) {
	s := ConfigScorer{Scoring: testScoring()}
	ps := []domain.Posting{
		{ID: "ok", Derived: derived("WA", "", 0)},
		{ID: "raw"},
	}
	if _, err := PrioritizePostings(ps, s); !errors.Is(err, ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField", err)
	}
}
