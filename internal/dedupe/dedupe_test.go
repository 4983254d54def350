package dedupe

import (
	"reflect"
	"testing"
	"time"

	"jobsift-engine/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func ids(ps []domain.Posting) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestInBatchSameID(t *testing.T) {
	// newest-first input; the oldest of the id-duplicates survives
	batch := []domain.Posting{
		{ID: "x", Title: "Engineer v2", DatePosted: day(20)},
		{ID: "y", Title: "Analyst", DatePosted: day(15)},
		{ID: "x", Title: "Engineer v1", DatePosted: day(10)},
	}
	got := InBatch(batch)
	if want := []string{"y", "x"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}
	if got[1].Title != "Engineer v1" {
		t.Errorf("kept %q, want the oldest posting", got[1].Title)
	}
}

func TestInBatchCompanyTitle(t *testing.T) {
	batch := []domain.Posting{
		{ID: "a", Company: "Acme", Title: "Engineer", DatePosted: day(20)},
		{ID: "b", Company: "Acme", Title: "Engineer", DatePosted: day(10)},
		{ID: "c", Company: "Acme", Title: "Analyst", DatePosted: day(12)},
	}
	got := InBatch(batch)
	if want := []string{"c", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("ids = %v, want %v", ids(got), want)
	}
}

func TestInBatchEmptyKeysNeverMatch(t *testing.T) {
	batch := []domain.Posting{
		{ID: "a", DatePosted: day(3)},
		{ID: "b", DatePosted: day(2)},
		{ID: "c", DatePosted: day(1)},
	}
	got := InBatch(batch)
	if len(got) != 3 {
		t.Errorf("postings with empty shared fields collapsed: %v", ids(got))
	}
}

func TestInBatchNewestFirstOutput(t *testing.T) {
	batch := []domain.Posting{
		{ID: "mid", DatePosted: day(10)},
		{ID: "new", DatePosted: day(20)},
		{ID: "old", DatePosted: day(5)},
	}
	got := InBatch(batch)
	if want := []string{"new", "mid", "old"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("ids = %v, want %v", ids(got), want)
	}
}

func TestInBatchIdempotent(t *testing.T) {
	batch := []domain.Posting{
		{ID: "x", DatePosted: day(20)},
		{ID: "x", DatePosted: day(10)},
		{ID: "y", Company: "Acme", Title: "Engineer", DatePosted: day(8)},
		{ID: "z", Company: "Acme", Title: "Engineer", DatePosted: day(6)},
	}
	once := InBatch(batch)
	twice := InBatch(once)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestInBatchEmpty(t *testing.T) {
	if got := InBatch(nil); len(got) != 0 {
		t.Errorf("InBatch(nil) = %v", got)
	}
}

func TestDropKnown(t *testing.T) {
	archive := []domain.Posting{
		{ID: "seen"},
		{JobURLDirect: "https://x.example/42"},
		{Company: "Acme", Title: "Engineer"},
	}
	batch := []domain.Posting{
		{ID: "seen", Title: "changed elsewhere"},
		{ID: "n1", JobURLDirect: "https://x.example/42"},
		{ID: "n2", Company: "Acme", Title: "Engineer"},
		{ID: "n3", Company: "Acme", Title: "Analyst"},
		{ID: "n4"},
	}
	got := DropKnown(batch, archive)
	if want := []string{"n3", "n4"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("ids = %v, want %v", ids(got), want)
	}

	// idempotent: survivors match nothing in the archive
	if again := DropKnown(got, archive); !reflect.DeepEqual(ids(again), ids(got)) {
		t.Errorf("not idempotent: %v", ids(again))
	}
}

func TestLegacy(t *testing.T) {
	batch := []domain.Posting{
		{ID: "a", Company: "Acme", Title: "Engineer"},
		{ID: "b", Company: "Acme", Title: "Engineer"},
		{ID: "c", Company: "Acme", Title: "Analyst"},
	}

	got := Legacy(batch, nil)
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("fallback ids = %v, want %v", ids(got), want)
	}

	// with keywords, same company+title but different keywords both survive
	kw := map[string]string{"a": "go,sql", "b": "python", "c": "ml"}
	got = Legacy(batch, func(p domain.Posting) string { return kw[p.ID] })
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("keyword ids = %v, want %v", ids(got), want)
	}

	// identical keywords and company collapse
	kw["b"] = "go,sql"
	got = Legacy(batch, func(p domain.Posting) string { return kw[p.ID] })
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("keyword ids = %v, want %v", ids(got), want)
	}
}
