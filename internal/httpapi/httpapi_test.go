package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/domain"
	"jobsift-engine/internal/events"
	"jobsift-engine/internal/rank"
	"jobsift-engine/internal/store"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	dir := t.TempDir()

	archive, err := store.Open(filepath.Join(dir, "archive.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = archive.Close() })

	cfg := config.Config{}
	cfg.App.Port = 8787
	cfg.Scoring = config.Scoring{
		KeywordTiers:  map[int][]string{3: {"go"}, 1: {"sql"}},
		DegreeWeights: config.DegreeWeights{Bachelor: 1, Master: 2, Doctorate: 3},
		StateRank:     []string{"WA", "OR"},
		SiteRank:      []string{"linkedin"},
	}

	userCfgPath := filepath.Join(dir, "config.yml")
	if err := config.SaveAtomic(userCfgPath, cfg); err != nil {
		t.Fatal(err)
	}

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	return Deps{
		Archive:     archive,
		Hub:         events.NewHub(),
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     func() (config.Config, error) { return config.Load(userCfgPath) },
		Workers:     2,
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewMux(testDeps(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(NewMux(testDeps(t)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/jobs", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestIngestAndList(t *testing.T) {
	srv := httptest.NewServer(NewMux(testDeps(t)))
	defer srv.Close()

	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }
	batch := []domain.Posting{
		{ID: "dup", Title: "Engineer", Company: "Acme", DatePosted: day(20)},
		{ID: "go-job", Title: "Go Developer", Company: "Gamma", Site: "linkedin",
			Location: "Seattle, WA", DatePosted: day(15),
			Description: "REQUIRED SKILLS\n\n* Go and SQL\n* BS degree\n"},
		{ID: "dup", Title: "Engineer", Company: "Acme", DatePosted: day(10)},
	}
	body, _ := json.Marshal(batch)

	resp, err := http.Post(srv.URL+"/batches", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ingest status = %d", resp.StatusCode)
	}

	var result BatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Received != 3 || result.Kept != 2 || result.Archived != 2 {
		t.Errorf("result = %+v", result)
	}

	// re-posting the same batch adds nothing: everything is now known
	resp2, err := http.Post(srv.URL+"/batches", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	var result2 BatchResult
	if err := json.NewDecoder(resp2.Body).Decode(&result2); err != nil {
		t.Fatal(err)
	}
	if result2.Kept != 0 || result2.Archived != 2 {
		t.Errorf("second ingest = %+v", result2)
	}

	listResp, err := http.Get(srv.URL + "/jobs?sort=rank")
	if err != nil {
		t.Fatal(err)
	}
	defer listResp.Body.Close()
	var listed []rank.Scored
	if err := json.NewDecoder(listResp.Body).Decode(&listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d postings", len(listed))
	}
	if listed[0].Derived == nil || listed[0].Derived.State != "WA" {
		t.Errorf("derived fields missing from listing: %+v", listed[0])
	}
	// "go" in the title (3) and "sql" in the description (1), plus the BS
	// mention at bachelor weight 1
	b := listed[0].Breakdown
	if b.Keyword != 4 || b.Degree != 1 || b.Requirement != 5 {
		t.Errorf("scores = %+v", b)
	}
}

func TestIngestRejectsBadJSON(t *testing.T) {
	srv := httptest.NewServer(NewMux(testDeps(t)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/batches", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	deps := testDeps(t)
	srv := httptest.NewServer(NewMux(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/config")
	if err != nil {
		t.Fatal(err)
	}
	var cur config.Config
	if err := json.NewDecoder(resp.Body).Decode(&cur); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	cur.Scoring.StateRank = []string{"OR", "WA"}
	body, _ := json.Marshal(cur)
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/config", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	putResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer putResp.Body.Close()
	if putResp.StatusCode != http.StatusOK {
		t.Fatalf("put status = %d", putResp.StatusCode)
	}

	live := deps.CfgVal.Load().(config.Config)
	if len(live.Scoring.StateRank) != 2 || live.Scoring.StateRank[0] != "OR" {
		t.Errorf("live config not swapped: %v", live.Scoring.StateRank)
	}

	// invalid config is rejected with structured errors
	cur.App.Port = -1
	body, _ = json.Marshal(cur)
	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/config", bytes.NewReader(body))
	badResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer badResp.Body.Close()
	if badResp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid put status = %d", badResp.StatusCode)
	}
	var vr config.Validation
	if err := json.NewDecoder(badResp.Body).Decode(&vr); err != nil || len(vr.Errors) == 0 {
		t.Errorf("no structured errors returned: %v %v", vr, err)
	}
}

func TestConfigPath(t *testing.T) {
	deps := testDeps(t)
	srv := httptest.NewServer(NewMux(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/config/path")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["path"] == "" || !filepath.IsAbs(got["path"]) {
		t.Errorf("path = %q", got["path"])
	}
	if _, err := os.Stat(got["path"]); err != nil {
		t.Errorf("reported path does not exist: %v", err)
	}
}
