package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes the list fields, then checks the
// result. The normalized copy is what callers should keep; the original is
// untouched.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Scoring.StateRank = trimList(out.Scoring.StateRank)
	out.Scoring.SiteRank = trimList(out.Scoring.SiteRank)
	if out.Scoring.KeywordTiers != nil {
		tiers := make(map[int][]string, len(out.Scoring.KeywordTiers))
		for w, terms := range out.Scoring.KeywordTiers {
			tiers[w] = trimList(terms)
		}
		out.Scoring.KeywordTiers = tiers
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	for w, terms := range out.Scoring.KeywordTiers {
		if w == 0 {
			res.addWarn("scoring.keyword_tiers has a zero-weight tier; its terms never affect scores.")
		}
		if len(terms) == 0 {
			res.addErr("scoring.keyword_tiers[%d] must have at least 1 term", w)
		}
	}

	dw := out.Scoring.DegreeWeights
	if dw.Bachelor < 0 || dw.Master < 0 || dw.Doctorate < 0 {
		res.addErr("scoring.degree_weights must not be negative")
	}

	for i, s := range out.Scoring.StateRank {
		if len(s) != 2 {
			res.addErr("scoring.state_rank_order[%d] must be a 2-letter abbreviation, got %q", i, s)
		}
	}
	if len(out.Scoring.StateRank) == 0 {
		res.addWarn("scoring.state_rank_order is empty; every posting gets the same location score.")
	}
	if len(out.Scoring.SiteRank) == 0 {
		res.addWarn("scoring.site_rank_order is empty; every posting gets the same site score.")
	}

	if out.Archive.CleanupDays < 0 {
		res.addErr("archive.cleanup_days must be >= 0")
	}

	return out, res
}
