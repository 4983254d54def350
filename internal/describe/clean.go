// Package describe turns the noisy markdown of scraped job descriptions into
// a canonical structured form: every heading is a single level-3 marker with
// one blank line on each side, line noise is gone, and the text is plain
// ASCII. Split then cuts the canonical text into sections and Classify maps
// each heading to a label.
package describe

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobsift-engine/internal/ascii"
)

var (
	reSoftWrap   = regexp.MustCompile(`(\S) *\n +(\S)`)
	reSpaceRuns  = regexp.MustCompile(` {2,}`)
	reBulletRuns = regexp.MustCompile(`(\* ){2,}`)
	reLeadSpace  = regexp.MustCompile(`(?m)^ +`)
	reTrailSpace = regexp.MustCompile(`(?m) +$`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)

	rePunctSpace = regexp.MustCompile(` +([,.!?:;])`)
	reGluedPunct = regexp.MustCompile(`([!?:;])([A-Za-z])`)

	reEmphTriple = regexp.MustCompile(`(\S)___([ \t]*)___(\S)`)
	reEmphDouble = regexp.MustCompile(`(\S)__([ \t]*)__(\S)`)
	reColonEmph  = regexp.MustCompile(` ?: ?(_+)`)

	reHashGlued  = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[^#\s].*$`)
	reHeaderMark = regexp.MustCompile(`\s*#{1,6}[ \t]+`)

	reEmphRest      = regexp.MustCompile(`^_+([^_]+)_+:? +(.+)$`)
	reEmphColonRest = regexp.MustCompile(`^_+([^_:]+): +([^_]+)_+$`)
	reLabelColon    = regexp.MustCompile(`^(.{3,}?): +(.+)$`)
	reEmphOnly      = regexp.MustCompile(`^_{2,}([^_]+)_{2,}:?$`)
	reAllCaps       = regexp.MustCompile(`^[A-Z][A-Z?!.,;\- \t]{3,}$`)

	reHeaderRuns = regexp.MustCompile(`(### )+`)
	reHeaderWrap = regexp.MustCompile(`(?m)^[ \t]*### *_*(.+?)_*[:.?! \t]*$`)
	reHeaderCaps = regexp.MustCompile(`^### ([A-Z][A-Z \t]{3,})$`)

	reBulletGap  = regexp.MustCompile(`\n{2,}([ \t]*\* )`)
	reUnderscore = regexp.MustCompile(`_+`)

	titleCaser = cases.Title(language.English)
)

// Clean rewrites raw description markdown into canonical form. It is an
// ordered sequence of passes; order matters because later passes only
// recognize constructs the earlier passes have not already converted.
// Total: any input yields some output. Idempotent on canonical text.
func Clean(md string) string {
	md = ascii.Normalize(md)

	md = canonicalizeWhitespace(md)
	md = canonicalizePunctuation(md)
	md = mergeEmphasisMarkers(md)
	md = standardizeHeadings(md)
	md = synthesizeInlineHeadings(md)
	md = promoteBulletNeighbors(md)
	md = cleanHeadings(md)
	md = removeNoise(md)
	md = finalSpacing(md)

	return md
}

// canonicalizeWhitespace merges soft-wrapped paragraph lines, collapses space
// runs, trims line edges, and squeezes vertical whitespace.
func canonicalizeWhitespace(md string) string {
	// Soft-wrap merging needs a fixpoint loop: each replacement consumes the
	// trailing character the next match would anchor on.
	for {
		next := reSoftWrap.ReplaceAllString(md, "$1 $2")
		if next == md {
			break
		}
		md = next
	}
	md = reSpaceRuns.ReplaceAllString(md, " ")
	md = reBulletRuns.ReplaceAllString(md, "* ")
	md = reLeadSpace.ReplaceAllString(md, "")
	md = reTrailSpace.ReplaceAllString(md, "")
	md = reBlankRuns.ReplaceAllString(md, "\n\n")
	return md
}

// canonicalizePunctuation removes space before punctuation, guarantees one
// space after a comma unless both neighbors are digits, and inserts a space
// after punctuation glued to the next word.
func canonicalizePunctuation(md string) string {
	md = rePunctSpace.ReplaceAllString(md, "$1")
	md = spaceAfterCommas(md)
	md = reGluedPunct.ReplaceAllString(md, "$1 $2")
	return md
}

func spaceAfterCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		b.WriteByte(c)
		if c != ',' {
			continue
		}
		j := i + 1
		for j < len(s) && s[j] == ' ' {
			j++
		}
		if j >= len(s) || s[j] == '\n' {
			i = j - 1
			continue
		}
		// "1,000" style numbers keep the comma glued
		if i > 0 && isDigit(s[i-1]) && isDigit(s[j]) {
			i = j - 1
			continue
		}
		b.WriteByte(' ')
		i = j - 1
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// mergeEmphasisMarkers collapses adjacent bold / bold-italic marker pairs
// separated only by whitespace (the converter emits these for empty
// emphasis spans) and moves trailing colons outside emphasis.
func mergeEmphasisMarkers(md string) string {
	for _, re := range []*regexp.Regexp{reEmphTriple, reEmphDouble} {
		for {
			next := re.ReplaceAllString(md, "$1$2$3")
			if next == md {
				break
			}
			md = next
		}
	}
	md = reColonEmph.ReplaceAllString(md, "$1:")
	return md
}

// standardizeHeadings removes marker characters glued to non-heading text and
// rewrites any 1-6 level heading to a level-3 heading on its own line.
func standardizeHeadings(md string) string {
	md = reHashGlued.ReplaceAllString(md, "")
	md = reHeaderMark.ReplaceAllString(md, "\n### ")
	return md
}

// Inline heading synthesis: each pattern is its own pass over the whole text
// so that a body produced by one pattern can still be picked up by a later,
// more generic one. Priority order is load-bearing.
func synthesizeInlineHeadings(md string) string {
	md = synthPass(md, func(line string) ([]string, bool) {
		if m := reEmphRest.FindStringSubmatch(line); m != nil {
			return []string{"", "### " + m[1], "", m[2]}, true
		}
		return nil, false
	})
	md = synthPass(md, func(line string) ([]string, bool) {
		if m := reEmphColonRest.FindStringSubmatch(line); m != nil {
			return []string{"", "### " + m[1], "", m[2]}, true
		}
		return nil, false
	})
	md = synthPass(md, func(line string) ([]string, bool) {
		if m := reLabelColon.FindStringSubmatch(line); m != nil {
			return []string{"", "### " + m[1], "", m[2]}, true
		}
		return nil, false
	})
	md = synthPass(md, func(line string) ([]string, bool) {
		if m := reEmphOnly.FindStringSubmatch(line); m != nil {
			return []string{"", "### " + m[1], ""}, true
		}
		return nil, false
	})
	md = synthPass(md, func(line string) ([]string, bool) {
		if reAllCaps.MatchString(line) {
			return []string{"", "### " + line, ""}, true
		}
		return nil, false
	})
	return md
}

// synthPass applies one line rewrite across the text, skipping bulleted and
// heading lines.
func synthPass(md string, rewrite func(string) ([]string, bool)) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBullet(line) || isHeading(line) {
			out = append(out, line)
			continue
		}
		if repl, ok := rewrite(line); ok {
			out = append(out, repl...)
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// promoteBulletNeighbors turns a non-bulleted line directly above a bullet
// block, or the first non-bulleted line below one, into a heading for that
// block.
func promoteBulletNeighbors(md string) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isBullet(line) || isHeading(line) {
			out = append(out, line)
			continue
		}
		beforeBullets := i+1 < len(lines) && isBullet(lines[i+1])
		afterBullets := false
		for j := i - 1; j >= 0; j-- {
			if strings.TrimSpace(lines[j]) == "" {
				continue
			}
			afterBullets = isBullet(lines[j])
			break
		}
		if beforeBullets || afterBullets {
			out = append(out, "", "### "+trimmed, "")
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// cleanHeadings collapses repeated heading markers, strips residual emphasis
// and trailing punctuation from heading text, and title-cases headings that
// are entirely uppercase.
func cleanHeadings(md string) string {
	md = reHeaderRuns.ReplaceAllString(md, "### ")
	md = reHeaderWrap.ReplaceAllString(md, "### $1")
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		if m := reHeaderCaps.FindStringSubmatch(line); m != nil {
			lines[i] = "### " + titleCaser.String(strings.ToLower(m[1]))
		}
	}
	return strings.Join(lines, "\n")
}

// removeNoise deletes escape backslashes, lines of five or fewer characters,
// separator lines of repeated symbols, and empty headings.
func removeNoise(md string) string {
	md = strings.ReplaceAll(md, `\`, "")
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) <= 5 {
			continue
		}
		if isSeparator(trimmed) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// finalSpacing guarantees one blank line before and after every heading, no
// blank lines inside bullet blocks, no leftover emphasis markers, and no runs
// of blank lines.
func finalSpacing(md string) string {
	// Collapse blank lines inside bullet blocks first; the heading walk
	// below reinstates the one blank line a heading keeps on each side.
	md = reBulletGap.ReplaceAllString(md, "\n$1")
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isHeading(line) {
			out = append(out, "", strings.TrimSpace(line), "")
			continue
		}
		out = append(out, line)
	}
	md = strings.Join(out, "\n")
	md = reUnderscore.ReplaceAllString(md, "")
	md = reBlankRuns.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md) + "\n"
}

func isBullet(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "* ")
}

func isHeading(line string) bool {
	return strings.Contains(line, "###")
}

func isSeparator(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '-', '=', '_', '+', '*', '~':
		default:
			return false
		}
	}
	return true
}
