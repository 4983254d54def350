// Package ascii folds scraped text down to plain ASCII. Job boards serve
// descriptions full of curly quotes, exotic dashes, ligatures, homoglyph
// letters, and a zoo of space variants; downstream heuristics only have to
// reason about the ASCII renditions this package produces.
package ascii

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// translits maps codepoints (or short sequences) that render like ASCII to
// their ASCII equivalent. NFKD handles anything with a compatibility
// decomposition (ligatures, circled digits, accented letters); this table
// covers what NFKD leaves behind or emits. Entries were collected from real
// scraped descriptions; add more as they show up.
var translits = map[string]string{
	// quotes and primes
	"‘": "'", "’": "'", "“": `"`, "”": `"`,
	"′": "'", "´": "'", "ʻ": "'",
	// dashes and related
	"‐": "-", "‒": "-", "–": "-",
	"—": "--", "―": "--",
	// math and misc symbols
	"×": "x", "⁄": "/", "∕": "/",
	"≤": "<=", "≥": ">=", "★": "*",
	// bullet glyphs normalize to the markdown bullet
	"·": "*", "•": "*", "▪": "*", "▫": "*", "◦": "*",
	// non-decomposing letter forms
	"Æ": "AE", "æ": "ae", "Œ": "OE", "œ": "oe",
	"Ð": "D", "ƒ": "f", "ɑ": "a", "ɡ": "g",
	// Cyrillic/Greek homoglyphs seen in the wild
	"а": "a", "е": "e", "о": "o", "р": "p",
	"с": "c", "у": "y", "х": "x", "ѕ": "s",
	"і": "i", "ј": "j", "ν": "v", "ο": "o", "ρ": "p",
	// punctuation variants
	"…": "...", "︰": ":", "։": ":",
}

// spaceLike are codepoints that separate words but render with no pixels,
// zero-width joiners included. They all become one plain space.
var spaceLike = []string{
	"\u00a0", "\u1680", "\u2000", "\u2001", "\u2002", "\u2003", "\u2004",
	"\u2005", "\u2006", "\u2007", "\u2008", "\u202f", "\u205f", "\u3000",
	"\u200b", "\u200c", "\u200d", "\u2060", "\ufeff",
}

// hairline spaces are used for kerning rather than word separation; they
// map to nothing.
var hairline = []string{"\u2009", "\u200a"}

var (
	once    sync.Once
	table   map[string]string
	pattern *regexp.Regexp
)

func build() {
	table = make(map[string]string, len(translits)+len(spaceLike)+len(hairline))
	for k, v := range translits {
		table[k] = v
	}
	for _, sp := range spaceLike {
		table[sp] = " "
	}
	for _, sp := range hairline {
		table[sp] = ""
	}

	// Longest keys first so multi-codepoint entries win over their prefixes.
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	pattern = regexp.MustCompile(strings.Join(keys, "|"))
}

// Normalize converts s to ASCII-only text, then drops anything still
// non-ASCII. The transliteration table runs twice around NFKD decomposition:
// before, because NFKD folds some table entries (hairline spaces) into plain
// spaces and their mapping would never fire; after, because decomposition
// itself emits mappable codepoints (the fraction slash in vulgar fractions).
// Dropping is silent; unknown symbols carry no signal for the heuristics
// downstream. Idempotent: output contains no mapped codepoints.
func Normalize(s string) string {
	once.Do(build)

	replace := func(s string) string {
		return pattern.ReplaceAllStringFunc(s, func(m string) string {
			return table[m]
		})
	}
	s = replace(s)
	s = norm.NFKD.String(s)
	s = replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
