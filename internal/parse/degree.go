package parse

import (
	"regexp"
	"strings"

	"jobsift-engine/internal/domain"
)

// Each level has its own pattern and the three run independently, so a
// posting that says "BS/MS required, PhD preferred" reports all three.
// Abbreviations accept optional dots ("B.S.", "BS"); phrasings like
// "four-year degree" and "degree in <field>" imply a bachelor's, while
// "graduate degree", "advanced degree", and "post-graduate" imply a
// master's or above. JD/MD/EdD/DPhil count as doctorates.
var (
	reBachelor = regexp.MustCompile(`(?i)\b(?:` +
		`b\.?a\.?|b\.?s\.?|b\.?sc\.?|b\.?s\.?e\.?|b\.?eng\.?|b\.?b\.?a\.?|bfa|bit|` +
		`bachelor'?s?|undergrad(?:uate)?|` +
		`four-year\s+degree|4-year\s+degree|university\s+degree|degree\s+in\s+\w+` +
		`)\b`)
	reMaster = regexp.MustCompile(`(?i)\b(?:` +
		`m\.?a\.?|m\.?s\.?|m\.?b\.?a\.?|m\.?sc\.?|m\.?s\.?e\.?|m\.?eng\.?|mph|mcs|mfa|` +
		`master'?s?|graduate\s+degree|advanced\s+degree|post-?graduate` +
		`)\b`)
	reDoctoral = regexp.MustCompile(`(?i)\b(?:ph\.?d\.?|doctor(?:ate|al)|jd|md|edd|dphil)\b`)
)

// Degrees scans description text for degree-level mentions. Slashes become
// spaces first so shorthand like "BS/MS" splits into separate tokens.
func Degrees(text string) domain.DegreeSet {
	text = strings.ReplaceAll(text, "/", " ")
	var set domain.DegreeSet
	if reBachelor.MatchString(text) {
		set |= domain.Bachelor
	}
	if reMaster.MatchString(text) {
		set |= domain.Master
	}
	if reDoctoral.MatchString(text) {
		set |= domain.Doctorate
	}
	return set
}
